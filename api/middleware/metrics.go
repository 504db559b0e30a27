package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/checkmarble/marble-todos/utils"
)

const unmatchedRoute = "unmatched"

// NewRequestMetrics records the latency of every request, labelled by route pattern rather
// than by path so that ids do not create new series.
func NewRequestMetrics(options ...LoggerOption) gin.HandlerFunc {
	conf := newConfig(options)

	return func(c *gin.Context) {
		if conf.ignored(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		utils.MetricRequestLatency.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
