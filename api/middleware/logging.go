package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/checkmarble/marble-todos/utils"
)

const (
	RequestLoggingLevelAll    = "all"
	RequestLoggingLevelErrors = "errors"
)

type config struct {
	ignorePath  []string
	errorsOnly  bool
	serverLevel slog.Level
	clientLevel slog.Level
	okLevel     slog.Level
}

type LoggerOption func(*config)

func WithIgnorePath(s []string) LoggerOption {
	return func(c *config) {
		c.ignorePath = s
	}
}

// WithRequestLoggingLevel set to "errors" only logs the requests answered with a 4xx or 5xx.
func WithRequestLoggingLevel(level string) LoggerOption {
	return func(c *config) {
		c.errorsOnly = level == RequestLoggingLevelErrors
	}
}

func newConfig(options []LoggerOption) *config {
	c := &config{
		okLevel:     slog.LevelInfo,
		clientLevel: slog.LevelWarn,
		serverLevel: slog.LevelError,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *config) ignored(path string) bool {
	for _, p := range c.ignorePath {
		if p == path {
			return true
		}
	}
	return false
}

// NewLogging logs one line per request with the logger found in the request context, so the
// line carries the request id.
func NewLogging(options ...LoggerOption) gin.HandlerFunc {
	conf := newConfig(options)

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if conf.ignored(path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start).Milliseconds()

		status := c.Writer.Status()
		level := conf.okLevel
		switch {
		case status >= http.StatusInternalServerError:
			level = conf.serverLevel
		case status >= http.StatusBadRequest:
			level = conf.clientLevel
		case conf.errorsOnly:
			return
		}

		dataLength := c.Writer.Size()
		if dataLength < 0 {
			dataLength = 0
		}
		attributes := []slog.Attr{
			slog.Int("status", status),
			slog.Int64("latency", latency),
			slog.String("client_ip", c.ClientIP()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("data_length", dataLength),
			slog.String("user_agent", c.Request.UserAgent()),
		}
		if len(c.Errors) > 0 {
			attributes = append(attributes, slog.String("error", c.Errors.String()))
		}

		ctx := c.Request.Context()
		utils.LoggerFromContext(ctx).LogAttrs(ctx, level,
			fmt.Sprintf("%s %s", c.Request.Method, path), attributes...)
	}
}
