package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/checkmarble/marble-todos/utils"
)

const RequestIdHeader = "X-Request-Id"

// NewRequestId reuses the request id set by a proxy in front of the app, or creates one. The id
// is sent back in the response and added to the logger of the request.
func NewRequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(RequestIdHeader)
		if _, err := uuid.Parse(requestId); err != nil {
			requestId = uuid.NewString()
		}
		c.Header(RequestIdHeader, requestId)

		ctx := c.Request.Context()
		logger := utils.LoggerFromContext(ctx).With("request_id", requestId)
		ctx = context.WithValue(ctx, utils.ContextKeyRequestId, requestId)
		ctx = utils.StoreLoggerInContext(ctx, logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
