package utils

import "context"

type ContextKey int

const (
	ContextKeyLogger ContextKey = iota
	ContextKeyRequestId
)

// RequestIdFromContext returns the id set by the request id middleware, or "" outside a request.
func RequestIdFromContext(ctx context.Context) string {
	requestId, _ := ctx.Value(ContextKeyRequestId).(string)
	return requestId
}
