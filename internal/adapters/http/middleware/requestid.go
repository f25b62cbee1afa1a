package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/mood-quote-service/internal/platform/logging"
)

const (
	// HeaderRequestID is the header name for request ID.
	HeaderRequestID = "X-Request-ID"

	// ContextKeyRequestID is the gin context key for the request ID.
	ContextKeyRequestID = "request_id"
)

var requestID = idKind{
	header:   HeaderRequestID,
	ginKey:   ContextKeyRequestID,
	ctxKey:   ctxKeyRequestID,
	withLogs: logging.WithRequestID,
}

// RequestID returns middleware that reads X-Request-ID or generates a UUID v4.
// The ID is echoed in the response, added to the context logger and
// forwarded on outbound upstream calls.
func RequestID() gin.HandlerFunc {
	return requestID.middleware()
}

// GetRequestID returns the request ID stored on the gin context, or "".
func GetRequestID(c *gin.Context) string {
	return requestID.fromGin(c)
}

// RequestIDFromContext returns the request ID carried by ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	return requestID.fromContext(ctx)
}

// ContextWithRequestID stores a request ID in ctx.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}
