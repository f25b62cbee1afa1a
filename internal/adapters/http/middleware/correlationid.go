package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/mood-quote-service/internal/platform/logging"
)

const (
	// HeaderCorrelationID is the header name for correlation ID.
	// It spans a whole transaction across services, unlike the per-hop request ID.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID is the gin context key for the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

var correlationID = idKind{
	header:   HeaderCorrelationID,
	ginKey:   ContextKeyCorrelationID,
	ctxKey:   ctxKeyCorrelationID,
	withLogs: logging.WithCorrelationID,
}

// CorrelationID returns middleware that propagates X-Correlation-ID,
// generating one when this service is the origin of the transaction.
func CorrelationID() gin.HandlerFunc {
	return correlationID.middleware()
}

// GetCorrelationID returns the correlation ID stored on the gin context, or "".
func GetCorrelationID(c *gin.Context) string {
	return correlationID.fromGin(c)
}

// CorrelationIDFromContext returns the correlation ID carried by ctx, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return correlationID.fromContext(ctx)
}

// ContextWithCorrelationID stores a correlation ID in ctx.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID, id)
}
