// Package middleware provides the gin middleware chain for the HTTP server.
package middleware

import (
	"context"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxIDLength bounds caller-supplied IDs before they reach logs and upstream headers.
const maxIDLength = 128

type contextKey string

const (
	ctxKeyRequestID     contextKey = "request_id"
	ctxKeyCorrelationID contextKey = "correlation_id"
)

// idKind describes one propagated identifier.
type idKind struct {
	header   string
	ginKey   string
	ctxKey   contextKey
	withLogs func(ctx context.Context, id string) context.Context
}

// middleware reuses a well-formed incoming ID or mints a UUID, then exposes it
// on the gin context, the request context, the context logger and the response.
func (k idKind) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(k.header)
		if !validID(id) {
			id = uuid.NewString()
		}

		c.Set(k.ginKey, id)
		c.Header(k.header, id)

		ctx := context.WithValue(c.Request.Context(), k.ctxKey, id)
		if k.withLogs != nil {
			ctx = k.withLogs(ctx, id)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func (k idKind) fromGin(c *gin.Context) string {
	return c.GetString(k.ginKey)
}

func (k idKind) fromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(k.ctxKey).(string)

	return id
}

func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for _, r := range id {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
