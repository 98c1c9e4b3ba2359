package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CorrelationIDKey is the log attribute key used for the correlation ID so
// logs written by the HTTP middleware, the AMQP consumers and the
// [log/slog.Logger] context aware methods can be matched up.
const CorrelationIDKey = "correlationId"

type ctxKey int

var correlationIDKey ctxKey

// CorrelationID is a Gin middleware that adds a generated correlation ID to
// the [net/http.Request] context.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ctx = NewContextWithCorrelationID(ctx, uuid.NewString())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// NewContextWithCorrelationID returns a new [context.Context] that carries value correlationID.
func NewContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey, correlationID)
}

// GetCorrelationID returns the correlation ID stored in the ctx, if any.
func GetCorrelationID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(correlationIDKey).(string)
	return id, ok
}
