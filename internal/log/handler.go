// Package log provides slog handlers.
package log

import (
	"context"
	"log/slog"

	"github.com/hana-sre/cluster-manager/internal/middleware"
)

// ContextHandler adds values from the [context.Context] to the [slog.Record].
// The [slog.Handler] is passed to the [slog.Logger] used throughout the app.
// It uses the same attribute key for the correlation ID as the HTTP
// middleware so logs written during an HTTP request and logs written while
// consuming an AMQP message can be matched up. Not every use of the logger
// runs within a request, so it has to be ok with the key not being set.
type ContextHandler struct {
	slog.Handler
}

func New(handler slog.Handler) *ContextHandler {
	return &ContextHandler{
		Handler: handler,
	}
}

func (rh *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return rh.Handler.Enabled(ctx, level)
}

func (rh *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := middleware.GetCorrelationID(ctx); ok {
		r.AddAttrs(slog.String(middleware.CorrelationIDKey, id))
	}

	return rh.Handler.Handle(ctx, r)
}

func (rh *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return New(rh.Handler.WithAttrs(attrs))
}

func (rh *ContextHandler) WithGroup(name string) slog.Handler {
	return New(rh.Handler.WithGroup(name))
}
