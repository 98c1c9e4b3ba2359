package log

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
)

// NewPrettyJSONHandler returns a [slog.Handler] emitting JSON records. With
// pretty enabled every record is indented, which makes local development
// output readable at the cost of multi-line log records.
func NewPrettyJSONHandler(w io.Writer, opts *slog.HandlerOptions, pretty bool) slog.Handler {
	if !pretty {
		return slog.NewJSONHandler(w, opts)
	}

	core := &prettyCore{writer: w}
	return &prettyJSONHandler{
		core:  core,
		inner: slog.NewJSONHandler(&core.buf, opts),
	}
}

// prettyCore is shared between a handler and the handlers derived from it via
// WithAttrs/WithGroup, so all of them serialize on the same buffer.
type prettyCore struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	writer io.Writer
}

type prettyJSONHandler struct {
	core  *prettyCore
	inner slog.Handler
}

func (h *prettyJSONHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *prettyJSONHandler) Handle(ctx context.Context, r slog.Record) error {
	h.core.mu.Lock()
	defer h.core.mu.Unlock()

	h.core.buf.Reset()
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, bytes.TrimSpace(h.core.buf.Bytes()), "", "  "); err != nil {
		// not valid JSON, emit the record as is
		_, err := h.core.writer.Write(h.core.buf.Bytes())
		return err
	}
	indented.WriteByte('\n')

	_, err := h.core.writer.Write(indented.Bytes())
	return err
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{core: h.core, inner: h.inner.WithAttrs(attrs)}
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	return &prettyJSONHandler{core: h.core, inner: h.inner.WithGroup(name)}
}
