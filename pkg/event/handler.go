package event

import (
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"
)

func NewHandler(logger *slog.Logger, broker broker) Handler {
	return Handler{logger, broker}
}

type Handler struct {
	logger *slog.Logger
	broker broker
}

type broker interface {
	Subscribe() (string, <-chan Event)
	Unsubscribe(id string)
}

// Stream sends dispatch events to the client as server-sent events until the
// client goes away.
func (h Handler) Stream(c *gin.Context) {
	id, events := h.broker.Subscribe()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	// the request context is cancelled when the client goes away, gin's own
	// Done channel is nil without ContextWithFallback
	go func() {
		<-c.Request.Context().Done()
		h.broker.Unsubscribe(id)
		h.logger.Info("Closing event stream", "subscriber", id)
	}()

	c.Stream(func(w io.Writer) bool {
		if event, ok := <-events; ok {
			c.SSEvent(event.Type, event.Message)
			return true
		}
		return false
	})
}

func Routes(router *gin.RouterGroup, handler Handler) {
	router.GET("/events", handler.Stream)
}
