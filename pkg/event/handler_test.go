package event

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestStream(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	broker := NewBroker()
	handler := NewHandler(logger, broker)

	r := gin.New()
	Routes(r.Group(""), handler)
	server := httptest.NewServer(r)
	defer server.Close()

	go func() {
		for len(broker.Subscribers()) == 0 {
			time.Sleep(10 * time.Millisecond)
		}

		broker.Broadcast(Event{
			Type:    "checks_execution_requested",
			Message: "7e8df57f-bb59-4124-9a8e-95ed0f687bc9",
		})

		for _, id := range broker.Subscribers() {
			broker.Unsubscribe(id)
		}
	}()

	response, err := http.Get(server.URL + "/events")
	require.NoError(t, err)
	defer response.Body.Close()

	require.Equal(t, http.StatusOK, response.StatusCode)
	require.Contains(t, response.Header.Get("Content-Type"), "text/event-stream")

	events, err := sse.Decode(response.Body)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "checks_execution_requested", events[0].Event)
	require.Equal(t, "7e8df57f-bb59-4124-9a8e-95ed0f687bc9", events[0].Data)
}

func TestStreamUnsubscribesOnClientDisconnect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	broker := NewBroker()
	handler := NewHandler(logger, broker)

	r := gin.New()
	Routes(r.Group(""), handler)
	server := httptest.NewServer(r)
	defer server.Close()

	go func() {
		for len(broker.Subscribers()) == 0 {
			time.Sleep(10 * time.Millisecond)
		}

		// flushes the response headers so the request below returns
		broker.Broadcast(Event{Type: "operation_requested", Message: "m1"})
	}()

	ctx, cancel := context.WithCancel(context.Background())
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/events", nil)
	require.NoError(t, err)

	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	require.Len(t, broker.Subscribers(), 1)

	cancel()

	require.Eventually(t, func() bool {
		return len(broker.Subscribers()) == 0
	}, time.Second, 10*time.Millisecond, "a gone client must be unsubscribed")
}
