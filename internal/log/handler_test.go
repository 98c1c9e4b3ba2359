package log

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hana-sre/cluster-manager/internal/middleware"
)

func TestContextHandlerAddsCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var b bytes.Buffer
	logger := slog.New(New(slog.NewJSONHandler(&b, nil)))

	var correlationID string
	r := gin.New()
	r.Use(middleware.CorrelationID())
	r.GET("/", func(c *gin.Context) {
		ctx := c.Request.Context()
		correlationID, _ = middleware.GetCorrelationID(ctx)
		logger.InfoContext(ctx, "info")
		c.String(http.StatusOK, "success")
	})

	w := httptest.NewRecorder()
	req, err := http.NewRequest("GET", "/", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, correlationID)

	sc := bufio.NewScanner(&b)
	for sc.Scan() {
		line := sc.Text()
		got := make(map[string]any)

		err = json.Unmarshal([]byte(line), &got)

		assert.NoError(t, err)
		t.Log("log line:", line)
		v, ok := got[middleware.CorrelationIDKey]
		assert.True(t, ok, "want log line to have a correlation id")
		assert.Equal(t, correlationID, v)
	}
}

func TestContextHandlerWithoutCorrelationID(t *testing.T) {
	var b bytes.Buffer
	logger := slog.New(New(slog.NewJSONHandler(&b, nil)))

	logger.Info("info")

	got := make(map[string]any)
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	_, ok := got[middleware.CorrelationIDKey]
	assert.False(t, ok, "logs outside of a request should not carry a correlation id")
}
