//go:build unit

package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("request logs flow through the injected logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		engine := gin.New()
		engine.Use(middleware.LoggingMiddleware(logger, config.LogConfig{Level: "info"}))
		engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)

		out := buf.String()
		assert.Contains(t, out, "Request started")
		assert.Contains(t, out, "Request completed")
		assert.Contains(t, out, `"path":"/ping"`)
	})

	t.Run("request id is set on the context", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		var requestID string
		engine := gin.New()
		engine.Use(middleware.LoggingMiddleware(logger, config.LogConfig{Level: "info"}))
		engine.GET("/ping", func(c *gin.Context) {
			requestID = middleware.GetRequestID(c)
			c.Status(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, requestID)
	})
}
