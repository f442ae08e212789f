//go:build unit

package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail map[string]string `json:"detail"`
}

func newEngine(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "2006-01-02 15:04:05.000"})

	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.ErrorHandler())
	r.GET("/", handler)
	return r
}

func TestCustomRecovery(t *testing.T) {
	r := newEngine(func(*gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.Equal(t, "req-123", body.Detail["requestId"])
}

func TestErrorHandler(t *testing.T) {
	t.Run("success: written responses are left alone", func(t *testing.T) {
		r := newEngine(func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"ok": true}) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	})

	t.Run("error: handler that writes nothing becomes a 500 with a request ID", func(t *testing.T) {
		r := newEngine(func(*gin.Context) {})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Detail["requestId"])
		assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), body.Detail["requestId"])
	})

	t.Run("success: bare status is kept", func(t *testing.T) {
		r := newEngine(func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
