package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-desk/logger"
	"hotel-desk/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.POST("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.RequestIDKey))
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine(middleware.RequestID(), middleware.Logger(logger.Nop()))

	t.Run("should mint an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ping", nil))

		id := w.Header().Get(middleware.RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("should keep the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRequireAPIKey(t *testing.T) {
	hash, err := middleware.HashAPIKey("s3cret")
	require.NoError(t, err)
	r := newEngine(middleware.RequireAPIKey(hash))

	send := func(key string) int {
		req := httptest.NewRequest(http.MethodPost, "/ping", nil)
		if key != "" {
			req.Header.Set(middleware.APIKeyHeader, key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("s3cret"))
	assert.Equal(t, http.StatusUnauthorized, send("wrong"))
	assert.Equal(t, http.StatusUnauthorized, send(""))

	open := newEngine(middleware.RequireAPIKey(""))
	w := httptest.NewRecorder()
	open.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
