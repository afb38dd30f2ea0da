package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c)})
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/fail", func(c *gin.Context) { _ = c.Error(assert.AnError) })
	return r
}

func serve(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w := serve(r, http.MethodGet, "/ping", map[string]string{"X-Request-ID": "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"request_id":"abc-123"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/ping", nil)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestRecoveryHidesPanic(t *testing.T) {
	r := newEngine(RequestID(), Recovery())

	w := serve(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestErrorHandler(t *testing.T) {
	r := newEngine(ErrorHandler())

	w := serve(r, http.MethodGet, "/fail", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	r := newEngine(CORS([]string{"http://localhost:3000"}))

	w := serve(r, http.MethodGet, "/ping", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/ping", map[string]string{"Origin": "http://evil.example"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodOptions, "/ping", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimiterInMemory(t *testing.T) {
	r := newEngine(RateLimiter(2, time.Minute, nil))

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/ping", nil).Code)
	}
	w := serve(r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), `"detail"`)
}

func TestRateLimiterDisabled(t *testing.T) {
	r := newEngine(RateLimiter(0, time.Minute, nil))
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/ping", nil).Code)
	}
}

func TestMemoryWindowResets(t *testing.T) {
	w := newMemoryWindow(time.Minute)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return now }
	ctx := context.Background()

	n, _, _ := w.hit(ctx, "10.0.0.1")
	assert.Equal(t, 1, n)
	n, resetIn, _ := w.hit(ctx, "10.0.0.1")
	assert.Equal(t, 2, n)
	assert.Equal(t, time.Minute, resetIn)

	now = now.Add(61 * time.Second)
	n, _, _ = w.hit(ctx, "10.0.0.1")
	assert.Equal(t, 1, n)
}

func TestMemoryWindowPurges(t *testing.T) {
	w := newMemoryWindow(time.Minute)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return now }
	ctx := context.Background()

	_, _, _ = w.hit(ctx, "10.0.0.1")
	now = now.Add(purgeInterval + time.Second)
	_, _, _ = w.hit(ctx, "10.0.0.2")

	_, stale := w.entries["10.0.0.1"]
	assert.False(t, stale)
	assert.Len(t, w.entries, 1)
}
