package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddleware_BlocksAfterBurst(t *testing.T) {
	limiter := NewIPRateLimiter(1, 3)
	frozen := time.Now()
	limiter.now = func() time.Time { return frozen }

	handler := RateLimitMiddleware(limiter, nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(HeaderRetryAfter))

	// A different client has its own bucket
	other := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	other.RemoteAddr = "10.0.0.7:5555"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Tokens refill with time
	frozen = frozen.Add(2 * time.Second)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware_OperationalPathsBypass(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	handler := RateLimitMiddleware(limiter, nil)(okHandler())

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 0, limiter.Len())
}

func TestRateLimitMiddleware_TrustedProxy(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	frozen := time.Now()
	limiter.now = func() time.Time { return frozen }
	handler := RateLimitMiddleware(limiter, []string{"10.0.0.1"})(okHandler())

	send := func(client string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/types", nil)
		req.RemoteAddr = "10.0.0.1:80"
		req.Header.Set(HeaderForwardedFor, "spoofed, "+client)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.5"))
	assert.Equal(t, http.StatusOK, send("203.0.113.6"), "clients behind the proxy are limited separately")
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.5"))
}

func TestIPRateLimiter_SweepsIdleVisitors(t *testing.T) {
	limiter := NewIPRateLimiter(10, 10)
	now := time.Now()
	limiter.now = func() time.Time { return now }
	limiter.lastSweep = now

	limiter.Allow("a")
	limiter.Allow("b")
	require.Equal(t, 2, limiter.Len())

	now = now.Add(LimiterIdleTTL + LimiterSweepInterval)
	limiter.Allow("c")

	assert.Equal(t, 1, limiter.Len())
}
