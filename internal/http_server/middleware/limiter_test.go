package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSlidingWindowLimiterAllow(t *testing.T) {
	now := time.Date(2022, time.January, 30, 12, 0, 0, 0, time.UTC)
	limiter := NewSlidingWindowLimiter(time.Minute, 2)
	limiter.now = func() time.Time { return now }

	allow, _ := limiter.Allow("a")
	assert.True(t, allow)
	now = now.Add(10 * time.Second)
	allow, _ = limiter.Allow("a")
	assert.True(t, allow)

	allow, retryAfter := limiter.Allow("a")
	assert.False(t, allow)
	assert.Equal(t, 50*time.Second, retryAfter)

	// 不同的键互不影响
	allow, _ = limiter.Allow("b")
	assert.True(t, allow)

	now = now.Add(51 * time.Second)
	allow, _ = limiter.Allow("a")
	assert.True(t, allow)
}

func TestSlidingWindowLimiterCleanup(t *testing.T) {
	now := time.Date(2022, time.January, 30, 12, 0, 0, 0, time.UTC)
	limiter := NewSlidingWindowLimiter(time.Minute, 5)
	limiter.now = func() time.Time { return now }

	limiter.Allow("a")
	now = now.Add(30 * time.Second)
	limiter.Allow("b")
	now = now.Add(45 * time.Second)

	limiter.cleanup()
	assert.Equal(t, 1, limiter.size())
}

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	limiter := NewSlidingWindowLimiter(time.Minute, 1)
	e.Use(RateLimitMiddleware(limiter, CombinedKeyFunc))
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "RATE_LIMIT_EXCEEDED")
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
