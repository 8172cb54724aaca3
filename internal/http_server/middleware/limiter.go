package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	. "github.com/half-nothing/simple-flights/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

// SlidingWindowLimiter 滑动窗口限流器
type SlidingWindowLimiter struct {
	windowSize     time.Duration
	maxRequests    int
	requestRecords map[string][]time.Time
	mu             sync.Mutex
	now            func() time.Time
}

func NewSlidingWindowLimiter(windowSize time.Duration, maxRequests int) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		windowSize:     windowSize,
		maxRequests:    maxRequests,
		requestRecords: make(map[string][]time.Time),
		now:            time.Now,
	}
}

// Allow 检查是否允许请求, 不允许时返回最早一条记录离开窗口所需的时间
func (l *SlidingWindowLimiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	windowStart := now.Add(-l.windowSize)
	records := l.requestRecords[key]
	for len(records) > 0 && !records[0].After(windowStart) {
		records = records[1:]
	}

	if len(records) >= l.maxRequests {
		l.requestRecords[key] = records
		return false, records[0].Sub(windowStart)
	}

	l.requestRecords[key] = append(records, now)
	return true, 0
}

// StartCleanup 定期清理过期的记录, ctx 结束时停止
func (l *SlidingWindowLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.cleanup()
			}
		}
	}()
}

func (l *SlidingWindowLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	threshold := l.now().Add(-l.windowSize)
	for key, records := range l.requestRecords {
		if len(records) == 0 || !records[len(records)-1].After(threshold) {
			delete(l.requestRecords, key)
		}
	}
}

func (l *SlidingWindowLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.requestRecords)
}

// RateLimitMiddleware 创建 Echo 限流中间件
func RateLimitMiddleware(limiter *SlidingWindowLimiter, keyFunc func(c echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if allow, retryAfter := limiter.Allow(keyFunc(c)); !allow {
				seconds := int(retryAfter.Seconds())
				if seconds < 1 {
					seconds = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
				return NewErrorResponse(c, &ErrRateLimitExceeded)
			}
			return next(c)
		}
	}
}

// CombinedKeyFunc 组合IP和端点生成键
func CombinedKeyFunc(c echo.Context) string {
	return c.RealIP() + "|" + c.Path()
}
