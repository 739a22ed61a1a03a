package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/strategic-planning/backend/internal/domain/error"
	"github.com/strategic-planning/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxRequests is the default number of report exports allowed per window.
	defaultMaxRequests = 10
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	requests  int
	resetTime time.Time
}

// RateLimiter throttles expensive endpoints such as report exports.
// Authenticated requests are keyed by user, anonymous ones by client IP.
type RateLimiter struct {
	mu             sync.Mutex
	entries        map[string]*rateLimitEntry
	maxRequests    int
	windowDuration time.Duration
	now            func() time.Time
}

// NewRateLimiter creates a new rate limiter with default settings.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultMaxRequests, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
// Non-positive values fall back to the defaults.
func NewRateLimiterWithConfig(maxRequests int, windowDuration time.Duration) *RateLimiter {
	if maxRequests <= 0 {
		maxRequests = defaultMaxRequests
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	return &RateLimiter{
		entries:        make(map[string]*rateLimitEntry),
		maxRequests:    maxRequests,
		windowDuration: windowDuration,
		now:            time.Now,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		retryAfter, ok := rl.allow(rateLimitKey(c))
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

func rateLimitKey(c *gin.Context) string {
	if userID, ok := GetUserIDFromContext(c); ok {
		return "user:" + userID.String()
	}
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = c.Request.RemoteAddr
	}
	return "ip:" + clientIP
}

// allow reports whether a request for key fits in the current window,
// and otherwise how long until the window resets.
func (rl *RateLimiter) allow(key string) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	entry, exists := rl.entries[key]
	if !exists || now.After(entry.resetTime) {
		rl.entries[key] = &rateLimitEntry{
			requests:  1,
			resetTime: now.Add(rl.windowDuration),
		}
		return 0, true
	}

	if entry.requests < rl.maxRequests {
		entry.requests++
		return 0, true
	}

	return entry.resetTime.Sub(now), false
}

// Reset clears the rate limiter state.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.entries = make(map[string]*rateLimitEntry)
}

// Cleanup removes expired entries.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, entry := range rl.entries {
		if now.After(entry.resetTime) {
			delete(rl.entries, key)
		}
	}
}
