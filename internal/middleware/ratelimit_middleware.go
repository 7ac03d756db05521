package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mobelio/estimator_api/internal/utils"
)

// WriteRateLimiter throttles mutating admin requests per client IP. Reads pass
// through untouched. The admin panel has no auth (single-operator tool), so
// this is the only brake on runaway write loops.
type WriteRateLimiter struct {
	mu       sync.Mutex
	attempts map[string]*windowInfo
	limit    int
	window   time.Duration
}

type windowInfo struct {
	count   int
	firstAt time.Time
}

// NewWriteRateLimiter allows limit mutations per window per IP.
func NewWriteRateLimiter(limit int, window time.Duration) *WriteRateLimiter {
	rl := &WriteRateLimiter{
		attempts: make(map[string]*windowInfo),
		limit:    limit,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

// Handle returns the gin middleware.
func (r *WriteRateLimiter) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		if !r.allow(c.ClientIP()) {
			utils.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many admin changes, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (r *WriteRateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	info, exists := r.attempts[ip]
	if !exists || now.Sub(info.firstAt) > r.window {
		r.attempts[ip] = &windowInfo{count: 1, firstAt: now}
		return true
	}
	info.count++
	return info.count <= r.limit
}

// cleanup drops expired windows so the map does not grow unbounded.
func (r *WriteRateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		r.mu.Lock()
		now := time.Now()
		for ip, info := range r.attempts {
			if now.Sub(info.firstAt) > r.window {
				delete(r.attempts, ip)
			}
		}
		r.mu.Unlock()
	}
}
