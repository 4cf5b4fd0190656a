package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimiter is a per-remote-IP token bucket, used on the auth endpoints.
type RateLimiter struct {
	buckets map[string]*bucket
	logger  *slog.Logger
	rate    int
	window  time.Duration
	mu      sync.Mutex
}

type bucket struct {
	lastRefill time.Time
	tokens     int
}

// NewRateLimiter allows rate requests per window per remote IP.
func NewRateLimiter(rate int, window time.Duration, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		rate:    rate,
		window:  window,
		logger:  logger,
	}
}

// Allow reports whether a request from key may proceed and consumes a token
// when it may.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.buckets[key]
	if !ok {
		rl.buckets[key] = &bucket{lastRefill: now, tokens: rl.rate - 1}
		return true
	}

	// Full refill once the window has passed; also the cleanup point for
	// idle buckets, which are simply reset.
	if now.Sub(b.lastRefill) >= rl.window {
		b.tokens = rl.rate
		b.lastRefill = now
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// Middleware rejects over-limit requests with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}

		if !rl.Allow(host) {
			rl.logger.Warn("rate limit exceeded", "remote_addr", host, "path", r.URL.Path)
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
