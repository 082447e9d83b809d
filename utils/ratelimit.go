package utils

import (
	"sync"
	"time"
)

type visitor struct {
	count   int
	resetAt time.Time
}

// RateLimiter is a fixed-window per-IP limiter for the public checkout
// endpoint. State is in-process only; it is not shared across instances.
type RateLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	visitors map[string]*visitor
	now      func() time.Time
}

// NewRateLimiter allows limit requests per key within each window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		window:   window,
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

// Allow records a request for key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, ok := rl.visitors[key]
	if !ok || now.After(v.resetAt) {
		rl.visitors[key] = &visitor{count: 1, resetAt: now.Add(rl.window)}
		rl.prune(now)
		return true
	}
	v.count++
	return v.count <= rl.limit
}

// prune drops expired entries so the map does not grow unbounded. Called
// with the lock held.
func (rl *RateLimiter) prune(now time.Time) {
	if len(rl.visitors) < 1024 {
		return
	}
	for key, v := range rl.visitors {
		if now.After(v.resetAt) {
			delete(rl.visitors, key)
		}
	}
}
