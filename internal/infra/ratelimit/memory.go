package ratelimit

import (
	"context"
	"sync"
	"time"

	"plantcare/internal/domain/service"
)

type window struct {
	count   int
	resetAt time.Time
}

// memoryLimiter keeps per-identifier windows in process memory.
// Counts are not shared between replicas.
type memoryLimiter struct {
	mu          sync.Mutex
	windows     map[string]*window
	interval    time.Duration
	maxRequests int
	now         func() time.Time
	lastSweep   time.Time
}

// NewMemoryLimiter returns an in-process fixed-window limiter.
func NewMemoryLimiter(interval time.Duration, maxRequests int) service.RateLimiter {
	return &memoryLimiter{
		windows:     make(map[string]*window),
		interval:    interval,
		maxRequests: maxRequests,
		now:         time.Now,
	}
}

func (l *memoryLimiter) Check(_ context.Context, identifier string) (service.RateLimitResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	w, ok := l.windows[identifier]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(l.interval)}
		l.windows[identifier] = w
	}

	if w.count >= l.maxRequests {
		return service.RateLimitResult{Allowed: false, Remaining: 0, ResetAt: w.resetAt}, nil
	}
	w.count++

	return service.RateLimitResult{
		Allowed:   true,
		Remaining: l.maxRequests - w.count,
		ResetAt:   w.resetAt,
	}, nil
}

// sweep drops expired windows at most once per interval.
func (l *memoryLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.interval {
		return
	}
	l.lastSweep = now

	for id, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, id)
		}
	}
}
