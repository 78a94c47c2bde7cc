package service

import (
	"context"
	"time"
)

// RateLimitResult is the verdict for one request against a fixed window.
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// RateLimiter counts requests per identifier in fixed windows.
type RateLimiter interface {
	Check(ctx context.Context, identifier string) (RateLimitResult, error)
}
