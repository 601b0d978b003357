package caching

import (
	"context"
	"time"
)

// CounterStore is the fixed-window counter behind the auth-endpoint rate
// limiter. Incr bumps the counter for key, starting a new window of the
// given length when none is active, and returns the count inside the
// current window.
//
// The in-memory store is correct for a single instance; multi-instance
// deployments inject the Redis store so all instances share windows.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}
