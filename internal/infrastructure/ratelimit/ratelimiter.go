package ratelimit

import "context"

type Config struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

// RateLimiter throttles the public API per client key. This is independent
// of the storewide daily order cap, which lives in the placement flow.
type RateLimiter interface {
	Allow(ctx context.Context, key string, config Config) (bool, error)
	Reset(ctx context.Context, key string) error
}
