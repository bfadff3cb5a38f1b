package ratelimit

import "context"

// Limiter enforces a per-client request budget. Keys are caller-defined,
// typically the client IP or the authenticated user id.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Remaining(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}
