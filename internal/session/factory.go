package session

import (
	"context"
	"strings"
	"time"
)

// StoreOptions selects the persistence backend.
type StoreOptions struct {
	DatabaseURL string
	RedisAddr   string
	RedisDB     int
	TTL         time.Duration
}

// NewStore creates a postgres-backed store when configured, then a
// redis-backed one, otherwise in-memory.
func NewStore(ctx context.Context, opts StoreOptions) (Store, error) {
	if strings.TrimSpace(opts.DatabaseURL) != "" {
		return NewPostgresStore(ctx, opts.DatabaseURL)
	}
	if strings.TrimSpace(opts.RedisAddr) != "" {
		return NewRedisStore(ctx, opts.RedisAddr, opts.RedisDB, opts.TTL)
	}
	return NewInMemoryStore(), nil
}
