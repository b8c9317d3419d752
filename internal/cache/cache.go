// Package cache stores derived artifacts, such as generated class schemas, in memory or Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mugiliam/objectifiedsrv/internal/config"
)

type Cache interface {
	// Get returns ErrMiss when key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value. A zero ttl uses the configured default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Clear removes every key owned by this cache.
	Clear(ctx context.Context) error
	Close() error
}

var ErrMiss = errors.New("cache miss")

// New builds the backend selected by cfg.Driver.
func New(ctx context.Context, cfg config.CacheConfig) (Cache, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewMemory(cfg.TTL.Duration), nil
	case "redis":
		return NewRedis(ctx, cfg)
	}
	return nil, fmt.Errorf("unsupported cache driver %q", cfg.Driver)
}
