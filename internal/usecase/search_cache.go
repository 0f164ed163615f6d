package usecase

import (
	"context"
	"time"
)

// Cache is the slice of the redis wrapper the usecases need. Implementations
// must degrade to no-ops when the backing server is unreachable; a cache
// failure never fails a request.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	InvalidateEngineKeys(ctx context.Context) error
}
