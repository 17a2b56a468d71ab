package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Lock provides non-blocking mutual exclusion backed by Redis SET NX.
// Key format: lock:<resource key>. The TTL bounds how long a crashed holder
// can keep a resource occupied; holders that finish normally release early.
type Lock struct {
	client *redis.Client
}

// NewLock creates a Lock wrapping the given Redis client.
func NewLock(client *redis.Client) *Lock {
	return &Lock{client: client}
}

// TryLock attempts to acquire the key. It returns false without blocking
// when another holder owns it.
func (l *Lock) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(key), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire lock: %w", err)
	}
	return ok, nil
}

// Unlock releases the key.
func (l *Lock) Unlock(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}

func (l *Lock) key(resource string) string {
	return "lock:" + resource
}
