package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session state in redis so it survives restarts and is
// shared between storefront replicas. Keys follow the
// <service>:<session>:<key> scheme.
type RedisStore struct {
	client      *redis.Client
	serviceName string
	ttl         time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects to the given redis address. Entries expire after
// ttl; a zero ttl keeps them forever.
func NewRedisStore(addr, serviceName string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:      redis.NewClient(&redis.Options{Addr: addr}),
		serviceName: serviceName,
		ttl:         ttl,
	}
}

func (r *RedisStore) Get(ctx context.Context, sessionID, key string, v any) error {
	raw, err := r.client.Get(ctx, r.generateKey(sessionID, key)).Result()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("session: redis get %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("session: decode %q: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Set(ctx context.Context, sessionID, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("session: encode %q: %w", key, err)
	}
	if err := r.client.Set(ctx, r.generateKey(sessionID, key), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("session: redis set %q: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID, key string) error {
	if err := r.client.Del(ctx, r.generateKey(sessionID, key)).Err(); err != nil {
		return fmt.Errorf("session: redis delete %q: %w", key, err)
	}
	return nil
}

func (r *RedisStore) generateKey(sessionID, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.serviceName, sessionID, key)
}
