package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/maxvelasco/portuguese-map/internal/platform/obs"
	"github.com/maxvelasco/portuguese-map/internal/ports"
)

// RedisKV stores values as plain redis strings under an optional prefix.
type RedisKV struct {
	Client *redis.Client
	Prefix string
}

func NewRedisKV(client *redis.Client, prefix string) *RedisKV {
	return &RedisKV{Client: client, Prefix: prefix}
}

// OpenRedis connects to addr and verifies the connection.
func OpenRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("open redis: ping %q: %w", addr, err)
	}
	return client, nil
}

var _ ports.KeyValueStore = (*RedisKV)(nil)

func (s *RedisKV) Get(ctx context.Context, key string) (_ string, err error) {
	defer obs.Time(ctx, "kv.redis.Get")(&err)

	v, err := s.Client.Get(ctx, s.Prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ports.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get kv key=%q: %w", key, err)
	}
	return v, nil
}

func (s *RedisKV) Set(ctx context.Context, key, value string) (err error) {
	defer obs.Time(ctx, "kv.redis.Set")(&err)

	if err := s.Client.Set(ctx, s.Prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("set kv key=%q: %w", key, err)
	}
	return nil
}

func (s *RedisKV) Delete(ctx context.Context, key string) (err error) {
	defer obs.Time(ctx, "kv.redis.Delete")(&err)

	if err := s.Client.Del(ctx, s.Prefix+key).Err(); err != nil {
		return fmt.Errorf("delete kv key=%q: %w", key, err)
	}
	return nil
}
