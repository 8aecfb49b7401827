// Package cache provides a Redis-backed read-through cache for resolved URLs.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "short:"

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to addr. Entries expire after ttl; zero keeps them forever.
func NewRedis(addr string, ttl time.Duration) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Get(ctx context.Context, id string) (string, bool, error) {
	url, err := r.client.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}

func (r *Redis) Set(ctx context.Context, id, url string) error {
	return r.client.Set(ctx, keyPrefix+id, url, r.ttl).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
