package kv

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
)

// Redis is a Store backed by a Redis server.
//
// Transient failures are retried with exponential backoff before being
// surfaced, since a shared Redis sits behind a network hop.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps an existing Redis client. All keys are stored under the
// given prefix so the store can share a database with other features.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) backoff() retry.Backoff {
	return retry.WithMaxRetries(3, retry.NewExponential(50*time.Millisecond))
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := retry.Do(ctx, r.backoff(), func(ctx context.Context) error {
		v, err := r.client.Get(ctx, r.prefix+key).Result()
		if errors.Is(err, redis.Nil) {
			return ErrKeyNotFound
		}
		if err != nil {
			return retry.RetryableError(err)
		}
		value = v
		return nil
	})

	return value, err
}

// Set stores value under key, replacing any previous value.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	return retry.Do(ctx, r.backoff(), func(ctx context.Context) error {
		if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

// Delete removes the key.
func (r *Redis) Delete(ctx context.Context, key string) error {
	return retry.Do(ctx, r.backoff(), func(ctx context.Context) error {
		if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

// Close implements io.Closer; the wrapped client is owned by the caller.
func (r *Redis) Close() error {
	return nil
}
