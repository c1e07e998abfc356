package codestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cemtras/authgate/internal/auth/entity"
	"github.com/cemtras/authgate/internal/pkg/clock"
	"github.com/cemtras/authgate/internal/pkg/goerror"
	"github.com/redis/go-redis/v9"
)

// redisKeyGrace keeps expired entries around briefly so the expiry path can
// still observe and clean them up instead of seeing a silent miss.
const redisKeyGrace = time.Minute

// Redis is a shared code store backed by redis, for multi-instance
// deployments.
type Redis struct {
	client *redis.Client
	clock  clock.Clocker
	prefix string
}

// NewRedis builds a redis-backed code store. Keys are namespaced with the
// given prefix.
func NewRedis(client *redis.Client, clk clock.Clocker, prefix string) *Redis {
	if prefix == "" {
		prefix = "authgate:otp:"
	}

	return &Redis{client: client, clock: clk, prefix: prefix}
}

// Get returns the pending code entry for the identifier.
func (r *Redis) Get(ctx context.Context, identifier string) (*entity.CodeEntry, error) {
	raw, err := r.client.Get(ctx, r.prefix+identifier).Result()
	if errors.Is(err, redis.Nil) {
		return nil, goerror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var entry entity.CodeEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, fmt.Errorf("decode code entry: %w", err)
	}

	return &entry, nil
}

// Put stores the entry for the identifier, replacing any pending code. The
// redis key lives slightly past the entry expiry.
func (r *Redis) Put(ctx context.Context, identifier string, entry entity.CodeEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode code entry: %w", err)
	}

	ttl := entry.ExpiresAt.Sub(r.clock.Now()) + redisKeyGrace
	if ttl <= 0 {
		ttl = redisKeyGrace
	}

	return r.client.Set(ctx, r.prefix+identifier, string(raw), ttl).Err()
}

// Delete removes the pending code for the identifier, if any.
func (r *Redis) Delete(ctx context.Context, identifier string) error {
	return r.client.Del(ctx, r.prefix+identifier).Err()
}
