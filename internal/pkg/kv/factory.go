package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	// DriverMemory selects the in-process backend.
	DriverMemory = "memory"
	// DriverRedis selects the Redis backend.
	DriverRedis = "redis"
	// DriverPostgres selects the Postgres backend.
	DriverPostgres = "postgres"
)

// ErrUnknownDriver indicates an unsupported kv driver.
var ErrUnknownDriver = errors.New("kv: unknown driver")

// FactoryOptions groups configuration for kv drivers.
type FactoryOptions struct {
	// RedisClient backs the Redis driver.
	RedisClient *redis.Client
	// RedisPrefix namespaces keys in the Redis driver.
	RedisPrefix string
	// PostgresPool backs the Postgres driver.
	PostgresPool *pgxpool.Pool
	// PostgresTable is the key-value table name for the Postgres driver.
	PostgresTable string
}

// NewFromDriver constructs a Store implementation by driver name.
func NewFromDriver(ctx context.Context, driver string, opts FactoryOptions) (Store, error) {
	switch strings.ToLower(driver) {
	case DriverMemory:
		return NewMemory(), nil
	case DriverRedis:
		if opts.RedisClient == nil {
			return nil, errors.New("kv: redis driver requires a client")
		}
		return NewRedis(opts.RedisClient, opts.RedisPrefix), nil
	case DriverPostgres:
		if opts.PostgresPool == nil {
			return nil, errors.New("kv: postgres driver requires a pool")
		}
		pg := NewPostgres(opts.PostgresPool, opts.PostgresTable)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
