package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres is a Store backed by a single key-value table.
type Postgres struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgres wraps an existing connection pool. The table name must come
// from trusted configuration because it is interpolated into SQL.
func NewPostgres(pool *pgxpool.Pool, table string) *Postgres {
	if table == "" {
		table = "kv_entries"
	}
	return &Postgres{pool: pool, table: table}
}

// EnsureSchema creates the backing table when it does not exist yet.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`, p.table)

	_, err := p.pool.Exec(ctx, query)
	return err
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (p *Postgres) Get(ctx context.Context, key string) (string, error) {
	query := fmt.Sprintf("SELECT value FROM %s WHERE key = $1", p.table)

	var value string
	err := p.pool.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

// Set stores value under key, replacing any previous value.
func (p *Postgres) Set(ctx context.Context, key, value string) error {
	query := fmt.Sprintf(`INSERT INTO %s (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, p.table)

	_, err := p.pool.Exec(ctx, query, key, value)
	return err
}

// Delete removes the key.
func (p *Postgres) Delete(ctx context.Context, key string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE key = $1", p.table)

	_, err := p.pool.Exec(ctx, query, key)
	return err
}

// Close implements io.Closer; the wrapped pool is owned by the caller.
func (p *Postgres) Close() error {
	return nil
}
