package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FranksOps/scout/internal/cache"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ensure postgresBackend implements cache.Backend
var _ cache.Backend = (*postgresBackend)(nil)

type postgresBackend struct {
	pool *pgxpool.Pool
}

const schema = `
CREATE TABLE IF NOT EXISTS serp_cache (
	query TEXT PRIMARY KEY,
	payload BYTEA NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
`

// New creates a Postgres-backed cache.Backend, shared across instances.
func New(ctx context.Context, dsn string) (cache.Backend, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres cache: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres cache: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to init postgres cache schema: %w", err)
	}

	return &postgresBackend{pool: pool}, nil
}

func (b *postgresBackend) Get(ctx context.Context, query string, maxAge time.Duration) ([]byte, error) {
	var payload []byte
	var createdAt time.Time

	err := b.pool.QueryRow(ctx,
		`SELECT payload, created_at FROM serp_cache WHERE query = $1`, query).
		Scan(&payload, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read postgres cache: %w", err)
	}

	if maxAge > 0 && time.Since(createdAt) > maxAge {
		return nil, nil
	}
	return payload, nil
}

func (b *postgresBackend) Put(ctx context.Context, query string, payload []byte) error {
	_, err := b.pool.Exec(ctx,
		`INSERT INTO serp_cache (query, payload, created_at) VALUES ($1, $2, $3)
		 ON CONFLICT (query) DO UPDATE SET payload = EXCLUDED.payload, created_at = EXCLUDED.created_at`,
		query, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write postgres cache: %w", err)
	}
	return nil
}

func (b *postgresBackend) Close() error {
	b.pool.Close()
	return nil
}
