package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/FranksOps/scout/internal/cache"
	_ "modernc.org/sqlite"
)

// ensure sqliteBackend implements cache.Backend
var _ cache.Backend = (*sqliteBackend)(nil)

type sqliteBackend struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS serp_cache (
	query TEXT PRIMARY KEY,
	payload BLOB NOT NULL,
	created_at DATETIME NOT NULL
);
`

// New creates a SQLite-backed cache.Backend.
func New(dsn string) (cache.Backend, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite cache: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init sqlite cache schema: %w", err)
	}

	return &sqliteBackend{db: db}, nil
}

func (b *sqliteBackend) Get(ctx context.Context, query string, maxAge time.Duration) ([]byte, error) {
	row := b.db.QueryRowContext(ctx,
		`SELECT payload, created_at FROM serp_cache WHERE query = ?`, query)

	var payload []byte
	var createdAt time.Time
	if err := row.Scan(&payload, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read sqlite cache: %w", err)
	}

	if maxAge > 0 && time.Since(createdAt) > maxAge {
		return nil, nil
	}
	return payload, nil
}

func (b *sqliteBackend) Put(ctx context.Context, query string, payload []byte) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO serp_cache (query, payload, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(query) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at`,
		query, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write sqlite cache: %w", err)
	}
	return nil
}

func (b *sqliteBackend) Close() error {
	return b.db.Close()
}
