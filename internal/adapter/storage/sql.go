package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DelcyVillalba/chic-storefront/internal/core/port"
)

var _ port.Store = (*SQLStore)(nil)

type sqldb interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queries struct {
	load   string
	save   string
	delete string
}

var postgresQueries = queries{
	load: `SELECT payload FROM storefront_kv WHERE name = $1;`,
	save: `
		INSERT INTO storefront_kv (name, payload, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at;`,
	delete: `DELETE FROM storefront_kv WHERE name = $1;`,
}

var sqliteQueries = queries{
	load: `SELECT payload FROM storefront_kv WHERE name = ?;`,
	save: `
		INSERT INTO storefront_kv (name, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at;`,
	delete: `DELETE FROM storefront_kv WHERE name = ?;`,
}

// A SQLStore keeps values in the storefront_kv table, one row per key.
//
// Writes are last-write-wins upserts.
type SQLStore struct {
	sqldb  sqldb
	q      queries
	prefix string
}

func NewSQLStore(db SQLDB, prefix string) SQLStore {
	q := postgresQueries
	if db.Driver() == DriverSQLite {
		q = sqliteQueries
	}
	return SQLStore{sqldb: db, q: q, prefix: prefix}
}

func (s SQLStore) Load(ctx context.Context, key string) ([]byte, error) {
	const op = "SQLStore.Load"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var payload string
	err := s.sqldb.QueryRowContext(ctx, s.q.load, s.name(key)).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, port.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return []byte(payload), nil
}

func (s SQLStore) Save(ctx context.Context, key string, value []byte) error {
	const op = "SQLStore.Save"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err := s.sqldb.ExecContext(ctx, s.q.save, s.name(key), string(value))
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	return nil
}

func (s SQLStore) Delete(ctx context.Context, key string) error {
	const op = "SQLStore.Delete"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err := s.sqldb.ExecContext(ctx, s.q.delete, s.name(key))
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	return nil
}

func (s SQLStore) name(key string) string {
	return s.prefix + key
}
