// Package postgres keeps the inventory collection in a Postgres table.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const ensureTable = `CREATE TABLE IF NOT EXISTS inventory (
	name TEXT PRIMARY KEY,
	quantity BIGINT
)`

type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

// Open connects to dsn, pings the server and creates the inventory table if needed.
func Open(ctx context.Context, dsn string, logger *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, ensureTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure inventory table: %w", err)
	}
	return &Store{pool: pool, log: logger}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}
