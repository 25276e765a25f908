// Package mysql keeps the inventory in the MySQL table defined by
// db/schema.sql, through the generated queries in internal/db.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"pantry/internal/db"
)

const (
	maxOpenConns    = 10
	connMaxLifetime = 5 * time.Minute
)

type Store struct {
	conn    *sql.DB
	queries *db.Queries
	log     *zap.Logger
}

func New(queries *db.Queries, logger *zap.Logger) *Store {
	return &Store{queries: queries, log: logger}
}

// Open connects to dsn and pings the server. The schema is applied
// separately from db/schema.sql.
func Open(ctx context.Context, dsn string, logger *zap.Logger) (*Store, error) {
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxOpenConns)
	conn.SetConnMaxLifetime(connMaxLifetime)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	s := New(db.New(conn), logger)
	s.conn = conn
	return s, nil
}

func (s *Store) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
