package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open creates the database file and the inventory table when missing.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if path == "" {
		path = "pantry.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single writer avoids SQLITE_BUSY under concurrent requests
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS inventory (
		name TEXT PRIMARY KEY,
		quantity INTEGER
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create inventory table: %w", err)
	}
	return &Store{db: db, log: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
