package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/PackSim_Go/internal/domain"
)

// SQLiteStore keeps values in the kv_store table of an embedded database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps a migrated database. Close closes db.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, kvTableSelectSQLite, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgReadFailed, key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, kvTableUpsertSQLite, key, value); err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgWriteFailed, key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, kvTableDeleteSQLite, key); err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgDeleteFailed, key, err)
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgPingFailed, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
