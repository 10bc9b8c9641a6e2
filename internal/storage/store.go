// Package storage is the key-value persistence layer behind the collection.
// Each backend stores opaque byte values under string keys; a Codec turns
// collection state into those bytes.
package storage

import (
	"context"
)

// Store is a key-value store. Get returns domain.ErrKeyNotFound for absent keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Backend names
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendSQLite   = "sqlite"
)
