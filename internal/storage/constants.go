package storage

import "time"

// Defaults
const (
	DefaultFileExt      = ".json"
	DefaultRedisPrefix  = "packsim:"
	DefaultPingTimeout  = 5 * time.Second
	kvTableUpsertPG     = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW()) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	kvTableSelectPG     = `SELECT value FROM kv_store WHERE key = $1`
	kvTableDeletePG     = `DELETE FROM kv_store WHERE key = $1`
	kvTableUpsertSQLite = `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	kvTableSelectSQLite = `SELECT value FROM kv_store WHERE key = ?`
	kvTableDeleteSQLite = `DELETE FROM kv_store WHERE key = ?`
)

// Error messages
const (
	ErrMsgReadFailed   = "failed to read key"
	ErrMsgWriteFailed  = "failed to write key"
	ErrMsgDeleteFailed = "failed to delete key"
	ErrMsgInvalidKey   = "invalid storage key"
	ErrMsgPingFailed   = "store is unreachable"
)

// Log messages
const (
	LogMsgStoreOpened = "Collection store opened"
	LogFieldBackend   = "backend"
	LogFieldKey       = "key"
)
