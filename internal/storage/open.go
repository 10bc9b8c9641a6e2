package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PackSim_Go/internal/database"
	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/logger"
)

// Config selects and configures a backend.
type Config struct {
	Backend string
	Dir     string

	PostgresURL     string
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration

	Redis RedisConfig

	SQLitePath string
}

// Open builds the configured backend, running migrations for the SQL ones.
func Open(ctx context.Context, cfg Config) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Backend {
	case BackendMemory:
		store = NewMemoryStore()
	case "", BackendFile:
		store, err = NewFileStore(cfg.Dir, DefaultFileExt)
	case BackendPostgres:
		store, err = openPostgres(ctx, cfg)
	case BackendRedis:
		store, err = NewRedisStore(ctx, cfg.Redis)
	case BackendSQLite:
		store, err = openSQLite(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgStoreOpened, LogFieldBackend, cfg.Backend)
	return store, nil
}

func openPostgres(ctx context.Context, cfg Config) (*PostgresStore, error) {
	pool, err := database.NewPool(ctx, cfg.PostgresURL, cfg.MaxConns, cfg.MaxConnIdleTime, cfg.MaxConnLifetime)
	if err != nil {
		return nil, err
	}
	if err := database.MigratePostgres(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return NewPostgresStore(pool), nil
}

func openSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := database.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := database.MigrateSQLite(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return NewSQLiteStore(db), nil
}
