package config

import "time"

// Configuration file paths
const (
	ConfigPathCatalog = "configs/catalog.json"
	DefaultCacheDir   = ".cache"
)

// Environment names
const (
	EnvDev         = "dev"
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Application defaults
const (
	DefaultPort        = 8080
	DefaultServiceName = "packsim"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultLogKeep     = 10
	DefaultStoreDir    = "data"
	DefaultSQLitePath  = "data/packsim.db"

	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultRateLimitRPS   = 10.0
	DefaultRateLimitBurst = 20

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"

	// Catalog variant economy: a free one-item loot box
	DefaultCatalogPackSize = 1
	DefaultCatalogPackCost = 0
)
