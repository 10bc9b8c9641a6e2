package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/PackSim_Go/internal/creature"
	"github.com/osse101/PackSim_Go/internal/domain"
	"github.com/osse101/PackSim_Go/internal/storage"
)

// Config holds the application configuration
type Config struct {
	// Server
	Port           int     `validate:"min=1,max=65535"`
	RateLimitRPS   float64 `validate:"gt=0"`
	RateLimitBurst int     `validate:"min=1"`
	TrustedProxies []string

	// Logging
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=text json"`
	LogKeep   int    `validate:"gte=0"`

	LogDir      string
	Environment string
	ServiceName string
	Version     string

	// Collection
	Variant       string  `validate:"oneof=catalog pokebox"`
	RarityPolicy  string  `validate:"oneof=tiered shiny"`
	ShinyChance   float64 `validate:"gte=0,lte=1"`
	PackCost      int     `validate:"gte=0"`
	PackSize      int     `validate:"min=1,max=20"`
	StartingCoins int     `validate:"gte=0"`

	// Creature source
	PokeAPIBaseURL    string `validate:"required,url"`
	PokeAPIMaxID      int    `validate:"min=1"`
	CreatureCacheSize int    `validate:"min=1"`

	CatalogSource    string
	CacheDir         string
	PokeAPITimeout   time.Duration
	CreatureCacheTTL time.Duration

	// Storage
	StoreBackend string `validate:"oneof=memory file postgres redis sqlite"`
	StoreCodec   string `validate:"oneof=json msgpack"`
	DBMaxConns   int    `validate:"min=1"`
	RedisDB      int    `validate:"gte=0,lte=15"`

	StoreDir          string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	RedisAddr         string
	RedisPassword     string
	RedisPrefix       string
	SQLitePath        string

	// Events
	EventMaxRetries int `validate:"gte=0"`

	EventRetryDelay     time.Duration
	EventDeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	variant := strings.ToLower(getEnv("VARIANT", domain.VariantPokeBox))
	packSize, packCost := domain.DefaultPackSize, domain.DefaultPackCost
	if variant == domain.VariantCatalog {
		packSize, packCost = DefaultCatalogPackSize, DefaultCatalogPackCost
	}

	cfg := &Config{
		Port:           getEnvAsInt("PORT", DefaultPort),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", DefaultRateLimitBurst),

		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		LogKeep:     getEnvAsInt("LOG_KEEP", DefaultLogKeep),
		Environment: getEnv("ENVIRONMENT", EnvDev),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),

		Variant:       variant,
		RarityPolicy:  strings.ToLower(getEnv("RARITY_POLICY", domain.RarityPolicyTiered)),
		ShinyChance:   getEnvAsFloat("SHINY_CHANCE", domain.DefaultShinyChance),
		PackCost:      getEnvAsInt("PACK_COST", packCost),
		PackSize:      getEnvAsInt("PACK_SIZE", packSize),
		StartingCoins: getEnvAsInt("STARTING_COINS", domain.DefaultStartingCoins),

		CatalogSource:     getEnv("CATALOG_SOURCE", ConfigPathCatalog),
		CacheDir:          getEnv("CACHE_DIR", DefaultCacheDir),
		PokeAPIBaseURL:    getEnv("POKEAPI_BASE_URL", creature.DefaultBaseURL),
		PokeAPIMaxID:      getEnvAsInt("POKEAPI_MAX_ID", creature.DefaultMaxID),
		PokeAPITimeout:    getEnvAsDuration("POKEAPI_TIMEOUT", creature.DefaultTimeout),
		CreatureCacheSize: getEnvAsInt("CREATURE_CACHE_SIZE", creature.DefaultCacheSize),
		CreatureCacheTTL:  getEnvAsDuration("CREATURE_CACHE_TTL", creature.DefaultCacheTTL),

		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", storage.BackendFile)),
		StoreCodec:   strings.ToLower(getEnv("STORE_CODEC", storage.CodecJSON)),
		StoreDir:     getEnv("STORE_DIR", DefaultStoreDir),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "packsim"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		RedisPrefix:   getEnv("REDIS_PREFIX", storage.DefaultRedisPrefix),

		SQLitePath: getEnv("SQLITE_PATH", DefaultSQLitePath),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the environment is a development one.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDev || c.Environment == EnvDevelopment
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// StorageConfig maps the store settings onto storage.Config.
func (c *Config) StorageConfig() storage.Config {
	return storage.Config{
		Backend:         c.StoreBackend,
		Dir:             c.StoreDir,
		PostgresURL:     c.GetDBConnString(),
		MaxConns:        c.DBMaxConns,
		MaxConnIdleTime: c.DBMaxConnIdleTime,
		MaxConnLifetime: c.DBMaxConnLifetime,
		Redis: storage.RedisConfig{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
			Prefix:   c.RedisPrefix,
		},
		SQLitePath: c.SQLitePath,
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer env var, falling back to the default on absence or parse error
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a time.ParseDuration string such as "30s" or "5m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated env var, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
