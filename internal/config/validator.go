package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/osse101/PackSim_Go/internal/storage"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the variables every deployment must set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"VARIANT",
	"STORE_BACKEND",
}

// BackendEnvVars lists the extra variables each store backend needs
var BackendEnvVars = map[string][]string{
	storage.BackendPostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
	storage.BackendRedis:    {"REDIS_ADDR"},
	storage.BackendSQLite:   {"SQLITE_PATH"},
	storage.BackendFile:     {"STORE_DIR"},
}

// Example values shipped in .env.example
const (
	ExampleDBPassword    = "change_this_secure_password"
	ExampleRedisPassword = "change_this_redis_password"
)

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	required := append([]string(nil), RequiredEnvVars...)
	required = append(required, BackendEnvVars[strings.ToLower(os.Getenv("STORE_BACKEND"))]...)

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for values that are legal but probably not intended
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("REDIS_PASSWORD") == ExampleRedisPassword {
		warnings = append(warnings, "REDIS_PASSWORD appears to be using the example value - please use a secure password")
	}

	if strings.EqualFold(os.Getenv("STORE_BACKEND"), storage.BackendMemory) &&
		strings.EqualFold(os.Getenv("ENVIRONMENT"), EnvProduction) {
		warnings = append(warnings, "STORE_BACKEND=memory loses every collection on restart - not recommended in production")
	}

	cost, costErr := strconv.Atoi(os.Getenv("PACK_COST"))
	coins, coinsErr := strconv.Atoi(os.Getenv("STARTING_COINS"))
	if costErr == nil && coinsErr == nil && cost > coins {
		warnings = append(warnings, fmt.Sprintf("PACK_COST (%d) exceeds STARTING_COINS (%d) - new players cannot open a pack", cost, coins))
	}

	if chance, err := strconv.ParseFloat(os.Getenv("SHINY_CHANCE"), 64); err == nil && chance > 0.5 {
		warnings = append(warnings, fmt.Sprintf("SHINY_CHANCE %.2f makes most pulls shiny", chance))
	}

	return warnings, nil
}
