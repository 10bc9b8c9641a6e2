package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/PackSim_Go/internal/config"
	"github.com/osse101/PackSim_Go/internal/database"
	"github.com/osse101/PackSim_Go/internal/storage"
)

// setup prepares the configured SQL backend: it creates the postgres
// database when missing and applies the embedded schema migrations.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	switch cfg.StoreBackend {
	case storage.BackendPostgres:
		setupPostgres(ctx, cfg)
	case storage.BackendSQLite:
		setupSQLite(ctx, cfg)
	default:
		fmt.Printf("Store backend %q needs no setup.\n", cfg.StoreBackend)
	}
}

func setupPostgres(ctx context.Context, cfg *config.Config) {
	// Connect to the default 'postgres' database to create the target one
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, defaultConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		_ = conn.Close(ctx)
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", cfg.DBName)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
			_ = conn.Close(ctx)
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
	}
	_ = conn.Close(ctx)

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	fmt.Println("Running migrations...")
	if err := database.MigratePostgres(ctx, pool); err != nil {
		log.Fatalf("Failed to execute migrations: %v", err)
	}
	fmt.Println("Migration completed successfully.")
}

func setupSQLite(ctx context.Context, cfg *config.Config) {
	db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", cfg.SQLitePath, err)
	}
	defer db.Close()

	fmt.Println("Running migrations...")
	if err := database.MigrateSQLite(ctx, db); err != nil {
		log.Fatalf("Failed to execute migrations: %v", err)
	}
	fmt.Printf("Migration of %s completed successfully.\n", cfg.SQLitePath)
}
