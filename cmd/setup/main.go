package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/ItemDrop_Go/internal/bootstrap"
	"github.com/osse101/ItemDrop_Go/internal/catalog"
	"github.com/osse101/ItemDrop_Go/internal/config"
	"github.com/osse101/ItemDrop_Go/internal/database"
	"github.com/osse101/ItemDrop_Go/internal/validation"
)

// setup creates the database if it is missing, applies migrations and loads the catalog seed.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	ctx := context.Background()

	// 1. Connect to default 'postgres' database to create the new database
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBSSLMode)
	conn, err := pgx.Connect(ctx, defaultConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	// 2. Check if database exists
	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", cfg.DBName)
		if _, err = conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
	}
	conn.Close(ctx)

	// 3. Apply embedded migrations
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	fmt.Println("Running migrations...")
	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to execute migrations: %v", err)
	}
	fmt.Println("Migrations completed successfully.")

	// 4. Seed the item catalog
	repos := bootstrap.InitializeRepositories(pool)
	svc := catalog.NewService(repos.Catalog, validation.NewSchemaValidator(catalog.Schemas()), nil)
	if err := bootstrap.SeedCatalog(ctx, svc, cfg.CatalogSeedFile); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
}
