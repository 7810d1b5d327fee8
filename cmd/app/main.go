package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/ItemDrop_Go/internal/account"
	"github.com/osse101/ItemDrop_Go/internal/auth"
	"github.com/osse101/ItemDrop_Go/internal/bootstrap"
	"github.com/osse101/ItemDrop_Go/internal/catalog"
	"github.com/osse101/ItemDrop_Go/internal/character"
	"github.com/osse101/ItemDrop_Go/internal/config"
	"github.com/osse101/ItemDrop_Go/internal/database"
	"github.com/osse101/ItemDrop_Go/internal/handler"
	"github.com/osse101/ItemDrop_Go/internal/inventory"
	"github.com/osse101/ItemDrop_Go/internal/server"
	"github.com/osse101/ItemDrop_Go/internal/validation"
)

// @title ItemDrop API
// @version 1.0
// @description Accounts, characters and the random item draw / sell engine.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logger", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("ItemDrop exited with error", "error", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	warnings, err := config.ValidateEnvWithWarnings()
	switch {
	case err != nil && cfg.IsProduction():
		return err
	case err != nil:
		slog.Warn("Environment validation failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}

	if cfg.MigrateOnStart {
		if err := database.Migrate(ctx, dbPool); err != nil {
			dbPool.Close()
			return err
		}
	}

	denylist, redisDenylist, err := bootstrap.InitializeDenylist(ctx, cfg)
	if err != nil {
		dbPool.Close()
		return err
	}

	eventBus := bootstrap.InitializeEventSystem()
	repos := bootstrap.InitializeRepositories(dbPool)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	characterService := character.NewService(repos.Characters, eventBus)
	accountService := account.NewService(repos.Accounts, characterService, tokens, denylist, eventBus)
	inventoryService := inventory.NewService(repos.Inventory, eventBus)
	catalogService := catalog.NewService(repos.Catalog, validation.NewSchemaValidator(catalog.Schemas()), eventBus)

	if err := accountService.EnsureAdmin(ctx, cfg.AdminUserID, cfg.AdminPassword); err != nil {
		slog.Error("Failed to ensure admin account", "error", err)
	}
	if err := bootstrap.SeedCatalog(ctx, catalogService, cfg.CatalogSeedFile); err != nil {
		slog.Error("Catalog seed failed", "error", err)
	}

	checkers := map[string]handler.HealthChecker{"database": dbPool}
	if redisDenylist != nil {
		checkers["redis"] = redisDenylist
	}

	srv := server.NewServer(cfg, server.Dependencies{
		Accounts:   accountService,
		Characters: characterService,
		Inventory:  inventoryService,
		Catalog:    catalogService,
		Tokens:     tokens,
		Denylist:   denylist,
		Checkers:   checkers,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
		Redis:  redisDenylist,
	})

	return err
}
