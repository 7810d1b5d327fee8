package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ItemDrop_Go/internal/database/postgres"
	"github.com/osse101/ItemDrop_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Accounts   repository.Account
	Characters repository.Character
	Inventory  repository.Inventory
	Catalog    repository.Catalog
}

// InitializeRepositories creates all repository implementations on the shared pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Accounts:   postgres.NewAccountRepository(dbPool),
		Characters: postgres.NewCharacterRepository(dbPool),
		Inventory:  postgres.NewInventoryRepository(dbPool),
		Catalog:    postgres.NewCatalogRepository(dbPool),
	}
}
