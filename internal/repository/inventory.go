package repository

import (
	"context"

	"github.com/osse101/ItemDrop_Go/internal/domain"
)

// Inventory defines the interface for inventory persistence
type Inventory interface {
	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx defines the interface for inventory transactions.
// Every method runs inside the same database transaction.
type InventoryTx interface {
	Tx
	// GetOwnedInventoryForUpdate locks the inventory of characterID if it is
	// owned by accountID, otherwise returns domain.ErrInventoryNotFound
	GetOwnedInventoryForUpdate(ctx context.Context, characterID, accountID int64) (*domain.Inventory, error)
	CountItems(ctx context.Context, inventoryID int64) (int, error)
	ListTemplates(ctx context.Context) ([]domain.ItemTemplate, error)
	InsertItem(ctx context.Context, item domain.Item) (*domain.Item, error)
	// AddGold applies delta to the balance and returns the new balance
	AddGold(ctx context.Context, inventoryID int64, delta int) (int, error)
	// GetItem returns domain.ErrItemNotFound unless itemID belongs to inventoryID
	GetItem(ctx context.Context, inventoryID, itemID int64) (*domain.Item, error)
	IsItemEquipped(ctx context.Context, inventoryID, itemID int64) (bool, error)
	DeleteItem(ctx context.Context, inventoryID, itemID int64) error
	// DeleteUnequippedItems removes every unequipped item and returns their prices
	DeleteUnequippedItems(ctx context.Context, inventoryID int64) ([]int, error)
}
