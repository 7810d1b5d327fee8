package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ItemDrop_Go/internal/database/generated"
	"github.com/osse101/ItemDrop_Go/internal/domain"
	"github.com/osse101/ItemDrop_Go/internal/repository"
)

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{
		db: db,
		q:  generated.New(db),
	}
}

// InventoryTx implements repository.InventoryTx
type InventoryTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

// BeginTx starts a new transaction
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &InventoryTx{
		tx: tx,
		q:  r.q.WithTx(tx),
	}, nil
}

// Commit commits the transaction
func (t *InventoryTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *InventoryTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetOwnedInventoryForUpdate locks the inventory row of characterID when the
// character belongs to accountID. Concurrent operations on the same inventory
// queue behind this lock until the transaction ends.
func (t *InventoryTx) GetOwnedInventoryForUpdate(ctx context.Context, characterID, accountID int64) (*domain.Inventory, error) {
	row, err := t.q.GetOwnedInventoryForUpdate(ctx, generated.GetOwnedInventoryForUpdateParams{
		CharacterID: characterID,
		AccountID:   accountID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLockInventory, err)
	}
	return mapInventory(row), nil
}

// CountItems counts the items held by an inventory
func (t *InventoryTx) CountItems(ctx context.Context, inventoryID int64) (int, error) {
	n, err := t.q.CountItemsByInventory(ctx, inventoryID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountItems, err)
	}
	return int(n), nil
}

// ListTemplates reads the catalog inside the transaction
func (t *InventoryTx) ListTemplates(ctx context.Context) ([]domain.ItemTemplate, error) {
	return listTemplates(ctx, t.q)
}

// InsertItem materializes an item into its inventory
func (t *InventoryTx) InsertItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	level, err := toInt32("item_level", item.ItemLevel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertItem, err)
	}
	price, err := toInt32("price", item.Price)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertItem, err)
	}

	row, err := t.q.CreateItem(ctx, generated.CreateItemParams{
		InventoryID: item.InventoryID,
		ItemListID:  item.ItemListID,
		Name:        item.Name,
		Type:        item.Type,
		Rarity:      item.Rarity,
		ItemLevel:   level,
		Price:       price,
		Equippable:  item.Equippable,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertItem, err)
	}
	created := mapItem(row)
	return &created, nil
}

// AddGold adjusts the balance by delta. A balance that would go negative is
// rejected by the gold CHECK constraint and reported as domain.ErrInsufficientFunds.
// A delta or balance beyond the INTEGER range is a store failure.
func (t *InventoryTx) AddGold(ctx context.Context, inventoryID int64, delta int) (int, error) {
	d, err := toInt32("gold delta", delta)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateGold, err)
	}

	gold, err := t.q.AddInventoryGold(ctx, generated.AddInventoryGoldParams{
		Delta: d,
		ID:    inventoryID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInventoryNotFound
		}
		if isCheckViolation(err) {
			return 0, domain.ErrInsufficientFunds
		}
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateGold, err)
	}
	return int(gold), nil
}

// GetItem retrieves an item scoped to its inventory
func (t *InventoryTx) GetItem(ctx context.Context, inventoryID, itemID int64) (*domain.Item, error) {
	row, err := t.q.GetItemInInventory(ctx, generated.GetItemInInventoryParams{
		ID:          itemID,
		InventoryID: inventoryID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetItem, err)
	}
	item := mapItem(row)
	return &item, nil
}

// IsItemEquipped reports whether itemID occupies a slot of the inventory's equip record
func (t *InventoryTx) IsItemEquipped(ctx context.Context, inventoryID, itemID int64) (bool, error) {
	equipped, err := t.q.IsItemEquipped(ctx, generated.IsItemEquippedParams{
		InventoryID: inventoryID,
		ItemID:      itemID,
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckEquipped, err)
	}
	return equipped, nil
}

// DeleteItem removes one item from its inventory
func (t *InventoryTx) DeleteItem(ctx context.Context, inventoryID, itemID int64) error {
	n, err := t.q.DeleteItem(ctx, generated.DeleteItemParams{
		ID:          itemID,
		InventoryID: inventoryID,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItem, err)
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// DeleteUnequippedItems deletes and prices every unequipped item in one statement
func (t *InventoryTx) DeleteUnequippedItems(ctx context.Context, inventoryID int64) ([]int, error) {
	rows, err := t.q.DeleteUnequippedItems(ctx, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteItems, err)
	}
	prices := make([]int, len(rows))
	for i, p := range rows {
		prices[i] = int(p)
	}
	return prices, nil
}
