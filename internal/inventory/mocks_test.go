package inventory

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ItemDrop_Go/internal/domain"
	"github.com/osse101/ItemDrop_Go/internal/repository"
)

// MockRepository implements repository.Inventory for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.InventoryTx), args.Error(1)
}

// MockTx implements repository.InventoryTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetOwnedInventoryForUpdate(ctx context.Context, characterID, accountID int64) (*domain.Inventory, error) {
	args := m.Called(ctx, characterID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockTx) CountItems(ctx context.Context, inventoryID int64) (int, error) {
	args := m.Called(ctx, inventoryID)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) ListTemplates(ctx context.Context) ([]domain.ItemTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemTemplate), args.Error(1)
}

func (m *MockTx) InsertItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockTx) AddGold(ctx context.Context, inventoryID int64, delta int) (int, error) {
	args := m.Called(ctx, inventoryID, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) GetItem(ctx context.Context, inventoryID, itemID int64) (*domain.Item, error) {
	args := m.Called(ctx, inventoryID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockTx) IsItemEquipped(ctx context.Context, inventoryID, itemID int64) (bool, error) {
	args := m.Called(ctx, inventoryID, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) DeleteItem(ctx context.Context, inventoryID, itemID int64) error {
	args := m.Called(ctx, inventoryID, itemID)
	return args.Error(0)
}

func (m *MockTx) DeleteUnequippedItems(ctx context.Context, inventoryID int64) ([]int, error) {
	args := m.Called(ctx, inventoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure MockTx implements repository.InventoryTx
var _ repository.InventoryTx = (*MockTx)(nil)
