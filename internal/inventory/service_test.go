package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemDrop_Go/internal/domain"
	"github.com/osse101/ItemDrop_Go/internal/event"
)

const (
	testCharacterID int64 = 11
	testAccountID   int64 = 7
	testInventoryID int64 = 3
)

// Test fixtures
func createTestInventory(gold, maxSlots int) *domain.Inventory {
	return &domain.Inventory{
		ID:          testInventoryID,
		CharacterID: testCharacterID,
		Gold:        gold,
		MaxSlots:    maxSlots,
		Items:       []domain.Item{},
	}
}

func createTestTemplates() []domain.ItemTemplate {
	return []domain.ItemTemplate{
		{ID: 1, Name: "Rusty Sword", Type: domain.ItemTypeWeapon, Rarity: domain.RarityCommon, ItemLevel: 1, Price: 50, Equippable: true},
		{ID: 2, Name: "Leather Cap", Type: domain.ItemTypeHead, Rarity: domain.RarityUncommon, ItemLevel: 3, Price: 80, Equippable: true},
		{ID: 3, Name: "Red Potion", Type: domain.ItemTypeConsumable, Rarity: domain.RarityCommon, ItemLevel: 1, Price: 10},
	}
}

func assertMethodNotCalled(t *testing.T, m *MockTx, method string) {
	t.Helper()
	for _, call := range m.Calls {
		assert.NotEqual(t, method, call.Method, "%s should not have been called", method)
	}
}

func newTestService(repo *MockRepository, pub event.Publisher, pick int) *service {
	svc := NewService(repo, pub).(*service)
	svc.rnd = func(int) int { return pick }
	return svc
}

func setupTx(repo *MockRepository) *MockTx {
	tx := new(MockTx)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("Rollback", mock.Anything).Return(nil)
	return tx
}

// =============================================================================
// DrawRandomItem
// =============================================================================

func TestDrawRandomItem_Success(t *testing.T) {
	repo := new(MockRepository)
	tx := setupTx(repo)
	bus := event.NewMemoryBus()
	var published []event.Event
	bus.Subscribe(event.ItemDrawn, func(_ context.Context, e event.Event) error {
		published = append(published, e)
		return nil
	})
	svc := newTestService(repo, bus, 1)
	ctx := context.Background()

	templates := createTestTemplates()
	tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(createTestInventory(1000, 20), nil)
	tx.On("CountItems", ctx, testInventoryID).Return(4, nil)
	tx.On("ListTemplates", ctx).Return(templates, nil)
	tx.On("InsertItem", ctx, mock.MatchedBy(func(it domain.Item) bool {
		return it.InventoryID == testInventoryID && it.ItemListID == 2 && it.Name == "Leather Cap" && it.Price == 80
	})).Return(&domain.Item{ID: 99, InventoryID: testInventoryID, ItemListID: 2, Name: "Leather Cap", Price: 80}, nil)
	tx.On("AddGold", ctx, testInventoryID, -domain.RandomItemCost).Return(900, nil)
	tx.On("Commit", ctx).Return(nil)

	result, err := svc.DrawRandomItem(ctx, testCharacterID, testAccountID)

	require.NoError(t, err)
	assert.Equal(t, int64(99), result.Item.ID)
	assert.Equal(t, "Leather Cap", result.Item.Name)
	assert.Equal(t, 900, result.RemainingGold)
	assert.Equal(t, domain.RandomItemCost, result.Cost)
	require.Len(t, published, 1)
	payload := published[0].Payload.(event.ItemDrawnPayloadV1)
	assert.Equal(t, int64(99), payload.ItemID)
	assert.Equal(t, domain.RarityUncommon, payload.Rarity)
	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestDrawRandomItem_ExactCostAllowed(t *testing.T) {
	repo := new(MockRepository)
	tx := setupTx(repo)
	svc := newTestService(repo, nil, 0)
	ctx := context.Background()

	tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(createTestInventory(domain.RandomItemCost, 20), nil)
	tx.On("CountItems", ctx, testInventoryID).Return(19, nil)
	tx.On("ListTemplates", ctx).Return(createTestTemplates(), nil)
	tx.On("InsertItem", ctx, mock.Anything).Return(&domain.Item{ID: 1}, nil)
	tx.On("AddGold", ctx, testInventoryID, -domain.RandomItemCost).Return(0, nil)
	tx.On("Commit", ctx).Return(nil)

	result, err := svc.DrawRandomItem(ctx, testCharacterID, testAccountID)

	require.NoError(t, err)
	assert.Equal(t, 0, result.RemainingGold)
}

func TestDrawRandomItem_ValidationFailures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		setup     func(tx *MockTx)
		wantErr   error
		wantNoOps []string
	}{
		{
			name: "inventory not found",
			setup: func(tx *MockTx) {
				tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(nil, domain.ErrInventoryNotFound)
			},
			wantErr:   domain.ErrInventoryNotFound,
			wantNoOps: []string{"CountItems", "ListTemplates", "InsertItem", "AddGold", "Commit"},
		},
		{
			name: "inventory full",
			setup: func(tx *MockTx) {
				tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(createTestInventory(1000, 5), nil)
				tx.On("CountItems", ctx, testInventoryID).Return(5, nil)
			},
			wantErr:   domain.ErrInventoryFull,
			wantNoOps: []string{"ListTemplates", "InsertItem", "AddGold", "Commit"},
		},
		{
			name: "full takes precedence over gold",
			setup: func(tx *MockTx) {
				tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(createTestInventory(0, 5), nil)
				tx.On("CountItems", ctx, testInventoryID).Return(5, nil)
			},
			wantErr:   domain.ErrInventoryFull,
			wantNoOps: []string{"ListTemplates", "InsertItem", "AddGold", "Commit"},
		},
		{
			name: "insufficient funds",
			setup: func(tx *MockTx) {
				tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(createTestInventory(domain.RandomItemCost-1, 5), nil)
				tx.On("CountItems", ctx, testInventoryID).Return(0, nil)
			},
			wantErr:   domain.ErrInsufficientFunds,
			wantNoOps: []string{"ListTemplates", "InsertItem", "AddGold", "Commit"},
		},
		{
			name: "empty catalog",
			setup: func(tx *MockTx) {
				tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(createTestInventory(1000, 5), nil)
				tx.On("CountItems", ctx, testInventoryID).Return(0, nil)
				tx.On("ListTemplates", ctx).Return([]domain.ItemTemplate{}, nil)
			},
			wantErr:   domain.ErrCatalogEmpty,
			wantNoOps: []string{"InsertItem", "AddGold", "Commit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tx := setupTx(repo)
			tt.setup(tx)
			svc := newTestService(repo, nil, 0)

			result, err := svc.DrawRandomItem(ctx, testCharacterID, testAccountID)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
			for _, method := range tt.wantNoOps {
				assertMethodNotCalled(t, tx, method)
			}
			tx.AssertCalled(t, "Rollback", mock.Anything)
		})
	}
}

func TestDrawRandomItem_StoreFailures(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	t.Run("begin fails", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("BeginTx", ctx).Return(nil, storeErr)
		svc := newTestService(repo, nil, 0)

		_, err := svc.DrawRandomItem(ctx, testCharacterID, testAccountID)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("gold update fails after insert", func(t *testing.T) {
		repo := new(MockRepository)
		tx := setupTx(repo)
		svc := newTestService(repo, nil, 0)

		tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(createTestInventory(1000, 5), nil)
		tx.On("CountItems", ctx, testInventoryID).Return(0, nil)
		tx.On("ListTemplates", ctx).Return(createTestTemplates(), nil)
		tx.On("InsertItem", ctx, mock.Anything).Return(&domain.Item{ID: 1}, nil)
		tx.On("AddGold", ctx, testInventoryID, -domain.RandomItemCost).Return(0, storeErr)

		_, err := svc.DrawRandomItem(ctx, testCharacterID, testAccountID)

		assert.ErrorIs(t, err, storeErr)
		tx.AssertNotCalled(t, "Commit", mock.Anything)
		tx.AssertCalled(t, "Rollback", mock.Anything)
	})

	t.Run("commit fails", func(t *testing.T) {
		repo := new(MockRepository)
		tx := setupTx(repo)
		svc := newTestService(repo, nil, 0)

		tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(createTestInventory(1000, 5), nil)
		tx.On("CountItems", ctx, testInventoryID).Return(0, nil)
		tx.On("ListTemplates", ctx).Return(createTestTemplates(), nil)
		tx.On("InsertItem", ctx, mock.Anything).Return(&domain.Item{ID: 1}, nil)
		tx.On("AddGold", ctx, testInventoryID, -domain.RandomItemCost).Return(900, nil)
		tx.On("Commit", ctx).Return(storeErr)

		result, err := svc.DrawRandomItem(ctx, testCharacterID, testAccountID)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestPickTemplate_OutOfRangeFallsBack(t *testing.T) {
	svc := newTestService(new(MockRepository), nil, 17)
	picked := svc.pickTemplate(createTestTemplates())
	assert.Equal(t, int64(1), picked.ID)
}

// =============================================================================
// SellItem
// =============================================================================

func TestSellItem_Success(t *testing.T) {
	repo := new(MockRepository)
	tx := setupTx(repo)
	svc := newTestService(repo, nil, 0)
	ctx := context.Background()

	item := &domain.Item{ID: 42, InventoryID: testInventoryID, Name: "Rusty Sword", Price: 50}
	tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(createTestInventory(300, 20), nil)
	tx.On("GetItem", ctx, testInventoryID, int64(42)).Return(item, nil)
	tx.On("IsItemEquipped", ctx, testInventoryID, int64(42)).Return(false, nil)
	tx.On("DeleteItem", ctx, testInventoryID, int64(42)).Return(nil)
	tx.On("AddGold", ctx, testInventoryID, 50).Return(350, nil)
	tx.On("Commit", ctx).Return(nil)

	result, err := svc.SellItem(ctx, testCharacterID, 42, testAccountID)

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.ItemID)
	assert.Equal(t, 50, result.Price)
	assert.Equal(t, 350, result.Gold)
	tx.AssertExpectations(t)
}

func TestSellItem_ItemOfAnotherCharacter(t *testing.T) {
	repo := new(MockRepository)
	tx := setupTx(repo)
	svc := newTestService(repo, nil, 0)
	ctx := context.Background()

	tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(createTestInventory(300, 20), nil)
	tx.On("GetItem", ctx, testInventoryID, int64(500)).Return(nil, domain.ErrItemNotFound)

	result, err := svc.SellItem(ctx, testCharacterID, 500, testAccountID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	tx.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "AddGold", mock.Anything, mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSellItem_NotOwner(t *testing.T) {
	repo := new(MockRepository)
	tx := setupTx(repo)
	svc := newTestService(repo, nil, 0)
	ctx := context.Background()

	tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, int64(999)).Return(nil, domain.ErrInventoryNotFound)

	_, err := svc.SellItem(ctx, testCharacterID, 42, 999)

	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)
	tx.AssertNotCalled(t, "GetItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestSellItem_Equipped(t *testing.T) {
	repo := new(MockRepository)
	tx := setupTx(repo)
	svc := newTestService(repo, nil, 0)
	ctx := context.Background()

	item := &domain.Item{ID: 42, InventoryID: testInventoryID, Price: 50}
	tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(createTestInventory(300, 20), nil)
	tx.On("GetItem", ctx, testInventoryID, int64(42)).Return(item, nil)
	tx.On("IsItemEquipped", ctx, testInventoryID, int64(42)).Return(true, nil)

	_, err := svc.SellItem(ctx, testCharacterID, 42, testAccountID)

	assert.ErrorIs(t, err, domain.ErrItemEquipped)
	tx.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestSellItem_ZeroPrice(t *testing.T) {
	repo := new(MockRepository)
	tx := setupTx(repo)
	svc := newTestService(repo, nil, 0)
	ctx := context.Background()

	item := &domain.Item{ID: 5, InventoryID: testInventoryID, Price: 0}
	tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(createTestInventory(10, 20), nil)
	tx.On("GetItem", ctx, testInventoryID, int64(5)).Return(item, nil)
	tx.On("IsItemEquipped", ctx, testInventoryID, int64(5)).Return(false, nil)
	tx.On("DeleteItem", ctx, testInventoryID, int64(5)).Return(nil)
	tx.On("AddGold", ctx, testInventoryID, 0).Return(10, nil)
	tx.On("Commit", ctx).Return(nil)

	result, err := svc.SellItem(ctx, testCharacterID, 5, testAccountID)

	require.NoError(t, err)
	assert.Equal(t, 10, result.Gold)
}

// =============================================================================
// SellAllItems
// =============================================================================

func TestSellAllItems_Success(t *testing.T) {
	repo := new(MockRepository)
	tx := setupTx(repo)
	bus := event.NewMemoryBus()
	var payload event.ItemsSoldAllPayloadV1
	bus.Subscribe(event.ItemsSoldAll, func(_ context.Context, e event.Event) error {
		payload = e.Payload.(event.ItemsSoldAllPayloadV1)
		return nil
	})
	svc := newTestService(repo, bus, 0)
	ctx := context.Background()

	tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(createTestInventory(100, 20), nil)
	tx.On("DeleteUnequippedItems", ctx, testInventoryID).Return([]int{50, 80, 10}, nil)
	tx.On("AddGold", ctx, testInventoryID, 140).Return(240, nil)
	tx.On("Commit", ctx).Return(nil)

	result, err := svc.SellAllItems(ctx, testCharacterID, testAccountID)

	require.NoError(t, err)
	assert.Equal(t, 140, result.SoldAmount)
	assert.Equal(t, 3, result.ItemsSold)
	assert.Equal(t, 240, result.Gold)
	assert.Equal(t, 140, payload.SoldAmount)
	tx.AssertExpectations(t)
}

func TestSellAllItems_EmptyInventory(t *testing.T) {
	repo := new(MockRepository)
	tx := setupTx(repo)
	svc := newTestService(repo, nil, 0)
	ctx := context.Background()

	tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(createTestInventory(777, 20), nil)
	tx.On("DeleteUnequippedItems", ctx, testInventoryID).Return([]int{}, nil)
	tx.On("Commit", ctx).Return(nil)

	result, err := svc.SellAllItems(ctx, testCharacterID, testAccountID)

	require.NoError(t, err)
	assert.Equal(t, 0, result.SoldAmount)
	assert.Equal(t, 0, result.ItemsSold)
	assert.Equal(t, 777, result.Gold)
	tx.AssertNotCalled(t, "AddGold", mock.Anything, mock.Anything, mock.Anything)
}

func TestSellAllItems_InventoryNotFound(t *testing.T) {
	repo := new(MockRepository)
	tx := setupTx(repo)
	svc := newTestService(repo, nil, 0)
	ctx := context.Background()

	tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(nil, domain.ErrInventoryNotFound)

	_, err := svc.SellAllItems(ctx, testCharacterID, testAccountID)

	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)
	tx.AssertNotCalled(t, "DeleteUnequippedItems", mock.Anything, mock.Anything)
}

func TestSellAllItems_DeleteFails(t *testing.T) {
	repo := new(MockRepository)
	tx := setupTx(repo)
	svc := newTestService(repo, nil, 0)
	ctx := context.Background()
	storeErr := errors.New("deadlock detected")

	tx.On("GetOwnedInventoryForUpdate", ctx, testCharacterID, testAccountID).Return(createTestInventory(0, 20), nil)
	tx.On("DeleteUnequippedItems", ctx, testInventoryID).Return(nil, storeErr)

	_, err := svc.SellAllItems(ctx, testCharacterID, testAccountID)

	assert.ErrorIs(t, err, storeErr)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}
