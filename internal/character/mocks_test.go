package character

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ItemDrop_Go/internal/domain"
	"github.com/osse101/ItemDrop_Go/internal/repository"
)

// MockRepository implements repository.Character for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCharacterByID(ctx context.Context, id int64) (*domain.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockRepository) GetCharacterByNickname(ctx context.Context, nickname string) (*domain.Character, error) {
	args := m.Called(ctx, nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockRepository) ListCharactersByAccount(ctx context.Context, accountID int64) ([]domain.Character, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Character), args.Error(1)
}

func (m *MockRepository) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Character), args.Error(1)
}

func (m *MockRepository) GetCharacterInfo(ctx context.Context, characterID int64) (*domain.CharacterInfo, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterInfo), args.Error(1)
}

func (m *MockRepository) GetInventory(ctx context.Context, characterID int64) (*domain.Inventory, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockRepository) GetEquip(ctx context.Context, inventoryID int64) (*domain.Equip, error) {
	args := m.Called(ctx, inventoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equip), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.CharacterTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.CharacterTx), args.Error(1)
}

// MockTx implements repository.CharacterTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) LockAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockTx) CountCharacters(ctx context.Context, accountID int64) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	args := m.Called(ctx, nickname)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) CreateCharacter(ctx context.Context, accountID int64, nickname string) (*domain.Character, error) {
	args := m.Called(ctx, accountID, nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockTx) CreateCharacterInfo(ctx context.Context, characterID int64, info domain.CharacterInfo) (*domain.CharacterInfo, error) {
	args := m.Called(ctx, characterID, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterInfo), args.Error(1)
}

func (m *MockTx) CreateInventory(ctx context.Context, characterID int64, gold, maxSlots int) (*domain.Inventory, error) {
	args := m.Called(ctx, characterID, gold, maxSlots)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure MockTx implements repository.CharacterTx
var _ repository.CharacterTx = (*MockTx)(nil)
