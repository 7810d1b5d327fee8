package repository

import (
	"context"

	"github.com/osse101/ItemDrop_Go/internal/domain"
)

// Character defines the interface for character persistence
type Character interface {
	GetCharacterByID(ctx context.Context, id int64) (*domain.Character, error)
	GetCharacterByNickname(ctx context.Context, nickname string) (*domain.Character, error)
	ListCharactersByAccount(ctx context.Context, accountID int64) ([]domain.Character, error)
	ListCharacters(ctx context.Context) ([]domain.Character, error)
	GetCharacterInfo(ctx context.Context, characterID int64) (*domain.CharacterInfo, error)
	// GetInventory returns the character's inventory with its items loaded
	GetInventory(ctx context.Context, characterID int64) (*domain.Inventory, error)
	// GetEquip returns nil without error when the inventory has no equip record
	GetEquip(ctx context.Context, inventoryID int64) (*domain.Equip, error)
	BeginTx(ctx context.Context) (CharacterTx, error)
}

// CharacterTx defines the interface for character creation transactions
type CharacterTx interface {
	Tx
	// LockAccount takes a row lock on the account so character counts are stable
	LockAccount(ctx context.Context, accountID int64) error
	CountCharacters(ctx context.Context, accountID int64) (int, error)
	NicknameExists(ctx context.Context, nickname string) (bool, error)
	// CreateCharacter returns domain.ErrNicknameTaken on a unique violation
	CreateCharacter(ctx context.Context, accountID int64, nickname string) (*domain.Character, error)
	CreateCharacterInfo(ctx context.Context, characterID int64, info domain.CharacterInfo) (*domain.CharacterInfo, error)
	CreateInventory(ctx context.Context, characterID int64, gold, maxSlots int) (*domain.Inventory, error)
}
