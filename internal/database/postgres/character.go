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

// CharacterRepository implements repository.Character for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{
		db: db,
		q:  generated.New(db),
	}
}

// CharacterTx implements repository.CharacterTx
type CharacterTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

// BeginTx starts a new transaction
func (r *CharacterRepository) BeginTx(ctx context.Context) (repository.CharacterTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &CharacterTx{
		tx: tx,
		q:  r.q.WithTx(tx),
	}, nil
}

// Commit commits the transaction
func (t *CharacterTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *CharacterTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetCharacterByID retrieves a character by id
func (r *CharacterRepository) GetCharacterByID(ctx context.Context, id int64) (*domain.Character, error) {
	row, err := r.q.GetCharacterByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCharacter, err)
	}
	return mapCharacter(row), nil
}

// GetCharacterByNickname retrieves a character by its unique nickname
func (r *CharacterRepository) GetCharacterByNickname(ctx context.Context, nickname string) (*domain.Character, error) {
	row, err := r.q.GetCharacterByNickname(ctx, nickname)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCharacter, err)
	}
	return mapCharacter(row), nil
}

// ListCharactersByAccount returns the characters owned by accountID
func (r *CharacterRepository) ListCharactersByAccount(ctx context.Context, accountID int64) ([]domain.Character, error) {
	rows, err := r.q.ListCharactersByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCharacters, err)
	}
	return mapCharacters(rows), nil
}

// ListCharacters returns every character ordered by id
func (r *CharacterRepository) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	rows, err := r.q.ListCharacters(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCharacters, err)
	}
	return mapCharacters(rows), nil
}

func mapCharacters(rows []generated.Character) []domain.Character {
	chars := make([]domain.Character, len(rows))
	for i, row := range rows {
		chars[i] = *mapCharacter(row)
	}
	return chars
}

// GetCharacterInfo retrieves the stat block of a character
func (r *CharacterRepository) GetCharacterInfo(ctx context.Context, characterID int64) (*domain.CharacterInfo, error) {
	row, err := r.q.GetCharacterInfo(ctx, characterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCharacterInfo, err)
	}
	return mapCharacterInfo(row), nil
}

// GetInventory retrieves a character's inventory together with its items
func (r *CharacterRepository) GetInventory(ctx context.Context, characterID int64) (*domain.Inventory, error) {
	row, err := r.q.GetInventoryByCharacter(ctx, characterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInventoryNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetInventory, err)
	}

	inv := mapInventory(row)
	items, err := r.q.ListItemsByInventory(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListItems, err)
	}
	for _, it := range items {
		inv.Items = append(inv.Items, mapItem(it))
	}
	return inv, nil
}

// GetEquip retrieves the equip record of an inventory, nil if there is none
func (r *CharacterRepository) GetEquip(ctx context.Context, inventoryID int64) (*domain.Equip, error) {
	row, err := r.q.GetEquipByInventory(ctx, inventoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEquip, err)
	}
	return mapEquip(row), nil
}

// LockAccount takes a row lock on the owning account
func (t *CharacterTx) LockAccount(ctx context.Context, accountID int64) error {
	if _, err := t.q.LockAccount(ctx, accountID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToLockAccount, err)
	}
	return nil
}

// CountCharacters counts the characters owned by accountID
func (t *CharacterTx) CountCharacters(ctx context.Context, accountID int64) (int, error) {
	n, err := t.q.CountCharactersByAccount(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountCharacters, err)
	}
	return int(n), nil
}

// NicknameExists reports whether nickname is already in use
func (t *CharacterTx) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	exists, err := t.q.NicknameExists(ctx, nickname)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckNickname, err)
	}
	return exists, nil
}

// CreateCharacter inserts the character row
func (t *CharacterTx) CreateCharacter(ctx context.Context, accountID int64, nickname string) (*domain.Character, error) {
	row, err := t.q.CreateCharacter(ctx, generated.CreateCharacterParams{
		AccountID: accountID,
		Nickname:  nickname,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrNicknameTaken
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateCharacter, err)
	}
	return mapCharacter(row), nil
}

// CreateCharacterInfo inserts the stat block for a character
func (t *CharacterTx) CreateCharacterInfo(ctx context.Context, characterID int64, info domain.CharacterInfo) (*domain.CharacterInfo, error) {
	row, err := t.q.CreateCharacterInfo(ctx, generated.CreateCharacterInfoParams{
		CharacterID:    characterID,
		EquipLevel:     int32(info.EquipLevel),
		HealthPoint:    int32(info.HealthPoint),
		ManaPoint:      int32(info.ManaPoint),
		AttackDamage:   int32(info.AttackDamage),
		MagicDamage:    int32(info.MagicDamage),
		DefensivePower: int32(info.DefensivePower),
		Strength:       int32(info.Strength),
		Dexterity:      int32(info.Dexterity),
		Intelligence:   int32(info.Intelligence),
		Luck:           int32(info.Luck),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateCharacterInfo, err)
	}
	return mapCharacterInfo(row), nil
}

// CreateInventory inserts an empty inventory for a character
func (t *CharacterTx) CreateInventory(ctx context.Context, characterID int64, gold, maxSlots int) (*domain.Inventory, error) {
	g, err := toInt32("gold", gold)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateInventory, err)
	}
	slots, err := toInt32("max_slots", maxSlots)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateInventory, err)
	}

	row, err := t.q.CreateInventory(ctx, generated.CreateInventoryParams{
		CharacterID: characterID,
		Gold:        g,
		MaxSlots:    slots,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateInventory, err)
	}
	return mapInventory(row), nil
}
