package postgres

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/ItemDrop_Go/internal/database/generated"
	"github.com/osse101/ItemDrop_Go/internal/domain"
)

// isUniqueViolation reports whether err is a PostgreSQL unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// isCheckViolation reports whether err is a PostgreSQL CHECK constraint violation
func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeCheckViolation
}

// toInt32 narrows v for an INTEGER column and refuses values that would wrap
func toInt32(column string, v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf(ErrMsgIntegerOutOfRangeFmt, column, v)
	}
	return int32(v), nil
}

// timeOf converts a pgtype.Timestamptz to time.Time, zero when NULL
func timeOf(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// ptrInt64 converts a pgtype.Int8 to *int64.
// Returns nil if the value is NULL.
func ptrInt64(i pgtype.Int8) *int64 {
	if !i.Valid {
		return nil
	}
	v := i.Int64
	return &v
}

// ---- Row mappers ----

func mapAccount(row generated.Account) *domain.Account {
	return &domain.Account{
		ID:           row.ID,
		UserID:       row.UserID,
		PasswordHash: row.PasswordHash,
		IsAdmin:      row.IsAdmin,
		CreatedAt:    timeOf(row.CreatedAt),
		UpdatedAt:    timeOf(row.UpdatedAt),
	}
}

func mapCharacter(row generated.Character) *domain.Character {
	return &domain.Character{
		ID:        row.ID,
		AccountID: row.AccountID,
		Nickname:  row.Nickname,
		CreatedAt: timeOf(row.CreatedAt),
	}
}

func mapCharacterInfo(row generated.CharacterInfo) *domain.CharacterInfo {
	return &domain.CharacterInfo{
		EquipLevel:     int(row.EquipLevel),
		HealthPoint:    int(row.HealthPoint),
		ManaPoint:      int(row.ManaPoint),
		AttackDamage:   int(row.AttackDamage),
		MagicDamage:    int(row.MagicDamage),
		DefensivePower: int(row.DefensivePower),
		Strength:       int(row.Strength),
		Dexterity:      int(row.Dexterity),
		Intelligence:   int(row.Intelligence),
		Luck:           int(row.Luck),
	}
}

func mapInventory(row generated.Inventory) *domain.Inventory {
	return &domain.Inventory{
		ID:          row.ID,
		CharacterID: row.CharacterID,
		Gold:        int(row.Gold),
		MaxSlots:    int(row.MaxSlots),
		Items:       []domain.Item{},
	}
}

func mapItem(row generated.Item) domain.Item {
	return domain.Item{
		ID:          row.ID,
		InventoryID: row.InventoryID,
		ItemListID:  row.ItemListID,
		Name:        row.Name,
		Type:        row.Type,
		Rarity:      row.Rarity,
		ItemLevel:   int(row.ItemLevel),
		Price:       int(row.Price),
		Equippable:  row.Equippable,
		CreatedAt:   timeOf(row.CreatedAt),
	}
}

func mapTemplate(row generated.ItemList) domain.ItemTemplate {
	return domain.ItemTemplate{
		ID:          row.ID,
		Name:        row.Name,
		Type:        row.Type,
		Rarity:      row.Rarity,
		Description: row.Description,
		ItemLevel:   int(row.ItemLevel),
		Price:       int(row.Price),
		Equippable:  row.Equippable,
	}
}

func mapEquip(row generated.Equip) *domain.Equip {
	return &domain.Equip{
		ID:               row.ID,
		InventoryID:      row.InventoryID,
		HeadSlotID:       ptrInt64(row.HeadSlotID),
		BodyTopSlotID:    ptrInt64(row.BodyTopSlotID),
		BodyBottomSlotID: ptrInt64(row.BodyBottomSlotID),
		GloveSlotID:      ptrInt64(row.GloveSlotID),
		ShoesSlotID:      ptrInt64(row.ShoesSlotID),
		WeaponSlotID:     ptrInt64(row.WeaponSlotID),
	}
}
