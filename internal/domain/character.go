package domain

import "time"

// Character is a playable character owned by an account
type Character struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"accountId"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"createdAt"`
}

// CharacterInfo is the stat block of a character (1:1)
type CharacterInfo struct {
	EquipLevel     int `json:"equipLevel"`
	HealthPoint    int `json:"healthPoint"`
	ManaPoint      int `json:"manaPoint"`
	AttackDamage   int `json:"attackDamage"`
	MagicDamage    int `json:"magicDamage"`
	DefensivePower int `json:"defensivePower"`
	Strength       int `json:"strength"`
	Dexterity      int `json:"dexterity"`
	Intelligence   int `json:"intelligence"`
	Luck           int `json:"luck"`
}

// DefaultCharacterInfo returns the stat block every new character starts with
func DefaultCharacterInfo() CharacterInfo {
	return CharacterInfo{
		EquipLevel:     DefaultEquipLevel,
		HealthPoint:    DefaultHealthPoint,
		ManaPoint:      DefaultManaPoint,
		AttackDamage:   DefaultAttackDamage,
		MagicDamage:    DefaultMagicDamage,
		DefensivePower: DefaultDefensivePower,
		Strength:       DefaultStrength,
		Dexterity:      DefaultDexterity,
		Intelligence:   DefaultIntelligence,
		Luck:           DefaultLuck,
	}
}

// CharacterDetail is a character with its stats, inventory and equipment
type CharacterDetail struct {
	Character
	Info      CharacterInfo `json:"characterInfo"`
	Inventory Inventory     `json:"inventory"`
	Equip     *Equip        `json:"equip,omitempty"`
}

// CharacterSummary identifies a character in listings
type CharacterSummary struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}

// PublicItem is the subset of item fields shown on a public profile
type PublicItem struct {
	Name      string `json:"name"`
	ItemLevel int    `json:"itemLevel"`
	Type      string `json:"type"`
	Rarity    string `json:"rarity"`
	Price     int    `json:"price"`
}

// PublicInventory is the inventory as shown on a public profile
type PublicInventory struct {
	Gold     int          `json:"gold"`
	MaxSlots int          `json:"maxSlots"`
	Items    []PublicItem `json:"items"`
}

// CharacterProfile is the public view of a character, looked up by nickname
type CharacterProfile struct {
	ID        int64           `json:"id"`
	Nickname  string          `json:"nickname"`
	Info      CharacterInfo   `json:"characterInfo"`
	Inventory PublicInventory `json:"inventory"`
}

// NewCharacterProfile projects a detail view onto the public profile shape
func NewCharacterProfile(d *CharacterDetail) *CharacterProfile {
	items := make([]PublicItem, 0, len(d.Inventory.Items))
	for _, it := range d.Inventory.Items {
		items = append(items, PublicItem{
			Name:      it.Name,
			ItemLevel: it.ItemLevel,
			Type:      it.Type,
			Rarity:    it.Rarity,
			Price:     it.Price,
		})
	}
	return &CharacterProfile{
		ID:       d.ID,
		Nickname: d.Nickname,
		Info:     d.Info,
		Inventory: PublicInventory{
			Gold:     d.Inventory.Gold,
			MaxSlots: d.Inventory.MaxSlots,
			Items:    items,
		},
	}
}
