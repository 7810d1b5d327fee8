package domain

import "math"

// Economy constants
const (
	// RandomItemCost is the gold charged for one random item draw
	RandomItemCost = 100
)

// Character creation defaults
const (
	MaxCharactersPerAccount = 3

	DefaultStartingGold = 10000
	DefaultMaxSlots     = 20

	DefaultEquipLevel     = 0
	DefaultHealthPoint    = 100
	DefaultManaPoint      = 10
	DefaultAttackDamage   = 10
	DefaultMagicDamage    = 10
	DefaultDefensivePower = 10
	DefaultStrength       = 10
	DefaultDexterity      = 10
	DefaultIntelligence   = 10
	DefaultLuck           = 10
)

// Input limits shared by handlers and services
const (
	MaxUserIDLength   = 30
	MinPasswordLength = 6
	MaxPasswordLength = 72 // bcrypt ignores bytes past 72
	MaxNicknameLength = 20
	MaxItemNameLength = 100
)

// Gold, prices and item levels are stored in INTEGER columns
const (
	MaxItemPrice = math.MaxInt32
	MaxItemLevel = math.MaxInt32
)

// Item types (equip slot the item fits)
const (
	ItemTypeHead       = "head"
	ItemTypeBodyTop    = "bodyTop"
	ItemTypeBodyBottom = "bodyBottom"
	ItemTypeGlove      = "glove"
	ItemTypeShoes      = "shoes"
	ItemTypeWeapon     = "weapon"
	ItemTypeConsumable = "consumable"
)

// Rarity values
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)
