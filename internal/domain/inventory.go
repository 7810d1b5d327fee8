package domain

// Inventory is a character's container of items plus its gold balance
type Inventory struct {
	ID          int64  `json:"id"`
	CharacterID int64  `json:"characterId"`
	Gold        int    `json:"gold"`
	MaxSlots    int    `json:"maxSlots"`
	Items       []Item `json:"items"`
}

// IsFull reports whether itemCount fills every slot
func (inv *Inventory) IsFull(itemCount int) bool {
	return itemCount >= inv.MaxSlots
}

// CanAfford reports whether the balance covers cost
func (inv *Inventory) CanAfford(cost int) bool {
	return inv.Gold >= cost
}

// DrawResult is returned by a successful random item draw
type DrawResult struct {
	Item          *Item `json:"item"`
	RemainingGold int   `json:"remainingGold"`
	Cost          int   `json:"cost"`
}

// SellResult is returned by a successful single item sale
type SellResult struct {
	ItemID int64 `json:"itemId"`
	Price  int   `json:"price"`
	Gold   int   `json:"gold"`
}

// SellAllResult is returned by selling every sellable item in an inventory
type SellAllResult struct {
	SoldAmount int `json:"soldAmount"`
	ItemsSold  int `json:"itemsSold"`
	Gold       int `json:"gold"`
}
