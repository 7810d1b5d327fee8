package domain

import "time"

// ItemTemplate is a catalog entry (item_lists row) from which items are drawn
type ItemTemplate struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Rarity      string `json:"rarity"`
	Description string `json:"description"`
	ItemLevel   int    `json:"itemLevel"`
	Price       int    `json:"price"`
	Equippable  bool   `json:"equippable"`
}

// Item is a concrete item owned by an inventory. Its fields are copied from
// the template at draw time, so later template edits do not affect it.
type Item struct {
	ID          int64     `json:"id"`
	InventoryID int64     `json:"inventoryId"`
	ItemListID  int64     `json:"itemListId"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Rarity      string    `json:"rarity"`
	ItemLevel   int       `json:"itemLevel"`
	Price       int       `json:"price"`
	Equippable  bool      `json:"equippable"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewItemFromTemplate materializes a template into an item for inventoryID
func NewItemFromTemplate(inventoryID int64, t ItemTemplate) Item {
	return Item{
		InventoryID: inventoryID,
		ItemListID:  t.ID,
		Name:        t.Name,
		Type:        t.Type,
		Rarity:      t.Rarity,
		ItemLevel:   t.ItemLevel,
		Price:       t.Price,
		Equippable:  t.Equippable,
	}
}
