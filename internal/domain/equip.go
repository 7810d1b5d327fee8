package domain

// Equip records which owned items are worn. A nil slot is empty.
type Equip struct {
	ID               int64  `json:"id"`
	InventoryID      int64  `json:"inventoryId"`
	HeadSlotID       *int64 `json:"headSlotId"`
	BodyTopSlotID    *int64 `json:"bodyTopSlotId"`
	BodyBottomSlotID *int64 `json:"bodyBottomSlotId"`
	GloveSlotID      *int64 `json:"gloveSlotId"`
	ShoesSlotID      *int64 `json:"shoesSlotId"`
	WeaponSlotID     *int64 `json:"weaponSlotId"`
}

// SlotIDs returns the item ids of all occupied slots
func (e *Equip) SlotIDs() []int64 {
	if e == nil {
		return nil
	}
	var ids []int64
	for _, slot := range []*int64{e.HeadSlotID, e.BodyTopSlotID, e.BodyBottomSlotID, e.GloveSlotID, e.ShoesSlotID, e.WeaponSlotID} {
		if slot != nil {
			ids = append(ids, *slot)
		}
	}
	return ids
}

// IsEquipped reports whether itemID occupies any slot
func (e *Equip) IsEquipped(itemID int64) bool {
	for _, id := range e.SlotIDs() {
		if id == itemID {
			return true
		}
	}
	return false
}
