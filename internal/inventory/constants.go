package inventory

// ==================== Error Messages ====================

// Formatted error messages for validation failures
const (
	ErrMsgInventoryFullFmt    = "inventory %d holds %d of %d slots: %w"
	ErrMsgInsufficientGoldFmt = "inventory %d has %d gold, draw costs %d: %w"
	ErrMsgItemEquippedFmt     = "item %d is equipped: %w"
	ErrMsgCatalogEmptyFmt     = "no item templates to draw from: %w"
)

// Database operation error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory: %w"
	ErrMsgCountItemsFailed        = "failed to count items: %w"
	ErrMsgListTemplatesFailed     = "failed to list item templates: %w"
	ErrMsgInsertItemFailed        = "failed to insert item: %w"
	ErrMsgUpdateGoldFailed        = "failed to update gold: %w"
	ErrMsgGetItemFailed           = "failed to get item: %w"
	ErrMsgCheckEquippedFailed     = "failed to check equip slots: %w"
	ErrMsgDeleteItemFailed        = "failed to delete item: %w"
	ErrMsgDeleteItemsFailed       = "failed to delete items: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgDrawCalled    = "DrawRandomItem called"
	LogMsgItemDrawn     = "Item drawn"
	LogMsgSellCalled    = "SellItem called"
	LogMsgItemSold      = "Item sold"
	LogMsgSellAllCalled = "SellAllItems called"
	LogMsgItemsSold     = "Items sold"
	LogMsgDrawRejected  = "Draw rejected"
)
