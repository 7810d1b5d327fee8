package catalog

// SeedSchemaName is the embedded schema every seed file must satisfy
const SeedSchemaName = "catalog_seed.schema.json"

// Error messages
const (
	ErrMsgNameRequired            = "%w: name is required"
	ErrMsgNameTooLongFmt          = "%w: name must be at most %d characters"
	ErrMsgUnknownTypeFmt          = "%w: unknown item type %q"
	ErrMsgUnknownRarityFmt        = "%w: unknown rarity %q"
	ErrMsgItemLevelFmt            = "%w: itemLevel must be between 1 and %d"
	ErrMsgPriceFmt                = "%w: price must be between 0 and %d"
	ErrMsgTemplateExistsFmt       = "template %q: %w"
	ErrMsgCreateFailed            = "failed to create template: %w"
	ErrMsgListFailed              = "failed to list templates: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgGetTemplateFailed       = "failed to get template: %w"
	ErrMsgCountEquippedFailed     = "failed to count equipped instances: %w"
	ErrMsgTemplateEquippedFmt     = "template %d has %d equipped instances: %w"
	ErrMsgDeleteInstancesFailed   = "failed to delete instances: %w"
	ErrMsgDeleteTemplateFailed    = "failed to delete template: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgInvalidSeedFmt          = "invalid catalog seed %s: %w"
	ErrMsgDecodeSeedFmt           = "failed to decode catalog seed %s: %w"
	ErrMsgSeedEntryFmt            = "catalog seed entry %d (%s): %w"
)

// Log messages
const (
	LogMsgTemplateCreated = "Item template created"
	LogMsgTemplateDeleted = "Item template deleted"
	LogMsgSeedSkipped     = "Catalog seed entry already present"
	LogMsgSeedLoaded      = "Catalog seed loaded"
)
