package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeCheckViolation is raised when a CHECK constraint such as gold >= 0 fails
	PgErrorCodeCheckViolation = "23514"
)

// Error Messages - Column conversion
const (
	ErrMsgIntegerOutOfRangeFmt = "%s value %d is outside the INTEGER range"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
)

// Error Messages - Accounts
const (
	ErrMsgFailedToCreateAccount = "failed to create account"
	ErrMsgFailedToGetAccount    = "failed to get account"
	ErrMsgFailedToListAccounts  = "failed to list accounts"
	ErrMsgFailedToUpdateAccount = "failed to update account"
	ErrMsgFailedToLockAccount   = "failed to lock account"
)

// Error Messages - Characters
const (
	ErrMsgFailedToCreateCharacter     = "failed to create character"
	ErrMsgFailedToCreateCharacterInfo = "failed to create character info"
	ErrMsgFailedToGetCharacter        = "failed to get character"
	ErrMsgFailedToListCharacters      = "failed to list characters"
	ErrMsgFailedToCountCharacters     = "failed to count characters"
	ErrMsgFailedToCheckNickname       = "failed to check nickname"
	ErrMsgFailedToGetCharacterInfo    = "failed to get character info"
)

// Error Messages - Inventories
const (
	ErrMsgFailedToCreateInventory = "failed to create inventory"
	ErrMsgFailedToGetInventory    = "failed to get inventory"
	ErrMsgFailedToLockInventory   = "failed to lock inventory"
	ErrMsgFailedToUpdateGold      = "failed to update gold"
	ErrMsgFailedToGetEquip        = "failed to get equip"
)

// Error Messages - Items
const (
	ErrMsgFailedToInsertItem      = "failed to insert item"
	ErrMsgFailedToGetItem         = "failed to get item"
	ErrMsgFailedToListItems       = "failed to list items"
	ErrMsgFailedToCountItems      = "failed to count items"
	ErrMsgFailedToDeleteItem      = "failed to delete item"
	ErrMsgFailedToDeleteItems     = "failed to delete items"
	ErrMsgFailedToCheckEquipped   = "failed to check equipped state"
	ErrMsgFailedToCountEquipped   = "failed to count equipped instances"
	ErrMsgFailedToDeleteInstances = "failed to delete template instances"
)

// Error Messages - Item templates
const (
	ErrMsgFailedToCreateTemplate = "failed to create item template"
	ErrMsgFailedToGetTemplate    = "failed to get item template"
	ErrMsgFailedToListTemplates  = "failed to list item templates"
	ErrMsgFailedToDeleteTemplate = "failed to delete item template"
)
