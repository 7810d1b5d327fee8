package character

// Error messages
const (
	ErrMsgCharacterLimitFmt       = "account %d already has %d characters: %w"
	ErrMsgNicknameTakenFmt        = "nickname %q: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgLockAccountFailed       = "failed to lock account: %w"
	ErrMsgCountCharactersFailed   = "failed to count characters: %w"
	ErrMsgCheckNicknameFailed     = "failed to check nickname: %w"
	ErrMsgCreateCharacterFailed   = "failed to create character: %w"
	ErrMsgCreateInfoFailed        = "failed to create character info: %w"
	ErrMsgCreateInventoryFailed   = "failed to create inventory: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetCharacterFailed      = "failed to get character: %w"
	ErrMsgListCharactersFailed    = "failed to list characters: %w"
	ErrMsgLoadDetailFailedFmt     = "failed to load character %d: %w"
)

// Log messages
const (
	LogMsgCreateCalled     = "CreateCharacter called"
	LogMsgCharacterCreated = "Character created"
	LogMsgCreateRejected   = "Character creation rejected"
)
