package naming

// ============================================================================
// Length Limits (counted in runes after normalization)
// ============================================================================

// MinNicknameLength is the shortest accepted character nickname
const MinNicknameLength = 2

// MaxNicknameLength is the longest accepted character nickname
const MaxNicknameLength = 20

// MinUserIDLength is the shortest accepted login id
const MinUserIDLength = 4

// MaxUserIDLength is the longest accepted login id
const MaxUserIDLength = 30

// ============================================================================
// Error Messages
// ============================================================================

// ErrMsgEmpty is returned when the value is blank after trimming
const ErrMsgEmpty = "must not be empty"

// ErrMsgLength is the format for out-of-range lengths: min, max
const ErrMsgLength = "must be between %d and %d characters"

// ErrMsgInvalidRune is the format for a disallowed character
const ErrMsgInvalidRune = "contains invalid character %q"
