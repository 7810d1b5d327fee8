package account

// Error messages
const (
	ErrMsgPasswordLengthFmt  = "%w: password must be between %d and %d characters"
	ErrMsgHashFailed         = "failed to hash password: %w"
	ErrMsgCreateFailed       = "failed to create account: %w"
	ErrMsgGetAccountFailed   = "failed to get account: %w"
	ErrMsgListAccountsFailed = "failed to list accounts: %w"
	ErrMsgListCharsFailed    = "failed to list characters: %w"
	ErrMsgIssueTokenFailed   = "failed to issue token: %w"
	ErrMsgRevokeFailed       = "failed to revoke token: %w"
	ErrMsgPromoteFailed      = "failed to grant admin: %w"
	ErrMsgNotAdminFmt        = "account %d is not an admin: %w"
)

// Log messages
const (
	LogMsgSignupCalled   = "Signup called"
	LogMsgAccountCreated = "Account created"
	LogMsgLoginSucceeded = "Login succeeded"
	LogMsgLoginFailed    = "Login failed"
	LogMsgLoggedOut      = "Logged out"
	LogMsgAdminCreated   = "Admin account created"
	LogMsgAdminPromoted  = "Existing account granted admin"
	LogMsgAdminUpToDate  = "Admin account already present"
	LogMsgAdminSkipped   = "Admin bootstrap skipped, no credentials configured"
)
