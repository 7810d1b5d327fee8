package handler

// User-facing error messages for service errors.
// These never carry internal error details; both handlers and tests reference them.
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgInvalidRequest      = "Invalid request body"
	ErrMsgInvalidPathParam    = "Invalid %s"

	// Auth messages
	ErrMsgAuthRequiredError       = "Authentication required"
	ErrMsgInvalidCredentialsError = "Invalid user id or password"
	ErrMsgForbiddenError          = "Admin privileges required"

	// Account and character messages
	ErrMsgAccountNotFoundError   = "Account not found"
	ErrMsgAccountExistsError     = "That user id is already registered"
	ErrMsgCharacterNotFoundError = "Character not found"
	ErrMsgNicknameTakenError     = "That nickname is already taken"
	ErrMsgCharacterLimitError    = "You cannot create more characters"

	// Inventory messages
	ErrMsgInventoryNotFoundError = "Inventory not found"
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgInventoryFullError     = "Inventory is full"
	ErrMsgNotEnoughGoldError     = "Not enough gold"
	ErrMsgItemEquippedError      = "Equipped items cannot be sold"

	// Catalog messages
	ErrMsgCatalogEmptyError     = "No items are available to draw right now"
	ErrMsgTemplateNotFoundError = "Item template not found"
	ErrMsgTemplateExistsError   = "An item with that name already exists"
	ErrMsgTemplateEquippedError = "The item is equipped by a character and cannot be deleted"
)

// Success messages for API responses
const (
	MsgSignupSuccess         = "Account created"
	MsgLoginSuccess          = "Logged in"
	MsgAdminLoginSuccess     = "Logged in as admin"
	MsgLogoutSuccess         = "Logged out"
	MsgCharacterCreated      = "Character created"
	MsgItemDrawnSuccess      = "Item drawn"
	MsgItemSoldSuccess       = "Item sold"
	MsgAllItemsSoldSuccess   = "All sellable items sold"
	MsgTemplateCreated       = "Item template created"
	MsgTemplateDeletedFormat = "Item template deleted along with %d items"
)

// Operation names used in log lines
const (
	OpSignup         = "Signup"
	OpLogin          = "Login"
	OpAdminLogin     = "Admin login"
	OpLogout         = "Logout"
	OpGetAccount     = "Get account"
	OpListAccounts   = "List accounts"
	OpCreateChar     = "Create character"
	OpGetProfile     = "Get character profile"
	OpGetDetail      = "Get character detail"
	OpListChars      = "List characters"
	OpDrawItem       = "Draw random item"
	OpSellItem       = "Sell item"
	OpSellAll        = "Sell all items"
	OpListTemplates  = "List item templates"
	OpCreateTemplate = "Create item template"
	OpDeleteTemplate = "Delete item template"
)

// Path parameter names
const (
	ParamAccountID  = "accountId"
	ParamCharID     = "characterId"
	ParamItemID     = "itemId"
	ParamNickname   = "nickname"
	ParamItemListID = "itemListId"
)
