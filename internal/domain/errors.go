package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgAccountNotFound    = "account not found"
	ErrMsgAccountExists      = "account already exists"
	ErrMsgInvalidCredentials = "invalid credentials"
	ErrMsgUnauthorized       = "unauthorized"
	ErrMsgForbidden          = "forbidden"

	// Character errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgNicknameTaken     = "nickname already taken"
	ErrMsgCharacterLimit    = "character limit reached"

	// Inventory errors
	ErrMsgInventoryNotFound = "inventory not found"
	ErrMsgInventoryFull     = "inventory is full"
	ErrMsgItemNotFound      = "item not found"
	ErrMsgItemEquipped      = "item is equipped"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Catalog errors
	ErrMsgCatalogEmpty     = "item catalog is empty"
	ErrMsgTemplateNotFound = "item template not found"
	ErrMsgTemplateExists   = "item template already exists"
	ErrMsgTemplateEquipped = "item template has equipped instances"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Account errors
	ErrAccountNotFound    = errors.New(ErrMsgAccountNotFound)
	ErrAccountExists      = errors.New(ErrMsgAccountExists)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
	ErrUnauthorized       = errors.New(ErrMsgUnauthorized)
	ErrForbidden          = errors.New(ErrMsgForbidden)

	// Character errors
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrNicknameTaken     = errors.New(ErrMsgNicknameTaken)
	ErrCharacterLimit    = errors.New(ErrMsgCharacterLimit)

	// Inventory errors
	ErrInventoryNotFound = errors.New(ErrMsgInventoryNotFound)
	ErrInventoryFull     = errors.New(ErrMsgInventoryFull)
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrItemEquipped      = errors.New(ErrMsgItemEquipped)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Catalog errors
	ErrCatalogEmpty     = errors.New(ErrMsgCatalogEmpty)
	ErrTemplateNotFound = errors.New(ErrMsgTemplateNotFound)
	ErrTemplateExists   = errors.New(ErrMsgTemplateExists)
	ErrTemplateEquipped = errors.New(ErrMsgTemplateEquipped)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
