package domain

import "time"

// Account is a login identity. It owns zero or more characters.
type Account struct {
	ID           int64     `json:"accountId"`
	UserID       string    `json:"userId"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AccountView is an account together with the characters it owns
type AccountView struct {
	Account
	Characters []CharacterDetail `json:"characters"`
}

// AccountSummary is the admin listing shape: account plus character names
type AccountSummary struct {
	ID         int64              `json:"id"`
	UserID     string             `json:"userId"`
	CreatedAt  time.Time          `json:"createdAt"`
	Characters []CharacterSummary `json:"characters"`
}
