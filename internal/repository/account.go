package repository

import (
	"context"

	"github.com/osse101/ItemDrop_Go/internal/domain"
)

// Account defines the interface for account persistence
type Account interface {
	// CreateAccount returns domain.ErrAccountExists when userID is taken
	CreateAccount(ctx context.Context, userID, passwordHash string, isAdmin bool) (*domain.Account, error)
	GetAccountByID(ctx context.Context, id int64) (*domain.Account, error)
	GetAccountByUserID(ctx context.Context, userID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	SetAdmin(ctx context.Context, id int64, isAdmin bool) error
}
