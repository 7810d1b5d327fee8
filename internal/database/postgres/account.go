package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ItemDrop_Go/internal/database/generated"
	"github.com/osse101/ItemDrop_Go/internal/domain"
	"github.com/osse101/ItemDrop_Go/internal/repository"
)

// AccountRepository implements repository.Account for PostgreSQL
type AccountRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) repository.Account {
	return &AccountRepository{
		db: db,
		q:  generated.New(db),
	}
}

// CreateAccount inserts a new account
func (r *AccountRepository) CreateAccount(ctx context.Context, userID, passwordHash string, isAdmin bool) (*domain.Account, error) {
	row, err := r.q.CreateAccount(ctx, generated.CreateAccountParams{
		UserID:       userID,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateAccount, err)
	}
	return mapAccount(row), nil
}

// GetAccountByID retrieves an account by its surrogate id
func (r *AccountRepository) GetAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	row, err := r.q.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}
	return mapAccount(row), nil
}

// GetAccountByUserID retrieves an account by its login id
func (r *AccountRepository) GetAccountByUserID(ctx context.Context, userID string) (*domain.Account, error) {
	row, err := r.q.GetAccountByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}
	return mapAccount(row), nil
}

// ListAccounts returns every account ordered by id
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.q.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAccounts, err)
	}

	accounts := make([]domain.Account, len(rows))
	for i, row := range rows {
		accounts[i] = *mapAccount(row)
	}
	return accounts, nil
}

// SetAdmin grants or revokes the admin flag
func (r *AccountRepository) SetAdmin(ctx context.Context, id int64, isAdmin bool) error {
	n, err := r.q.UpdateAccountAdmin(ctx, generated.UpdateAccountAdminParams{
		ID:      id,
		IsAdmin: isAdmin,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateAccount, err)
	}
	if n == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
