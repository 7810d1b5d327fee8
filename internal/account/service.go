package account

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/osse101/ItemDrop_Go/internal/auth"
	"github.com/osse101/ItemDrop_Go/internal/domain"
	"github.com/osse101/ItemDrop_Go/internal/event"
	"github.com/osse101/ItemDrop_Go/internal/logger"
	"github.com/osse101/ItemDrop_Go/internal/naming"
	"github.com/osse101/ItemDrop_Go/internal/repository"
)

// LoginResult is a freshly issued session
type LoginResult struct {
	Token     string          `json:"token"`
	Account   *domain.Account `json:"account"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// CharacterLister loads the characters of an account with their inventories
type CharacterLister interface {
	ListByAccount(ctx context.Context, accountID int64) ([]domain.CharacterDetail, error)
}

// Service defines account and session operations
type Service interface {
	Signup(ctx context.Context, userID, password string) (*domain.Account, error)
	Login(ctx context.Context, userID, password string) (*LoginResult, error)
	// AdminLogin is Login restricted to admin accounts
	AdminLogin(ctx context.Context, userID, password string) (*LoginResult, error)
	Logout(ctx context.Context, id *auth.Identity) error
	// GetAccount returns domain.ErrAccountNotFound unless caller is the owner or an admin
	GetAccount(ctx context.Context, accountID int64, caller *auth.Identity) (*domain.AccountView, error)
	ListAccounts(ctx context.Context) ([]domain.AccountSummary, error)
	// EnsureAdmin creates or promotes the bootstrap admin account. Empty credentials are a no-op.
	EnsureAdmin(ctx context.Context, userID, password string) error
}

type service struct {
	repo       repository.Account
	characters CharacterLister
	tokens     *auth.TokenManager
	denylist   auth.Denylist
	publisher  event.Publisher

	dummyOnce sync.Once
	dummyHash string
}

// NewService creates a new account service. publisher may be nil.
func NewService(repo repository.Account, characters CharacterLister, tokens *auth.TokenManager, denylist auth.Denylist, publisher event.Publisher) Service {
	return &service{
		repo:       repo,
		characters: characters,
		tokens:     tokens,
		denylist:   denylist,
		publisher:  publisher,
	}
}

func validatePassword(password string) error {
	if n := utf8.RuneCountInString(password); n < domain.MinPasswordLength || len(password) > domain.MaxPasswordLength {
		return fmt.Errorf(ErrMsgPasswordLengthFmt, domain.ErrInvalidInput, domain.MinPasswordLength, domain.MaxPasswordLength)
	}
	return nil
}

func (s *service) Signup(ctx context.Context, userID, password string) (*domain.Account, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSignupCalled)

	id, err := naming.NormalizeUserID(userID)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgHashFailed, err)
	}

	acc, err := s.repo.CreateAccount(ctx, id, hash, false)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateFailed, err)
	}

	event.PublishBestEffort(ctx, s.publisher, event.New(event.AccountCreated, event.AccountCreatedPayloadV1{
		AccountID: acc.ID,
		UserID:    acc.UserID,
		Timestamp: event.Now(),
	}))

	log.Info(LogMsgAccountCreated, "account_id", acc.ID, "user_id", acc.UserID)
	return acc, nil
}

// dummy returns a hash to compare against when the account does not exist,
// so unknown ids and wrong passwords take the same time.
func (s *service) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = auth.HashPassword("not-a-real-password")
	})
	return s.dummyHash
}

// authenticate verifies credentials. Every failure is ErrInvalidCredentials.
func (s *service) authenticate(ctx context.Context, userID, password string) (*domain.Account, error) {
	log := logger.FromContext(ctx)

	id, err := naming.NormalizeUserID(userID)
	if err != nil {
		_ = auth.CheckPassword(s.dummy(), password)
		return nil, domain.ErrInvalidCredentials
	}

	acc, err := s.repo.GetAccountByUserID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			_ = auth.CheckPassword(s.dummy(), password)
			log.Info(LogMsgLoginFailed, "user_id", id, "reason", domain.ErrMsgAccountNotFound)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf(ErrMsgGetAccountFailed, err)
	}

	if !auth.CheckPassword(acc.PasswordHash, password) {
		log.Info(LogMsgLoginFailed, "user_id", id, "reason", domain.ErrMsgInvalidCredentials)
		return nil, domain.ErrInvalidCredentials
	}
	return acc, nil
}

func (s *service) issue(ctx context.Context, acc *domain.Account) (*LoginResult, error) {
	token, identity, err := s.tokens.Issue(acc.ID, acc.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgIssueTokenFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgLoginSucceeded, "account_id", acc.ID, "is_admin", acc.IsAdmin)
	return &LoginResult{
		Token:     token,
		Account:   acc,
		ExpiresAt: identity.ExpiresAt,
	}, nil
}

func (s *service) Login(ctx context.Context, userID, password string) (*LoginResult, error) {
	acc, err := s.authenticate(ctx, userID, password)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, acc)
}

func (s *service) AdminLogin(ctx context.Context, userID, password string) (*LoginResult, error) {
	acc, err := s.authenticate(ctx, userID, password)
	if err != nil {
		return nil, err
	}
	if !acc.IsAdmin {
		logger.FromContext(ctx).Info(LogMsgLoginFailed, "account_id", acc.ID, "reason", "not admin")
		return nil, fmt.Errorf(ErrMsgNotAdminFmt, acc.ID, domain.ErrInvalidCredentials)
	}
	return s.issue(ctx, acc)
}

func (s *service) Logout(ctx context.Context, id *auth.Identity) error {
	if id == nil {
		return domain.ErrUnauthorized
	}
	if err := s.denylist.Revoke(ctx, id.TokenID, id.ExpiresAt); err != nil {
		return fmt.Errorf(ErrMsgRevokeFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgLoggedOut, "account_id", id.AccountID)
	return nil
}

func (s *service) GetAccount(ctx context.Context, accountID int64, caller *auth.Identity) (*domain.AccountView, error) {
	if caller == nil || (caller.AccountID != accountID && !caller.IsAdmin) {
		return nil, domain.ErrAccountNotFound
	}

	acc, err := s.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetAccountFailed, err)
	}

	chars, err := s.characters.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCharsFailed, err)
	}

	return &domain.AccountView{
		Account:    *acc,
		Characters: chars,
	}, nil
}

func (s *service) ListAccounts(ctx context.Context) ([]domain.AccountSummary, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListAccountsFailed, err)
	}

	summaries := make([]domain.AccountSummary, 0, len(accounts))
	for _, acc := range accounts {
		details, err := s.characters.ListByAccount(ctx, acc.ID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgListCharsFailed, err)
		}
		chars := make([]domain.CharacterSummary, 0, len(details))
		for _, d := range details {
			chars = append(chars, domain.CharacterSummary{ID: d.ID, Nickname: d.Nickname})
		}
		summaries = append(summaries, domain.AccountSummary{
			ID:         acc.ID,
			UserID:     acc.UserID,
			CreatedAt:  acc.CreatedAt,
			Characters: chars,
		})
	}
	return summaries, nil
}

func (s *service) EnsureAdmin(ctx context.Context, userID, password string) error {
	log := logger.FromContext(ctx)
	if userID == "" || password == "" {
		log.Info(LogMsgAdminSkipped)
		return nil
	}

	id, err := naming.NormalizeUserID(userID)
	if err != nil {
		return err
	}

	acc, err := s.repo.GetAccountByUserID(ctx, id)
	switch {
	case err == nil:
		if acc.IsAdmin {
			log.Info(LogMsgAdminUpToDate, "user_id", id)
			return nil
		}
		if err := s.repo.SetAdmin(ctx, acc.ID, true); err != nil {
			return fmt.Errorf(ErrMsgPromoteFailed, err)
		}
		log.Info(LogMsgAdminPromoted, "user_id", id)
		return nil
	case errors.Is(err, domain.ErrAccountNotFound):
		// fall through to create
	default:
		return fmt.Errorf(ErrMsgGetAccountFailed, err)
	}

	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf(ErrMsgHashFailed, err)
	}
	if _, err := s.repo.CreateAccount(ctx, id, hash, true); err != nil {
		return fmt.Errorf(ErrMsgCreateFailed, err)
	}
	log.Info(LogMsgAdminCreated, "user_id", id)
	return nil
}
