package character

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/ItemDrop_Go/internal/domain"
	"github.com/osse101/ItemDrop_Go/internal/event"
	"github.com/osse101/ItemDrop_Go/internal/logger"
	"github.com/osse101/ItemDrop_Go/internal/naming"
	"github.com/osse101/ItemDrop_Go/internal/repository"
)

// Service defines character operations
type Service interface {
	Create(ctx context.Context, accountID int64, nickname string) (*domain.CharacterDetail, error)
	GetByNickname(ctx context.Context, nickname string) (*domain.CharacterProfile, error)
	// GetDetail returns domain.ErrCharacterNotFound unless accountID owns the character
	GetDetail(ctx context.Context, characterID, accountID int64) (*domain.CharacterDetail, error)
	ListByAccount(ctx context.Context, accountID int64) ([]domain.CharacterDetail, error)
	ListAll(ctx context.Context) ([]domain.CharacterDetail, error)
}

type service struct {
	repo      repository.Character
	publisher event.Publisher
}

// NewService creates a new character service. publisher may be nil.
func NewService(repo repository.Character, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *service) Create(ctx context.Context, accountID int64, nickname string) (*domain.CharacterDetail, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateCalled, "account_id", accountID)

	name, err := naming.NormalizeNickname(nickname)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Serializes concurrent creates for the same account so the limit holds
	if err := tx.LockAccount(ctx, accountID); err != nil {
		return nil, fmt.Errorf(ErrMsgLockAccountFailed, err)
	}

	count, err := tx.CountCharacters(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountCharactersFailed, err)
	}
	if count >= domain.MaxCharactersPerAccount {
		log.Info(LogMsgCreateRejected, "reason", domain.ErrMsgCharacterLimit, "count", count)
		return nil, fmt.Errorf(ErrMsgCharacterLimitFmt, accountID, count, domain.ErrCharacterLimit)
	}

	exists, err := tx.NicknameExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckNicknameFailed, err)
	}
	if exists {
		return nil, fmt.Errorf(ErrMsgNicknameTakenFmt, name, domain.ErrNicknameTaken)
	}

	// The unique index still catches a nickname raced in by another account
	char, err := tx.CreateCharacter(ctx, accountID, name)
	if err != nil {
		if errors.Is(err, domain.ErrNicknameTaken) {
			return nil, fmt.Errorf(ErrMsgNicknameTakenFmt, name, err)
		}
		return nil, fmt.Errorf(ErrMsgCreateCharacterFailed, err)
	}

	info, err := tx.CreateCharacterInfo(ctx, char.ID, domain.DefaultCharacterInfo())
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateInfoFailed, err)
	}

	inv, err := tx.CreateInventory(ctx, char.ID, domain.DefaultStartingGold, domain.DefaultMaxSlots)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateInventoryFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	event.PublishBestEffort(ctx, s.publisher, event.New(event.CharacterCreated, event.CharacterCreatedPayloadV1{
		AccountID:   accountID,
		CharacterID: char.ID,
		Nickname:    char.Nickname,
		Timestamp:   event.Now(),
	}))

	log.Info(LogMsgCharacterCreated, "account_id", accountID, "character_id", char.ID, "nickname", char.Nickname)
	return &domain.CharacterDetail{
		Character: *char,
		Info:      *info,
		Inventory: *inv,
	}, nil
}

func (s *service) GetByNickname(ctx context.Context, nickname string) (*domain.CharacterProfile, error) {
	name, err := naming.NormalizeNickname(nickname)
	if err != nil {
		// A name that fails validation cannot belong to anyone
		return nil, domain.ErrCharacterNotFound
	}

	char, err := s.repo.GetCharacterByNickname(ctx, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}

	detail, err := s.loadDetail(ctx, *char, false)
	if err != nil {
		return nil, err
	}
	return domain.NewCharacterProfile(detail), nil
}

func (s *service) GetDetail(ctx context.Context, characterID, accountID int64) (*domain.CharacterDetail, error) {
	char, err := s.repo.GetCharacterByID(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}
	// Someone else's character is reported as missing
	if char.AccountID != accountID {
		return nil, domain.ErrCharacterNotFound
	}
	return s.loadDetail(ctx, *char, true)
}

func (s *service) ListByAccount(ctx context.Context, accountID int64) ([]domain.CharacterDetail, error) {
	chars, err := s.repo.ListCharactersByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCharactersFailed, err)
	}
	return s.loadDetails(ctx, chars, true)
}

func (s *service) ListAll(ctx context.Context) ([]domain.CharacterDetail, error) {
	chars, err := s.repo.ListCharacters(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCharactersFailed, err)
	}
	return s.loadDetails(ctx, chars, false)
}

func (s *service) loadDetails(ctx context.Context, chars []domain.Character, withEquip bool) ([]domain.CharacterDetail, error) {
	details := make([]domain.CharacterDetail, 0, len(chars))
	for _, c := range chars {
		d, err := s.loadDetail(ctx, c, withEquip)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

func (s *service) loadDetail(ctx context.Context, char domain.Character, withEquip bool) (*domain.CharacterDetail, error) {
	info, err := s.repo.GetCharacterInfo(ctx, char.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadDetailFailedFmt, char.ID, err)
	}
	inv, err := s.repo.GetInventory(ctx, char.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadDetailFailedFmt, char.ID, err)
	}

	detail := &domain.CharacterDetail{
		Character: char,
		Info:      *info,
		Inventory: *inv,
	}
	if withEquip {
		equip, err := s.repo.GetEquip(ctx, inv.ID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgLoadDetailFailedFmt, char.ID, err)
		}
		detail.Equip = equip
	}
	return detail, nil
}
