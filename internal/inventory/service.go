package inventory

import (
	"context"

	"github.com/osse101/ItemDrop_Go/internal/domain"
	"github.com/osse101/ItemDrop_Go/internal/event"
	"github.com/osse101/ItemDrop_Go/internal/repository"
	"github.com/osse101/ItemDrop_Go/internal/utils"
)

// Service defines the inventory transaction operations.
// Each call runs in a single repository transaction that locks the inventory row first.
type Service interface {
	DrawRandomItem(ctx context.Context, characterID, accountID int64) (*domain.DrawResult, error)
	SellItem(ctx context.Context, characterID, itemID, accountID int64) (*domain.SellResult, error)
	SellAllItems(ctx context.Context, characterID, accountID int64) (*domain.SellAllResult, error)
}

type service struct {
	repo      repository.Inventory
	publisher event.Publisher
	rnd       func(n int) int // For picking a template
}

// NewService creates a new inventory service. publisher may be nil.
func NewService(repo repository.Inventory, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		rnd:       utils.RandomIndex,
	}
}

// pickTemplate returns a uniformly chosen template from a non-empty snapshot
func (s *service) pickTemplate(templates []domain.ItemTemplate) domain.ItemTemplate {
	idx := s.rnd(len(templates))
	if idx < 0 || idx >= len(templates) {
		idx = 0
	}
	return templates[idx]
}
