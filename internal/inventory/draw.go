package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/ItemDrop_Go/internal/domain"
	"github.com/osse101/ItemDrop_Go/internal/event"
	"github.com/osse101/ItemDrop_Go/internal/logger"
	"github.com/osse101/ItemDrop_Go/internal/repository"
)

func (s *service) DrawRandomItem(ctx context.Context, characterID, accountID int64) (*domain.DrawResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDrawCalled, "character_id", characterID, "account_id", accountID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Lock the inventory so the slot and gold checks below hold until commit
	inv, err := tx.GetOwnedInventoryForUpdate(ctx, characterID, accountID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}

	count, err := tx.CountItems(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountItemsFailed, err)
	}
	if inv.IsFull(count) {
		log.Info(LogMsgDrawRejected, "reason", domain.ErrMsgInventoryFull, "items", count, "max_slots", inv.MaxSlots)
		return nil, fmt.Errorf(ErrMsgInventoryFullFmt, inv.ID, count, inv.MaxSlots, domain.ErrInventoryFull)
	}
	if !inv.CanAfford(domain.RandomItemCost) {
		log.Info(LogMsgDrawRejected, "reason", domain.ErrMsgInsufficientFunds, "gold", inv.Gold)
		return nil, fmt.Errorf(ErrMsgInsufficientGoldFmt, inv.ID, inv.Gold, domain.RandomItemCost, domain.ErrInsufficientFunds)
	}

	// Snapshot the catalog inside the transaction and pick from it
	templates, err := tx.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListTemplatesFailed, err)
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf(ErrMsgCatalogEmptyFmt, domain.ErrCatalogEmpty)
	}
	picked := s.pickTemplate(templates)

	item, err := tx.InsertItem(ctx, domain.NewItemFromTemplate(inv.ID, picked))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInsertItemFailed, err)
	}

	remaining, err := tx.AddGold(ctx, inv.ID, -domain.RandomItemCost)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateGoldFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	event.PublishBestEffort(ctx, s.publisher, event.New(event.ItemDrawn, event.ItemDrawnPayloadV1{
		CharacterID:   characterID,
		ItemID:        item.ID,
		TemplateID:    picked.ID,
		Rarity:        picked.Rarity,
		Cost:          domain.RandomItemCost,
		RemainingGold: remaining,
		Timestamp:     event.Now(),
	}))

	log.Info(LogMsgItemDrawn, "character_id", characterID, "item_id", item.ID, "template", picked.Name, "remaining_gold", remaining)
	return &domain.DrawResult{
		Item:          item,
		RemainingGold: remaining,
		Cost:          domain.RandomItemCost,
	}, nil
}
