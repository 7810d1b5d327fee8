package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/ItemDrop_Go/internal/domain"
	"github.com/osse101/ItemDrop_Go/internal/event"
	"github.com/osse101/ItemDrop_Go/internal/logger"
	"github.com/osse101/ItemDrop_Go/internal/repository"
	"github.com/osse101/ItemDrop_Go/internal/utils"
)

func (s *service) SellItem(ctx context.Context, characterID, itemID, accountID int64) (*domain.SellResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "character_id", characterID, "item_id", itemID, "account_id", accountID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	inv, err := tx.GetOwnedInventoryForUpdate(ctx, characterID, accountID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}

	// Scoped to this inventory, so an item of another character is not found
	item, err := tx.GetItem(ctx, inv.ID, itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}

	equipped, err := tx.IsItemEquipped(ctx, inv.ID, item.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckEquippedFailed, err)
	}
	if equipped {
		return nil, fmt.Errorf(ErrMsgItemEquippedFmt, item.ID, domain.ErrItemEquipped)
	}

	if err := tx.DeleteItem(ctx, inv.ID, item.ID); err != nil {
		return nil, fmt.Errorf(ErrMsgDeleteItemFailed, err)
	}

	gold, err := tx.AddGold(ctx, inv.ID, item.Price)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateGoldFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	event.PublishBestEffort(ctx, s.publisher, event.New(event.ItemSold, event.ItemSoldPayloadV1{
		CharacterID: characterID,
		ItemID:      item.ID,
		Rarity:      item.Rarity,
		Price:       item.Price,
		Gold:        gold,
		Timestamp:   event.Now(),
	}))

	log.Info(LogMsgItemSold, "character_id", characterID, "item_id", item.ID, "price", item.Price, "gold", gold)
	return &domain.SellResult{
		ItemID: item.ID,
		Price:  item.Price,
		Gold:   gold,
	}, nil
}

func (s *service) SellAllItems(ctx context.Context, characterID, accountID int64) (*domain.SellAllResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellAllCalled, "character_id", characterID, "account_id", accountID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	inv, err := tx.GetOwnedInventoryForUpdate(ctx, characterID, accountID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}

	// Prices come back from the delete itself, so every removed item is paid for
	prices, err := tx.DeleteUnequippedItems(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgDeleteItemsFailed, err)
	}
	soldAmount := utils.SumInts(prices)

	gold := inv.Gold
	if soldAmount > 0 {
		gold, err = tx.AddGold(ctx, inv.ID, soldAmount)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgUpdateGoldFailed, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	event.PublishBestEffort(ctx, s.publisher, event.New(event.ItemsSoldAll, event.ItemsSoldAllPayloadV1{
		CharacterID: characterID,
		ItemsSold:   len(prices),
		SoldAmount:  soldAmount,
		Gold:        gold,
		Timestamp:   event.Now(),
	}))

	log.Info(LogMsgItemsSold, "character_id", characterID, "count", len(prices), "sold_amount", soldAmount, "gold", gold)
	return &domain.SellAllResult{
		SoldAmount: soldAmount,
		ItemsSold:  len(prices),
		Gold:       gold,
	}, nil
}
