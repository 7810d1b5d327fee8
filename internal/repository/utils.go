package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/ItemDrop_Go/internal/domain"
	"github.com/osse101/ItemDrop_Go/internal/logger"
)

// SafeRollback is deferred right after BeginTx. Once the transaction has
// committed, the rollback reports a closed tx, which is expected and ignored.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || isTxClosed(err) {
		return
	}
	logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
}

func isTxClosed(err error) bool {
	return errors.Is(err, pgx.ErrTxClosed) || err.Error() == domain.ErrMsgTxClosed
}
