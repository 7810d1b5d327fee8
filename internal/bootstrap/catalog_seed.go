package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/ItemDrop_Go/internal/catalog"
)

// SeedCatalog loads the configured seed file into the item catalog.
// Templates that already exist are left untouched, so this is safe on every start.
func SeedCatalog(ctx context.Context, svc catalog.Service, path string) error {
	if path == "" {
		slog.Debug(LogMsgCatalogSeedSkip)
		return nil
	}

	slog.Info(LogMsgSeedingCatalog, "file", path)
	created, err := svc.LoadSeed(ctx, path)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedSeedCatalog, err)
	}

	slog.Info(LogMsgCatalogSeeded, "created", created)
	return nil
}
