package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/ItemDrop_Go/internal/auth"
	"github.com/osse101/ItemDrop_Go/internal/config"
)

// InitializeDenylist returns a Redis-backed denylist when REDIS_URL is set,
// otherwise an in-memory one. redis is nil in the in-memory case.
func InitializeDenylist(ctx context.Context, cfg *config.Config) (denylist auth.Denylist, redis *auth.RedisDenylist, err error) {
	if cfg.RedisURL == "" {
		slog.Warn(LogMsgDenylistMemory)
		return auth.NewMemoryDenylist(DenylistCacheSize, cfg.TokenTTL), nil, nil
	}

	redis, err = auth.NewRedisDenylist(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgDenylistInit, err)
	}
	slog.Info(LogMsgDenylistRedis)
	return redis, redis, nil
}
