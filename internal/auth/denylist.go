package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Denylist records revoked token ids until the tokens would have expired anyway
type Denylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// MemoryDenylist keeps revoked ids in a process-local expirable LRU.
// Revocations are lost on restart and are not shared between replicas.
type MemoryDenylist struct {
	cache *expirable.LRU[string, struct{}]
}

// NewMemoryDenylist creates a MemoryDenylist holding at most size entries,
// each evicted after ttl.
func NewMemoryDenylist(size int, ttl time.Duration) *MemoryDenylist {
	if size <= 0 {
		size = DefaultDenylistSize
	}
	return &MemoryDenylist{
		cache: expirable.NewLRU[string, struct{}](size, nil, ttl),
	}
}

// Revoke marks tokenID as revoked
func (d *MemoryDenylist) Revoke(_ context.Context, tokenID string, _ time.Time) error {
	d.cache.Add(tokenID, struct{}{})
	return nil
}

// IsRevoked reports whether tokenID was revoked
func (d *MemoryDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return d.cache.Contains(tokenID), nil
}

// RedisDenylist stores revoked ids in Redis with a TTL matching the token expiry
type RedisDenylist struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisDenylist connects to the Redis instance at url and verifies it responds
func NewRedisDenylist(ctx context.Context, url string) (*RedisDenylist, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseRedisURL, err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, RedisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf(ErrMsgRedisUnreachable, err)
	}

	return &RedisDenylist{client: client, now: time.Now}, nil
}

// Revoke stores tokenID until expiresAt. Already expired tokens are ignored.
func (d *RedisDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, RedisKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf(ErrMsgRedisRevoke, err)
	}
	return nil
}

// IsRevoked reports whether tokenID was revoked
func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, RedisKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf(ErrMsgRedisLookup, err)
	}
	return n > 0, nil
}

// Ping checks the Redis connection, used by the readiness check
func (d *RedisDenylist) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

// Close releases the Redis connection pool
func (d *RedisDenylist) Close() error {
	return d.client.Close()
}
