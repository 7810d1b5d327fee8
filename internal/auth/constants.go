package auth

import "time"

// Password hashing
const (
	// BcryptCost matches the cost the account table was originally populated with
	BcryptCost = 10
)

// Token settings
const (
	DefaultTokenTTL = 24 * time.Hour
	TokenIssuer     = "itemdrop"

	// BearerPrefix precedes the token in both the cookie and the Authorization header
	BearerPrefix = "Bearer "
	// CookieName is the cookie carrying "Bearer <token>"
	CookieName = "authorization"
)

// Denylist settings
const (
	// DefaultDenylistSize bounds the in-process denylist
	DefaultDenylistSize = 10000
	// RedisKeyPrefix namespaces revoked token ids in Redis
	RedisKeyPrefix   = "itemdrop:revoked:"
	RedisPingTimeout = 5 * time.Second
)

// Error messages
const (
	ErrMsgHashPassword     = "failed to hash password: %w"
	ErrMsgSignToken        = "failed to sign token: %w"
	ErrMsgInvalidToken     = "%w: invalid token: %v"
	ErrMsgMissingToken     = "%w: missing token"
	ErrMsgRevokedToken     = "%w: token revoked"
	ErrMsgParseRedisURL    = "failed to parse redis url: %w"
	ErrMsgRedisUnreachable = "failed to reach redis: %w"
	ErrMsgRedisRevoke      = "failed to revoke token in redis: %w"
	ErrMsgRedisLookup      = "failed to look up revoked token in redis: %w"
)
