package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/osse101/ItemDrop_Go/internal/domain"
)

// Claims is the JWT payload issued at login
type Claims struct {
	AccountID int64 `json:"account_id"`
	IsAdmin   bool  `json:"is_admin"`
	jwt.RegisteredClaims
}

// Identity is the verified caller attached to a request context
type Identity struct {
	AccountID int64
	IsAdmin   bool
	TokenID   string
	ExpiresAt time.Time
}

// TokenManager issues and verifies HS256 access tokens
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a TokenManager. A non-positive ttl falls back to DefaultTokenTTL.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns how long issued tokens stay valid
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a new token for the account
func (m *TokenManager) Issue(accountID int64, isAdmin bool) (string, *Identity, error) {
	now := m.now()
	claims := Claims{
		AccountID: accountID,
		IsAdmin:   isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    TokenIssuer,
			Subject:   fmt.Sprintf("%d", accountID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf(ErrMsgSignToken, err)
	}
	return signed, claims.identity(), nil
}

// Verify parses and validates a token. Any failure wraps domain.ErrUnauthorized.
func (m *TokenManager) Verify(token string) (*Identity, error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, BearerPrefix))
	if token == "" {
		return nil, fmt.Errorf(ErrMsgMissingToken, domain.ErrUnauthorized)
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf(ErrMsgInvalidToken, domain.ErrUnauthorized, err)
	}
	if claims.AccountID <= 0 || claims.ID == "" {
		return nil, fmt.Errorf(ErrMsgInvalidToken, domain.ErrUnauthorized, "missing claims")
	}
	return claims.identity(), nil
}

func (c *Claims) identity() *Identity {
	id := &Identity{
		AccountID: c.AccountID,
		IsAdmin:   c.IsAdmin,
		TokenID:   c.ID,
	}
	if c.ExpiresAt != nil {
		id.ExpiresAt = c.ExpiresAt.Time
	}
	return id
}

type ctxKey struct{}

// WithIdentity returns a context carrying the verified caller
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext returns the verified caller, if any
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(*Identity)
	return id, ok && id != nil
}
