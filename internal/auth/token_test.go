package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemDrop_Go/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	token, issued, err := m.Issue(42, true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id.AccountID)
	assert.True(t, id.IsAdmin)
	assert.Equal(t, issued.TokenID, id.TokenID)
	assert.WithinDuration(t, issued.ExpiresAt, id.ExpiresAt, time.Second)
}

func TestTokenManager_AcceptsBearerPrefix(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	token, _, err := m.Issue(7, false)
	require.NoError(t, err)

	id, err := m.Verify(BearerPrefix + token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id.AccountID)
	assert.False(t, id.IsAdmin)
}

func TestTokenManager_UniqueTokenIDs(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	_, a, err := m.Issue(1, false)
	require.NoError(t, err)
	_, b, err := m.Issue(1, false)
	require.NoError(t, err)

	assert.NotEqual(t, a.TokenID, b.TokenID)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	valid, _, err := m.Issue(1, false)
	require.NoError(t, err)
	admin, _, err := m.Issue(1, true)
	require.NoError(t, err)
	// header and signature of one token around the claims of another
	parts, adminParts := strings.Split(valid, "."), strings.Split(admin, ".")
	spliced := parts[0] + "." + adminParts[1] + "." + parts[2]

	other := NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour)
	foreign, _, err := other.Issue(1, false)
	require.NoError(t, err)

	expired := NewTokenManager(testSecret, time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, _, err := expired.Issue(1, false)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		AccountID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "x",
			Issuer:    TokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"bearer only", BearerPrefix},
		{"garbage", "not.a.token"},
		{"wrong secret", foreign},
		{"expired", stale},
		{"alg none", unsigned},
		{"spliced claims", spliced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := m.Verify(tt.token)
			assert.Nil(t, id)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestNewTokenManager_DefaultTTL(t *testing.T) {
	m := NewTokenManager(testSecret, 0)
	assert.Equal(t, DefaultTokenTTL, m.TTL())
}

func TestIdentityContext(t *testing.T) {
	ctx := context.Background()
	_, ok := IdentityFromContext(ctx)
	assert.False(t, ok)

	ctx = WithIdentity(ctx, &Identity{AccountID: 3, IsAdmin: true})
	id, ok := IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(3), id.AccountID)
	assert.True(t, id.IsAdmin)
}
