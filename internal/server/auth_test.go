package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ItemDrop_Go/internal/auth"
	"github.com/osse101/ItemDrop_Go/mocks"
)

const testSecret = "test-secret-with-enough-entropy-0123456789"

func issueToken(t *testing.T, tokens *auth.TokenManager, accountID int64, isAdmin bool) (string, *auth.Identity) {
	t.Helper()
	token, id, err := tokens.Issue(accountID, isAdmin)
	require.NoError(t, err)
	return token, id
}

// identityEcho reports the account id the auth middleware attached
func identityEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		w.Header().Set("X-Account-Id", strconv.FormatInt(id.AccountID, 10))
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticator_Middleware(t *testing.T) {
	tokens := auth.NewTokenManager(testSecret, time.Hour)
	otherTokens := auth.NewTokenManager("a-different-secret-0123456789abcdef", time.Hour)
	valid, _ := issueToken(t, tokens, 7, false)
	forged, _ := issueToken(t, otherTokens, 7, false)

	tests := []struct {
		name           string
		header         string
		cookie         string
		expectedStatus int
	}{
		{
			name:           "Bearer header",
			header:         auth.BearerPrefix + valid,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Raw token header",
			header:         valid,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Cookie",
			cookie:         auth.BearerPrefix + valid,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Garbage token",
			header:         "Bearer not-a-jwt",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong signing key",
			header:         auth.BearerPrefix + forged,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAuthenticator(tokens, auth.NewMemoryDenylist(16, time.Hour), nil, NewSuspiciousActivityDetector())

			req := httptest.NewRequest(http.MethodGet, "/api/accounts/7", nil)
			if tt.header != "" {
				req.Header.Set(HeaderAuthorization, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			a.Middleware(identityEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "7", rec.Header().Get("X-Account-Id"))
			}
		})
	}
}

func TestAuthenticator_RevokedToken(t *testing.T) {
	tokens := auth.NewTokenManager(testSecret, time.Hour)
	denylist := auth.NewMemoryDenylist(16, time.Hour)
	token, id := issueToken(t, tokens, 3, false)
	require.NoError(t, denylist.Revoke(t.Context(), id.TokenID, id.ExpiresAt))

	a := NewAuthenticator(tokens, denylist, nil, NewSuspiciousActivityDetector())
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set(HeaderAuthorization, auth.BearerPrefix+token)
	rec := httptest.NewRecorder()

	a.Middleware(identityEcho()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticator_DenylistUnavailable(t *testing.T) {
	tokens := auth.NewTokenManager(testSecret, time.Hour)
	token, id := issueToken(t, tokens, 3, false)

	denylist := mocks.NewMockDenylist(t)
	denylist.On("IsRevoked", mock.Anything, id.TokenID).Return(false, errors.New("redis down"))

	a := NewAuthenticator(tokens, denylist, nil, NewSuspiciousActivityDetector())
	req := httptest.NewRequest(http.MethodGet, "/api/accounts/3", nil)
	req.Header.Set(HeaderAuthorization, auth.BearerPrefix+token)
	rec := httptest.NewRecorder()

	a.Middleware(identityEcho()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAuthenticator_RecordsFailedAttempts(t *testing.T) {
	tokens := auth.NewTokenManager(testSecret, time.Hour)
	detector := NewSuspiciousActivityDetector()
	a := NewAuthenticator(tokens, auth.NewMemoryDenylist(16, time.Hour), nil, detector)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/accounts/1", nil)
		req.RemoteAddr = "192.0.2.10:5555"
		req.Header.Set(HeaderAuthorization, "Bearer bogus")
		a.Middleware(identityEcho()).ServeHTTP(httptest.NewRecorder(), req)
	}

	// Anonymous requests are not failed attempts
	req := httptest.NewRequest(http.MethodGet, "/api/accounts/1", nil)
	req.RemoteAddr = "192.0.2.10:5555"
	a.Middleware(identityEcho()).ServeHTTP(httptest.NewRecorder(), req)

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["192.0.2.10"])
}

func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		identity       *auth.Identity
		expectedStatus int
	}{
		{name: "Admin", identity: &auth.Identity{AccountID: 1, IsAdmin: true}, expectedStatus: http.StatusOK},
		{name: "Regular account", identity: &auth.Identity{AccountID: 2}, expectedStatus: http.StatusForbidden},
		{name: "Anonymous", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/accounts", nil)
			if tt.identity != nil {
				req = req.WithContext(auth.WithIdentity(req.Context(), tt.identity))
			}
			rec := httptest.NewRecorder()

			RequireAdmin(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
