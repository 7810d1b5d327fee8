package server

import (
	"net/http"
	"strings"

	"github.com/osse101/ItemDrop_Go/internal/auth"
	"github.com/osse101/ItemDrop_Go/internal/logger"
)

// Authenticator verifies session tokens and puts the caller's identity on the request
type Authenticator struct {
	tokens         *auth.TokenManager
	denylist       auth.Denylist
	trustedProxies []string
	detector       *SuspiciousActivityDetector
}

// NewAuthenticator creates an Authenticator
func NewAuthenticator(tokens *auth.TokenManager, denylist auth.Denylist, trustedProxies []string, detector *SuspiciousActivityDetector) *Authenticator {
	return &Authenticator{
		tokens:         tokens,
		denylist:       denylist,
		trustedProxies: trustedProxies,
		detector:       detector,
	}
}

// tokenFromRequest reads the Authorization header, falling back to the authorization cookie
func tokenFromRequest(r *http.Request) string {
	if h := strings.TrimSpace(r.Header.Get(HeaderAuthorization)); h != "" {
		return h
	}
	if c, err := r.Cookie(auth.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// Middleware rejects requests without a valid, unrevoked token
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		raw := tokenFromRequest(r)
		id, err := a.tokens.Verify(raw)
		if err != nil {
			ip := extractIP(r, a.trustedProxies)
			if raw != "" {
				a.detector.RecordFailedAuth(ip)
			}
			log.Warn(LogMsgAuthFailed, "path", r.URL.Path, "has_token", raw != "", "ip", ip, "error", err)
			respondError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
			return
		}

		revoked, err := a.denylist.IsRevoked(r.Context(), id.TokenID)
		if err != nil {
			log.Error(LogMsgDenylistFailed, "error", err)
			respondError(w, http.StatusServiceUnavailable, ErrMsgAuthUnavailable)
			return
		}
		if revoked {
			log.Warn(LogMsgTokenRevoked, "account_id", id.AccountID)
			respondError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
	})
}

// RequireAdmin rejects authenticated callers without the admin flag.
// It must run after Authenticator.Middleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
			return
		}
		if !id.IsAdmin {
			logger.FromContext(r.Context()).Warn(LogMsgAdminRequired, "account_id", id.AccountID, "path", r.URL.Path)
			respondError(w, http.StatusForbidden, ErrMsgForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
