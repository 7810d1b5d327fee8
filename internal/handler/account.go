package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/osse101/ItemDrop_Go/internal/account"
	"github.com/osse101/ItemDrop_Go/internal/auth"
	"github.com/osse101/ItemDrop_Go/internal/domain"
	"github.com/osse101/ItemDrop_Go/internal/metrics"
)

// SignupRequest is the body of POST /api/signup
type SignupRequest struct {
	UserID   string `json:"userId" validate:"required,max=30"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the body of the login endpoints
type LoginRequest struct {
	UserID   string `json:"userId" validate:"required,max=30"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginResponse is returned by POST /api/login
type LoginResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AdminLoginResponse is returned by POST /api/admin/login
type AdminLoginResponse struct {
	Message string `json:"message"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

// AccountHandler serves signup, login and account lookups
type AccountHandler struct {
	svc          account.Service
	cookieSecure bool
}

// NewAccountHandler creates an AccountHandler. cookieSecure marks the session cookie Secure.
func NewAccountHandler(svc account.Service, cookieSecure bool) *AccountHandler {
	return &AccountHandler{svc: svc, cookieSecure: cookieSecure}
}

// setSessionCookie stores "Bearer <token>" in the authorization cookie
func (h *AccountHandler) setSessionCookie(w http.ResponseWriter, res *account.LoginResult) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    auth.BearerPrefix + res.Token,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AccountHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// recordLogin counts a login attempt by outcome
func recordLogin(err error) {
	switch {
	case err == nil:
		metrics.LoginAttempts.WithLabelValues(metrics.ResultSuccess).Inc()
	case errors.Is(err, domain.ErrInvalidCredentials):
		metrics.LoginAttempts.WithLabelValues(metrics.ResultFailure).Inc()
	}
}

// HandleSignup registers a new account
// @Summary Sign up
// @Description Create an account with a login id and password
// @Tags account
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Credentials"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/signup [post]
func (h *AccountHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSignup); err != nil {
		return
	}

	acc, err := h.svc.Signup(r.Context(), req.UserID, req.Password)
	if err != nil {
		respondServiceError(w, r, OpSignup, err)
		return
	}

	logRequest(r).Info("Account signed up", "account_id", acc.ID)
	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgSignupSuccess})
}

// HandleLogin issues a session token
// @Summary Log in
// @Description Verify credentials and set the authorization cookie
// @Tags account
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/login [post]
func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpLogin); err != nil {
		return
	}

	res, err := h.svc.Login(r.Context(), req.UserID, req.Password)
	recordLogin(err)
	if err != nil {
		respondServiceError(w, r, OpLogin, err)
		return
	}

	h.setSessionCookie(w, res)
	respondJSON(w, http.StatusOK, LoginResponse{
		Message:   MsgLoginSuccess,
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
	})
}

// HandleAdminLogin issues a session token to admin accounts only
// @Summary Admin log in
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AdminLoginResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/admin/login [post]
func (h *AccountHandler) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpAdminLogin); err != nil {
		return
	}

	res, err := h.svc.AdminLogin(r.Context(), req.UserID, req.Password)
	recordLogin(err)
	if err != nil {
		respondServiceError(w, r, OpAdminLogin, err)
		return
	}

	h.setSessionCookie(w, res)
	respondJSON(w, http.StatusOK, AdminLoginResponse{
		Message: MsgAdminLoginSuccess,
		IsAdmin: res.Account.IsAdmin,
		Token:   res.Token,
	})
}

// HandleLogout revokes the caller's token
// @Summary Log out
// @Tags account
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/logout [post]
func (h *AccountHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	if err := h.svc.Logout(r.Context(), id); err != nil {
		respondServiceError(w, r, OpLogout, err)
		return
	}

	h.clearSessionCookie(w)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLogoutSuccess})
}

// HandleGetAccount returns an account with its characters
// @Summary Get account
// @Description Owners see their own account, admins see any
// @Tags account
// @Produce json
// @Param accountId path int true "Account ID"
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/accounts/{accountId} [get]
func (h *AccountHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	accountID, ok := pathID(w, r, ParamAccountID)
	if !ok {
		return
	}

	view, err := h.svc.GetAccount(r.Context(), accountID, caller)
	if err != nil {
		respondServiceError(w, r, OpGetAccount, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: view})
}

// HandleListAccounts lists every account with its character names
// @Summary List accounts
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/admin/accounts [get]
func (h *AccountHandler) HandleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListAccounts(r.Context())
	if err != nil {
		respondServiceError(w, r, OpListAccounts, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: accounts})
}
