package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Authentication required"
	ErrMsgForbidden       = "Admin privileges required"
	ErrMsgTooManyRequests = "Too many requests. Please try again later."
	ErrMsgAuthUnavailable = "Authentication is temporarily unavailable"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgTokenRevoked     = "Revoked token presented"
	LogMsgDenylistFailed   = "Denylist lookup failed"
	LogMsgAdminRequired    = "Non-admin caller on admin route"
	LogMsgLoginThrottled   = "Login attempt throttled"
	LogMsgStaticFiles      = "Serving static files"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderRetryAfter     = "Retry-After"
	HeaderOrigin         = "Origin"
	HeaderVary           = "Vary"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// CORS header values
const (
	CORSAllowMethods = "GET, POST, DELETE, OPTIONS"
	CORSAllowHeaders = "Content-Type, Authorization"
	CORSMaxAge       = "3600"
)

// Suspicious activity thresholds
const (
	DetectorWindow          = 5 * time.Minute
	FailedAuthAlertCount    = 5
	MaxRequestsPerWindow    = 1000
	HighRateLogEvery        = 100
	LoginLimiterCacheSize   = 10000
	LoginLimiterIdleTimeout = 30 * time.Minute
)

// Server timeouts
const (
	ReadHeaderTimeout = 5 * time.Second
	ReadTimeout       = 15 * time.Second
	WriteTimeout      = 30 * time.Second
	IdleTimeout       = 60 * time.Second
)

// Paths that skip request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
