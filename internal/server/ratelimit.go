package server

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/osse101/ItemDrop_Go/internal/logger"
	"github.com/osse101/ItemDrop_Go/internal/metrics"
)

// LoginRateLimiter throttles login attempts per client IP.
// Idle limiters age out of the cache, so memory stays bounded.
type LoginRateLimiter struct {
	limiters       *expirable.LRU[string, *rate.Limiter]
	limit          rate.Limit
	burst          int
	trustedProxies []string
}

// NewLoginRateLimiter allows perMinute attempts per IP with the given burst
func NewLoginRateLimiter(perMinute, burst int, trustedProxies []string) *LoginRateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &LoginRateLimiter{
		limiters:       expirable.NewLRU[string, *rate.Limiter](LoginLimiterCacheSize, nil, LoginLimiterIdleTimeout),
		limit:          rate.Every(time.Minute / time.Duration(perMinute)),
		burst:          burst,
		trustedProxies: trustedProxies,
	}
}

// limiterFor returns the limiter for ip, creating it on first use.
// Two racing first requests may each create one; the later Add wins, which only
// grants that IP one extra token.
func (l *LoginRateLimiter) limiterFor(ip string) *rate.Limiter {
	if lim, ok := l.limiters.Get(ip); ok {
		return lim
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	l.limiters.Add(ip, lim)
	return lim
}

// Middleware answers 429 once an IP runs out of login attempts
func (l *LoginRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := extractIP(r, l.trustedProxies)
		lim := l.limiterFor(ip)

		res := lim.Reserve()
		if delay := res.Delay(); delay > 0 {
			res.Cancel()
			metrics.LoginAttempts.WithLabelValues(metrics.ResultThrottled).Inc()
			logger.FromContext(r.Context()).Warn(LogMsgLoginThrottled, "ip", ip, "retry_after", delay)
			w.Header().Set(HeaderRetryAfter, strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			respondError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
