package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurityLoggingMiddleware_RequestBudget(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := SecurityLoggingMiddleware(nil, detector)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/characters/rogue", nil)
	req.RemoteAddr = "198.51.100.20:5555"

	for i := 0; i < MaxRequestsPerWindow; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgTooManyRequests)

	// A different client keeps its own budget
	other := httptest.NewRequest(http.MethodGet, "/api/characters/rogue", nil)
	other.RemoteAddr = "198.51.100.21:5555"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSuspiciousActivityDetector_WindowReset(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	ip := "198.51.100.30"

	for i := 0; i < MaxRequestsPerWindow; i++ {
		require.True(t, detector.RecordRequest(ip))
	}
	assert.False(t, detector.RecordRequest(ip))

	detector.mu.Lock()
	detector.lastResetTime = time.Now().Add(-DetectorWindow - time.Second)
	detector.mu.Unlock()

	assert.True(t, detector.RecordRequest(ip))

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 1, detector.requestCountByIP[ip])
}
