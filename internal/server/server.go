package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/ItemDrop_Go/internal/account"
	"github.com/osse101/ItemDrop_Go/internal/auth"
	"github.com/osse101/ItemDrop_Go/internal/catalog"
	"github.com/osse101/ItemDrop_Go/internal/character"
	"github.com/osse101/ItemDrop_Go/internal/config"
	"github.com/osse101/ItemDrop_Go/internal/handler"
	"github.com/osse101/ItemDrop_Go/internal/inventory"
	"github.com/osse101/ItemDrop_Go/internal/logger"
	"github.com/osse101/ItemDrop_Go/internal/metrics"
)

// Dependencies are the services and auth components the router dispatches to
type Dependencies struct {
	Accounts   account.Service
	Characters character.Service
	Inventory  inventory.Service
	Catalog    catalog.Service
	Tokens     *auth.TokenManager
	Denylist   auth.Denylist
	// Checkers are pinged by /readyz, keyed by component name
	Checkers map[string]handler.HealthChecker
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg *config.Config, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter builds the full route tree
func NewRouter(cfg *config.Config, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	authn := NewAuthenticator(deps.Tokens, deps.Denylist, cfg.TrustedProxies, detector)
	loginLimiter := NewLoginRateLimiter(cfg.LoginRatePerMinute, cfg.LoginRateBurst, cfg.TrustedProxies)

	r.Use(chimiddleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(SecurityLoggingMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(cfg.MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Checkers))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	accounts := handler.NewAccountHandler(deps.Accounts, cfg.CookieSecure)
	characters := handler.NewCharacterHandler(deps.Characters)
	items := handler.NewInventoryHandler(deps.Inventory)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/signup", accounts.HandleSignup)
		r.With(loginLimiter.Middleware).Post("/login", accounts.HandleLogin)
		r.With(loginLimiter.Middleware).Post("/admin/login", accounts.HandleAdminLogin)
		r.Get("/characters/{nickname}", characters.HandleGetByNickname)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authn.Middleware)

			r.Post("/logout", accounts.HandleLogout)
			r.Get("/accounts/{accountId}", accounts.HandleGetAccount)

			r.Post("/characters", characters.HandleCreate)
			r.Get("/characters/by-id/{characterId}", characters.HandleGetDetail)

			r.Post("/random-item/{characterId}", items.HandleDrawRandomItem)
			r.Post("/sell-item/{characterId}/{itemId}", items.HandleSellItem)
			r.Post("/sell-all/{characterId}", items.HandleSellAll)
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(authn.Middleware)
			r.Use(RequireAdmin)

			r.Get("/accounts", accounts.HandleListAccounts)
			r.Get("/characters", characters.HandleListAll)
			r.Get("/allitems", catalogHandler.HandleListTemplates)
			r.Post("/createitems", catalogHandler.HandleCreateTemplate)
			r.Delete("/deleteitems/{itemListId}", catalogHandler.HandleDeleteTemplate)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	if cfg.StaticDir != "" {
		slog.Default().Info(LogMsgStaticFiles, "dir", cfg.StaticDir)
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return r
}

// respondError writes the {"message": ...} error body used across the API
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(handler.ErrorResponse{Message: message}); err != nil {
		slog.Default().Error("Failed to encode error response", "error", err)
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// sanitizeHeaders copies h with credentials replaced
func sanitizeHeaders(h http.Header) http.Header {
	sanitized := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
			sanitized[k] = []string{RedactedValue}
		} else {
			sanitized[k] = v
		}
	}
	return sanitized
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
