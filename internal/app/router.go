package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/bloglist-backend/internal/auth"
	"github.com/heartmarshall/bloglist-backend/internal/config"
	"github.com/heartmarshall/bloglist-backend/internal/metrics"
	authsvc "github.com/heartmarshall/bloglist-backend/internal/service/auth"
	"github.com/heartmarshall/bloglist-backend/internal/service/entry"
	"github.com/heartmarshall/bloglist-backend/internal/service/stats"
	"github.com/heartmarshall/bloglist-backend/internal/service/user"
	"github.com/heartmarshall/bloglist-backend/internal/transport/middleware"
	"github.com/heartmarshall/bloglist-backend/internal/transport/rest"
)

// Router is the assembled HTTP handler plus the background resources it owns.
type Router struct {
	http.Handler
	limiter *middleware.RateLimiter
}

// Close stops the rate limiter's cleanup goroutine.
func (r *Router) Close() {
	r.limiter.Stop()
}

// NewRouter wires services and handlers on top of the given stores.
func NewRouter(cfg *config.Config, stores *Stores, logger *slog.Logger) *Router {
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	authService := authsvc.NewService(logger, stores.Users, stores.Tx, jwtManager, hasher)
	entryService := entry.NewService(logger, stores.Entries)
	statsService := stats.NewService(logger, stores.Entries)
	userService := user.NewService(logger, stores.Users, stores.Entries)

	authHandler := rest.NewAuthHandler(authService, logger)
	entryHandler := rest.NewEntryHandler(entryService, logger)
	userHandler := rest.NewUserHandler(userService, logger)
	statsHandler := rest.NewStatsHandler(statsService, logger)
	healthHandler := rest.NewHealthHandler(stores.Pinger, stores.Driver, BuildVersion())

	limiter := middleware.NewRateLimiter(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.Burst, time.Minute)
	limited := limiter.Limit()

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/blogs", entryHandler.List)
	mux.HandleFunc("GET /api/blogs/{id}", entryHandler.Get)
	mux.HandleFunc("POST /api/blogs", entryHandler.Create)
	mux.HandleFunc("PUT /api/blogs/{id}", entryHandler.UpdateLikes)
	mux.HandleFunc("POST /api/blogs/{id}/like", entryHandler.Like)
	mux.HandleFunc("DELETE /api/blogs/{id}", entryHandler.Delete)

	mux.HandleFunc("GET /api/users", userHandler.List)
	mux.HandleFunc("GET /api/users/{id}", userHandler.Get)
	mux.Handle("POST /api/users", limited(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/login", limited(http.HandlerFunc(authHandler.Login)))

	mux.HandleFunc("GET /api/stats", statsHandler.Summary)
	mux.HandleFunc("GET /api/stats/most-popular", statsHandler.MostPopular)
	mux.HandleFunc("GET /api/stats/most-prolific-author", statsHandler.MostProlificAuthor)
	mux.HandleFunc("GET /api/stats/most-liked-author", statsHandler.MostLikedAuthor)

	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	var instrument middleware.Middleware
	if cfg.Metrics.Enabled {
		m := metrics.New()
		mux.Handle("GET /metrics", m.Handler())
		instrument = m.Middleware
	}

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		instrument,
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(mux)

	return &Router{
		Handler: handler,
		limiter: limiter,
	}
}
