// Package server wires the HTTP routes, middleware and handlers together.
package server

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aurimasv/vitrina/internal/config"
	"github.com/aurimasv/vitrina/internal/query"
	"github.com/aurimasv/vitrina/internal/server/handlers"
	"github.com/aurimasv/vitrina/internal/server/middleware"
	"github.com/aurimasv/vitrina/internal/server/storage"
)

// Stores bundles the persistence interfaces the server needs.
type Stores struct {
	Clients storage.ClientStore
	Jobs    storage.JobStore
	Users   storage.UserStore
	Tokens  storage.TokenStore
	DB      handlers.Pinger
}

// Server owns the route table.
type Server struct {
	logger  *slog.Logger
	cfg     config.Config
	stores  Stores
	version string
}

func New(logger *slog.Logger, cfg config.Config, stores Stores, version string) *Server {
	return &Server{logger: logger, cfg: cfg, stores: stores, version: version}
}

// Routes builds the router. Everything under /clients and /jobs sits behind
// the session middleware; auth endpoints are rate limited per IP.
func (s *Server) Routes() chi.Router {
	jwtConfig := handlers.JWTConfig{
		Secret:          s.cfg.JWTSecret,
		AccessTokenTTL:  s.cfg.AccessTokenTTL,
		RefreshTokenTTL: s.cfg.RefreshTokenTTL,
	}

	clientsHandler := handlers.NewClientsHandler(s.logger, s.stores.Clients, query.Default())
	jobsHandler := handlers.NewJobsHandler(s.logger, s.stores.Jobs)
	authHandler := handlers.NewAuthHandler(s.logger, s.stores.Users, s.stores.Tokens, jwtConfig)
	statusHandler := handlers.NewStatusHandler(s.logger, s.cfg, s.stores.DB, s.version)

	authLimiter := middleware.NewRateLimiter(s.cfg.AuthRateLimit, time.Minute, s.logger)

	r := chi.NewRouter()
	r.Use(middleware.Recovery(s.logger))
	r.Use(middleware.Logging(s.logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", statusHandler.Health)
		r.Get("/db-status", statusHandler.DBStatus)

		r.Group(func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
			r.Post("/auth/refresh", authHandler.Refresh)
			r.Post("/auth/logout", authHandler.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(s.logger, jwtConfig))

			r.Get("/clients", clientsHandler.List)
			r.Post("/clients", clientsHandler.Create)
			r.Get("/clients/{id}", clientsHandler.Get)
			r.Put("/clients/{id}", clientsHandler.Update)
			r.Delete("/clients/{id}", clientsHandler.Delete)

			r.Get("/jobs", jobsHandler.List)
			r.Post("/jobs", jobsHandler.Create)
			r.Delete("/jobs/{id}", jobsHandler.Delete)
		})
	})

	return r
}
