package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/vaultpass/passcheck-go/internal/config"
	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/handler"
	"github.com/vaultpass/passcheck-go/internal/metrics"
	"github.com/vaultpass/passcheck-go/internal/middleware"
	"github.com/vaultpass/passcheck-go/internal/service"
)

func newRouter(cfg config.Config, log *slog.Logger) http.Handler {
	recorder := metrics.NewRecorder()
	src := crypto.NewSecureSource()

	checkHandler := handler.NewCheckHandler(service.NewCheckerService(src, cfg.SuggestedLength, recorder))
	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(src, recorder))

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", recorder.Handler())

	r.Group(func(r chi.Router) {
		// Keyed by IP here, so callers without a valid token are throttled too.
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		if cfg.AuthEnabled() {
			r.Use(middleware.ClientAuth(cfg.AuthSecret))
			// Keyed by client once the token is known.
			r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		} else {
			log.Warn("AUTH_SECRET not set, API routes are unauthenticated")
		}

		r.Post("/api/v1/check", checkHandler.HandleCheck)
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	return r
}
