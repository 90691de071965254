package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"fheVoting/internal/http-server/handlers/health"
	"fheVoting/internal/http-server/handlers/proposal"
	"fheVoting/internal/http-server/handlers/results"
	"fheVoting/internal/http-server/handlers/vote"
	"fheVoting/internal/http-server/middleware/mwlogger"
)

// New собирает роутер. Клиент блокчейна передается явно; API-ручки его не используют,
// он нужен только для /health.
func New(log *slog.Logger, chain health.ChainStatusProvider) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	router.Route("/api", func(r chi.Router) {
		r.Get("/proposal", proposal.New(log))
		r.Post("/vote", vote.New(log))
		r.Get("/results", results.New(log))
	})

	router.Get("/health", health.New(log, chain))

	return router
}
