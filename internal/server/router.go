package server

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Leganyst/sitter-search/internal/obs"
)

// NewRouter собирает chi-маршрутизатор поискового сервиса.
func NewRouter(h *Handler, metrics *obs.Metrics, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Use(MetricsMiddleware(metrics))
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/api/sitters/search", h.Search)
	r.Get("/api/sitters/{id}", h.Profile)
	r.Get("/healthz", h.Healthz)
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	return r
}
