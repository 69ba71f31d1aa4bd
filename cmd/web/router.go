package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crucial707/habit-countdown/internal/config"
	"github.com/crucial707/habit-countdown/internal/handlers"
	"github.com/crucial707/habit-countdown/internal/middleware"
	"github.com/crucial707/habit-countdown/internal/page"
	"github.com/crucial707/habit-countdown/internal/renderer"
)

// newRouter serves doc and its reminders. running reports whether the renderer is still attached.
func newRouter(doc *page.Document, running func() bool, cfg config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.RequestLog(logger))
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.TLS()))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Probes and metrics (no rate limit)
	r.Get("/health", handlers.Health)
	r.Get("/ready", handlers.Ready(running))
	r.Handle("/metrics", promhttp.Handler())

	pages := &handlers.PageHandler{Doc: doc}
	reminders := &handlers.ReminderHandler{Doc: doc, Clock: renderer.SystemClock{}}

	r.Group(func(r chi.Router) {
		r.Use(middleware.PerMinute(cfg.RateLimitPerMinute).Middleware)
		r.Get("/", pages.ServePage)
		r.Get("/reminders", reminders.ListReminders)
		r.Get("/countdown", reminders.Countdown)
	})

	return r
}
