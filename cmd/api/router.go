package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/nexus-pipeline/internal/infra/http/handlers"
	"github.com/xavierca1/nexus-pipeline/internal/infra/http/middleware"
)

type routes struct {
	leads     *handlers.LeadHandler
	analytics *handlers.AnalyticsHandler
	drafts    *handlers.DraftHandler
	activity  *handlers.ActivityHandler
	health    *handlers.HealthHandler
}

func newRouter(h routes, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/leads", func(r chi.Router) {
		r.Get("/", h.leads.List)
		r.Post("/", h.leads.Create)
		r.Post("/refresh", h.leads.Refresh)
		r.Get("/export", h.leads.Export)

		r.Route("/{id}", func(r chi.Router) {
			r.Delete("/", h.leads.Delete)
			r.Patch("/", h.leads.UpdateStatus)
			r.Post("/advance", h.leads.Advance)
			r.Post("/revert", h.leads.Revert)
			r.Post("/toggle", h.leads.Toggle)
			r.Post("/draft", h.drafts.Request)
		})
	})

	r.Route("/draft", func(r chi.Router) {
		r.Get("/", h.drafts.State)
		r.Delete("/", h.drafts.Dismiss)
		r.Post("/copy", h.drafts.Copy)
		r.Post("/send", h.drafts.Send)
		r.Get("/clipboard", h.drafts.Paste)
	})

	r.Get("/analytics", h.analytics.Handle)
	r.Get("/activity", h.activity.Handle)
	r.Get("/health", h.health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
