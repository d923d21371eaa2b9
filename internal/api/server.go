package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the chi router with the standard middleware stack.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthz", h.Health)

		r.Route("/pay", func(r chi.Router) {
			r.Post("/", h.ComputePay)
			r.Post("/compare", h.ComparePay)
		})

		r.Post("/quarterly", h.ComputeQuarterly)

		r.Route("/benefit", func(r chi.Router) {
			r.Post("/", h.ComputeBenefit)
			r.Post("/compare", h.CompareBenefit)
			r.Post("/claim", h.ProjectClaim)
		})

		r.Route("/states", func(r chi.Router) {
			r.Get("/", h.ListStates)
			r.Get("/{code}", h.GetState)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/deductions", h.ListDeductions)
			r.Get("/roles", h.ListRoles)
			r.Get("/deadlines", h.ListDeadlines)
		})
	})

	return r
}
