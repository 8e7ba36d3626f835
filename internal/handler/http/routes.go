package http

import (
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gestion-riesgos/coe-backend/internal/resource"
)

// Init builds the router: recovery, CORS restricted to the configured
// frontend origin, request logging, the process-wide auth gate, and one
// route group per resource collection from the catalog.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.App.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-API-Key"},
		AllowCredentials: true,
	}))
	router.Use(h.withLogging)
	router.Use(h.authGate)

	router.Get("/api/health", h.health)
	router.Post("/api/usuarios/login", h.login)

	// public reporting surface: API-key-gated views plus the token-gated
	// CSV exports
	router.Route("/api/public", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.apiKeyGate)
			r.Get("/{view}", h.publicView)
			r.Get("/{view}/{emergencia_id}", h.publicView)
		})
		r.Get("/export/eventos-historico", h.exportCSV("eventos-historico"))
		r.Get("/export/eventos-dashboard", h.exportCSV("eventos-dashboard"))
	})

	// one uniform CRUD group per catalog entry; usuarios swaps in its
	// strict handlers for the write operations
	for _, d := range h.catalog {
		descriptor := d
		router.Route("/api/"+descriptor.Name, func(r chi.Router) {
			r.Get("/", h.list(descriptor))
			r.Get("/{id:[0-9]+}", h.getByID(descriptor))
			r.Delete("/{id:[0-9]+}", h.deleteByID(descriptor))

			if descriptor.Name == "usuarios" {
				r.Post("/", h.createUsuario(descriptor))
				r.Put("/{id:[0-9]+}", h.updateUsuario(descriptor))
			} else {
				r.Post("/", h.create(descriptor))
				r.Put("/{id:[0-9]+}", h.update(descriptor))
			}

			for _, f := range descriptor.Filters {
				r.Get(numericFilterPath(f), h.listFiltered(f))
			}
		})
	}

	return router
}

// numericFilterPath constrains every declared path parameter of a filter
// route to digits, so a non-numeric segment falls through to 404 instead of
// binding a string against an integer column.
func numericFilterPath(f resource.Filter) string {
	path := f.Path
	for _, param := range f.Params {
		path = strings.Replace(path, "{"+param+"}", "{"+param+":[0-9]+}", 1)
	}

	return path
}
