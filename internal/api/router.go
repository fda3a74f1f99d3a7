package api

import (
	"net/http"

	"github.com/astanton/launchbook/internal/ports"
	"github.com/astanton/launchbook/pkg/health"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every endpoint under /v1 behind the auth middleware.
func NewRouter(catalog ports.LaunchCatalog, store ports.TripStore) http.Handler {
	h := NewHandler(catalog, store)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", health.HealthGet())

		r.Group(func(r chi.Router) {
			r.Use(AuthContext(store))

			r.Get("/launches", h.Launches)
			r.Get("/launches/{id}", h.Launch)
			r.Get("/me", h.Me)
			r.Post("/login", h.Login)
			r.Get("/trips", h.Trips)
			r.Post("/trips", h.BookTrips)
			r.Delete("/trips/{id}", h.CancelTrip)
		})
	})

	return r
}
