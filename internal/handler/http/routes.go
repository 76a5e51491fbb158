package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Get("/users", h.listUsers)
		r.Get("/products", h.listProducts)

		r.Route("/users/{userID}/favorites", func(r chi.Router) {
			r.Get("/", h.listFavorites)
			r.Post("/", h.addFavorite)
			r.Delete("/{favoriteID}", h.removeFavorite)
		})
	})

	return router
}
