package wire

import (
	"net/http"

	"moviehub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	auth func(http.Handler) http.Handler,
) {
	r.Route("/movies", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// GET /movies?skip=&limit=
		r.Get("/", movieHandler.ListMovies)
		r.Get("/{id}", movieHandler.GetMovie)

		// ==================== PROTECTED ROUTES ====================
		r.With(auth).Post("/", movieHandler.CreateMovie)
	})
}
