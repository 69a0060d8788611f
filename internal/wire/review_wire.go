package wire

import (
	"net/http"

	"moviehub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	auth func(http.Handler) http.Handler,
) {
	r.Route("/reviews", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/movie/{movie_id}", reviewHandler.ListMovieReviews)

		// ==================== PROTECTED ROUTES ====================
		r.With(auth).Post("/", reviewHandler.CreateReview)
	})
}
