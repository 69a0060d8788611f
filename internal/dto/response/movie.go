package response

import (
	"time"

	"moviehub/internal/data/entity"
)

type MovieResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ReleaseYear *int      `json:"release_year"`
	Genre       *string   `json:"genre"`
	Director    *string   `json:"director"`
	PosterURL   *string   `json:"poster_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		ReleaseYear: movie.ReleaseYear,
		Genre:       movie.Genre,
		Director:    movie.Director,
		PosterURL:   movie.PosterURL,
		CreatedAt:   movie.CreatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	resp := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		resp[i] = MovieToResponse(movie)
	}
	return resp
}
