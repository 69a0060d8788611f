package request

type CreateMovieRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	ReleaseYear *int    `json:"release_year,omitempty" validate:"omitempty,min=1800,max=2100"`
	Genre       *string `json:"genre,omitempty" validate:"omitempty,max=100"`
	Director    *string `json:"director,omitempty" validate:"omitempty,max=200"`
	PosterURL   *string `json:"poster_url,omitempty" validate:"omitempty,url"`
}

// ListMoviesRequest carries the skip/limit query parameters.
type ListMoviesRequest struct {
	Skip  int
	Limit int
}
