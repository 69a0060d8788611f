package usecase

import (
	"context"
	"testing"

	"moviehub/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieService_ListMovies(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	titles := []string{"Zodiac", "Alien", "Memento"}
	for _, title := range titles {
		f.createMovie(t, title)
	}

	t.Run("insertion order", func(t *testing.T) {
		movies, err := f.service.Movie.ListMovies(ctx, &request.ListMoviesRequest{Skip: 0, Limit: 100})
		require.NoError(t, err)
		require.Len(t, movies, len(titles))
		for i, title := range titles {
			assert.Equal(t, title, movies[i].Title)
		}
	})

	t.Run("skip and limit", func(t *testing.T) {
		movies, err := f.service.Movie.ListMovies(ctx, &request.ListMoviesRequest{Skip: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, movies, 1)
		assert.Equal(t, "Alien", movies[0].Title)
	})

	t.Run("skip past the end", func(t *testing.T) {
		movies, err := f.service.Movie.ListMovies(ctx, &request.ListMoviesRequest{Skip: 10, Limit: 5})
		require.NoError(t, err)
		assert.Empty(t, movies)
	})

	for _, req := range []request.ListMoviesRequest{
		{Skip: -1, Limit: 10},
		{Skip: 0, Limit: 0},
		{Skip: 0, Limit: 101},
	} {
		_, err := f.service.Movie.ListMovies(ctx, &req)
		assert.ErrorIs(t, err, ErrInvalidPagination, "skip=%d limit=%d", req.Skip, req.Limit)
		assert.Equal(t, KindInvalidInput, KindOf(err))
	}
}

func TestMovieService_GetMovie(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	created := f.createMovie(t, "Heat")

	movie, err := f.service.Movie.GetMovie(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *movie)

	_, err = f.service.Movie.GetMovie(ctx, created.ID+1)
	assert.ErrorIs(t, err, ErrMovieNotFound)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestMovieService_CreateMovie(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	year := 1995
	director := "Michael Mann"
	poster := "https://example.com/heat.jpg"

	movie, err := f.service.Movie.CreateMovie(ctx, &request.CreateMovieRequest{
		Title:       "Heat",
		ReleaseYear: &year,
		Director:    &director,
		PosterURL:   &poster,
	})
	require.NoError(t, err)
	assert.Positive(t, movie.ID)
	assert.Equal(t, &year, movie.ReleaseYear)
	assert.Equal(t, &director, movie.Director)
	assert.Nil(t, movie.Description)
	assert.Nil(t, movie.Genre)

	badYear := 1700
	badPoster := "not a url"
	tests := []struct {
		name  string
		req   request.CreateMovieRequest
		field string
	}{
		{"missing title", request.CreateMovieRequest{}, "title"},
		{"year out of range", request.CreateMovieRequest{Title: "Old", ReleaseYear: &badYear}, "release_year"},
		{"poster not a url", request.CreateMovieRequest{Title: "Poster", PosterURL: &badPoster}, "poster_url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Movie.CreateMovie(ctx, &tt.req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}
