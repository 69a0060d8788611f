package usecase

import (
	"context"
	"errors"
	"fmt"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
	"moviehub/internal/dto/request"
	"moviehub/internal/dto/response"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	ListMovies(ctx context.Context, req *request.ListMoviesRequest) ([]response.MovieResponse, error)
	GetMovie(ctx context.Context, movieID int64) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context, req *request.ListMoviesRequest) ([]response.MovieResponse, error) {
	if req.Skip < 0 || req.Limit < 1 || req.Limit > utils.MaxLimit {
		return nil, ErrInvalidPagination
	}

	movies, err := s.repo.Movie.FindAll(ctx, req.Skip, req.Limit)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidPage) {
			return nil, ErrInvalidPagination
		}
		return nil, fmt.Errorf("list movies: %w", err)
	}

	s.log.Debug("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Int("skip", req.Skip),
		zap.Int("limit", req.Limit),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovie(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	movie := &entity.Movie{
		Title:       req.Title,
		Description: req.Description,
		ReleaseYear: req.ReleaseYear,
		Genre:       req.Genre,
		Director:    req.Director,
		PosterURL:   req.PosterURL,
	}
	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}
