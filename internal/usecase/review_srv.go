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

type ReviewService interface {
	CreateReview(ctx context.Context, userID int64, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(
	repo *repository.Repository,
	log *zap.Logger,
) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID int64, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}
	if req.Rating < entity.MinRating || req.Rating > entity.MaxRating {
		return nil, ErrRatingOutOfRange
	}

	// 2. Movie must exist
	movie, err := s.repo.Movie.FindByID(ctx, req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("find movie %d: %w", req.MovieID, err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	// 3. One review per user per movie
	existing, err := s.repo.Review.FindByUserAndMovie(ctx, userID, req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		s.log.Warn("Duplicate review",
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", req.MovieID),
		)
		return nil, ErrReviewExists
	}

	author, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find author %d: %w", userID, err)
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	// 4. Save; the store constraints are authoritative under races
	review := &entity.Review{
		Content: req.Content,
		Rating:  req.Rating,
		UserID:  userID,
		MovieID: req.MovieID,
	}
	if err := s.repo.Review.Create(ctx, review); err != nil {
		switch {
		case errors.Is(err, repository.ErrReviewExists):
			return nil, ErrReviewExists
		case errors.Is(err, repository.ErrMovieReference):
			return nil, ErrMovieNotFound
		case errors.Is(err, repository.ErrRatingRange):
			return nil, ErrRatingOutOfRange
		case errors.Is(err, repository.ErrUserReference):
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("user_id", userID),
		zap.Int64("movie_id", review.MovieID),
	)

	resp := response.ReviewToResponse(review, author)
	return &resp, nil
}

func (s *reviewService) ListMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("list reviews for movie %d: %w", movieID, err)
	}

	return response.ReviewsToResponse(reviews), nil
}
