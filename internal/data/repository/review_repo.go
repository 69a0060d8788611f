package repository

import (
	"context"
	"errors"
	"fmt"

	"moviehub/internal/data/entity"
	"moviehub/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.ReviewWithAuthor, error)
	FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*entity.Review, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

// Create inserts the review. A second review for the same (user, movie) pair
// fails with ErrReviewExists even when two requests race past the service check.
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (content, rating, user_id, movie_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		review.Content,
		review.Rating,
		review.UserID,
		review.MovieID,
	).Scan(&review.ID, &review.CreatedAt)

	if err != nil {
		if mapped := constraintError(err); mapped != nil {
			return mapped
		}
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("user_id", review.UserID),
			zap.Int64("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review for movie %d by user %d: %w",
			review.MovieID, review.UserID, err)
	}

	return nil
}

// FindByMovieID returns every review of the movie with its author, oldest first.
func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.ReviewWithAuthor, error) {
	query, args, err := psql.Select(
		"r.id", "r.content", "r.rating", "r.user_id", "r.movie_id", "r.created_at",
		"u.id", "u.username", "u.email", "u.created_at",
	).
		From("reviews r").
		Join("users u ON u.id = r.user_id").
		Where("r.movie_id = ?", movieID).
		OrderBy("r.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reviews by movie query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find reviews by movie %d: %w", movieID, err)
	}
	defer rows.Close()

	reviews := []*entity.ReviewWithAuthor{}
	for rows.Next() {
		var review entity.ReviewWithAuthor
		err := rows.Scan(
			&review.ID,
			&review.Content,
			&review.Rating,
			&review.UserID,
			&review.MovieID,
			&review.CreatedAt,
			&review.Author.ID,
			&review.Author.Username,
			&review.Author.Email,
			&review.Author.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*entity.Review, error) {
	query := `
		SELECT id, content, rating, user_id, movie_id, created_at
		FROM reviews
		WHERE user_id = $1 AND movie_id = $2
		LIMIT 1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(
		&review.ID,
		&review.Content,
		&review.Rating,
		&review.UserID,
		&review.MovieID,
		&review.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and movie",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find review by user %d and movie %d: %w", userID, movieID, err)
	}

	return &review, nil
}
