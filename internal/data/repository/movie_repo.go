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

const (
	MaxPageLimit = 100
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

var movieColumns = []string{
	"id", "title", "description", "release_year", "genre", "director", "poster_url", "created_at",
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, description, release_year, genre, director, poster_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Description,
		movie.ReleaseYear,
		movie.Genre,
		movie.Director,
		movie.PosterURL,
	).Scan(&movie.ID, &movie.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %q: %w", movie.Title, err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query, args, err := psql.Select(movieColumns...).
		From("movies").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find movie query: %w", err)
	}

	var movie entity.Movie
	err = scanMovie(r.db.QueryRow(ctx, query, args...), &movie)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie %d: %w", id, err)
	}

	return &movie, nil
}

// FindAll returns one page of movies in insertion order.
func (r *movieRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	if offset < 0 || limit < 1 || limit > MaxPageLimit {
		return nil, ErrInvalidPage
	}

	query, args, err := psql.Select(movieColumns...).
		From("movies").
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list movies query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all movies",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	movies := make([]*entity.Movie, 0, limit)
	for rows.Next() {
		var movie entity.Movie
		if err := scanMovie(rows, &movie); err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

func scanMovie(row pgx.Row, movie *entity.Movie) error {
	return row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.ReleaseYear,
		&movie.Genre,
		&movie.Director,
		&movie.PosterURL,
		&movie.CreatedAt,
	)
}
