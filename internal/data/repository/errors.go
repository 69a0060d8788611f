package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for constraint violations. The store is the source of truth
// for uniqueness, so concurrent duplicate inserts surface here.
var (
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
	ErrReviewExists   = errors.New("review for this movie by this user already exists")
	ErrMovieReference = errors.New("referenced movie does not exist")
	ErrUserReference  = errors.New("referenced user does not exist")
	ErrRatingRange    = errors.New("rating out of range")
	ErrInvalidPage    = errors.New("limit must be between 1 and 100 and skip must not be negative")
)

const (
	constraintUsername   = "users_username_key"
	constraintEmail      = "users_email_key"
	constraintReviewPair = "reviews_user_id_movie_id_key"
	constraintReviewUser = "reviews_user_id_fkey"
	constraintMovieRef   = "reviews_movie_id_fkey"
	constraintRating     = "reviews_rating_check"
)

// constraintError maps a PostgreSQL constraint violation to a sentinel error.
// It returns nil when err is not a known violation.
func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case constraintUsername:
			return ErrUsernameExists
		case constraintEmail:
			return ErrEmailExists
		case constraintReviewPair:
			return ErrReviewExists
		}
	case pgerrcode.ForeignKeyViolation:
		switch pgErr.ConstraintName {
		case constraintMovieRef:
			return ErrMovieReference
		case constraintReviewUser:
			return ErrUserReference
		}
	case pgerrcode.CheckViolation:
		if pgErr.ConstraintName == constraintRating {
			return ErrRatingRange
		}
	}

	return nil
}
