package usecase

import (
	"errors"
	"fmt"

	"moviehub/pkg/utils"
)

// Kind classifies service errors for the transport layer.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindConflict
	KindNotFound
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidPagination  = errors.New("skip must be >= 0 and limit between 1 and 100")
	ErrRatingOutOfRange   = errors.New("rating must be between 1 and 5")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrReviewExists       = errors.New("you have already reviewed this movie")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = utils.ErrInvalidToken
	ErrUserNotFound       = errors.New("user not found")
)

// ValidationError carries per-field messages from struct validation.
type ValidationError struct {
	Fields map[string]string
}

func newValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, utils.FormatValidationErrors(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// KindOf maps err to its Kind. Unknown errors are KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidPagination),
		errors.Is(err, ErrRatingOutOfRange):
		return KindInvalidInput
	case errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrReviewExists):
		return KindConflict
	case errors.Is(err, ErrMovieNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrUserNotFound):
		return KindUnauthorized
	default:
		return KindInternal
	}
}
