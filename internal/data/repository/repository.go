package repository

import (
	"moviehub/pkg/database"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

// psql builds queries with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	User   UserRepository
	Movie  MovieRepository
	Review ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Movie:  NewMovieRepository(db, log),
		Review: NewReviewRepository(db, log),
	}
}
