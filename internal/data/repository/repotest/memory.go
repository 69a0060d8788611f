// Package repotest provides in-memory repositories that enforce the same
// uniqueness, foreign key and rating rules as the PostgreSQL schema.
package repotest

import (
	"context"
	"sync"
	"time"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
)

// Store backs all three repositories with one lock so cross-table rules hold.
type Store struct {
	mu      sync.Mutex
	users   []entity.User
	movies  []entity.Movie
	reviews []entity.Review

	// Err, when set, is returned by every operation.
	Err error
}

func NewStore() *Store {
	return &Store{}
}

// Repository wires the store into a repository.Repository.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		User:   &UserRepository{s},
		Movie:  &MovieRepository{s},
		Review: &ReviewRepository{s},
	}
}

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return repository.ErrUsernameExists
		}
		if u.Email == user.Email {
			return repository.ErrEmailExists
		}
	}

	user.ID = int64(len(r.s.users) + 1)
	user.CreatedAt = time.Now().UTC()
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.ID == id })
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Email == email })
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Username == username })
}

func (r *UserRepository) find(match func(entity.User) bool) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	for _, u := range r.s.users {
		if match(u) {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

type MovieRepository struct{ s *Store }

func (r *MovieRepository) Create(_ context.Context, movie *entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}

	movie.ID = int64(len(r.s.movies) + 1)
	movie.CreatedAt = time.Now().UTC()
	r.s.movies = append(r.s.movies, *movie)
	return nil
}

func (r *MovieRepository) FindByID(_ context.Context, id int64) (*entity.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	if m := r.s.movie(id); m != nil {
		found := *m
		return &found, nil
	}
	return nil, nil
}

func (r *MovieRepository) FindAll(_ context.Context, offset, limit int) ([]*entity.Movie, error) {
	if offset < 0 || limit < 1 || limit > repository.MaxPageLimit {
		return nil, repository.ErrInvalidPage
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	movies := []*entity.Movie{}
	for i := offset; i < len(r.s.movies) && len(movies) < limit; i++ {
		m := r.s.movies[i]
		movies = append(movies, &m)
	}
	return movies, nil
}

func (s *Store) movie(id int64) *entity.Movie {
	for i := range s.movies {
		if s.movies[i].ID == id {
			return &s.movies[i]
		}
	}
	return nil
}

func (s *Store) user(id int64) *entity.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

type ReviewRepository struct{ s *Store }

func (r *ReviewRepository) Create(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}

	if review.Rating < entity.MinRating || review.Rating > entity.MaxRating {
		return repository.ErrRatingRange
	}
	if r.s.user(review.UserID) == nil {
		return repository.ErrUserReference
	}
	if r.s.movie(review.MovieID) == nil {
		return repository.ErrMovieReference
	}
	for _, existing := range r.s.reviews {
		if existing.UserID == review.UserID && existing.MovieID == review.MovieID {
			return repository.ErrReviewExists
		}
	}

	review.ID = int64(len(r.s.reviews) + 1)
	review.CreatedAt = time.Now().UTC()
	r.s.reviews = append(r.s.reviews, *review)
	return nil
}

func (r *ReviewRepository) FindByMovieID(_ context.Context, movieID int64) ([]*entity.ReviewWithAuthor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	reviews := []*entity.ReviewWithAuthor{}
	for _, review := range r.s.reviews {
		if review.MovieID != movieID {
			continue
		}
		author := *r.s.user(review.UserID)
		// the join selects public columns only
		author.PasswordHash = ""
		reviews = append(reviews, &entity.ReviewWithAuthor{Review: review, Author: author})
	}
	return reviews, nil
}

func (r *ReviewRepository) FindByUserAndMovie(_ context.Context, userID, movieID int64) (*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	for _, review := range r.s.reviews {
		if review.UserID == userID && review.MovieID == movieID {
			found := review
			return &found, nil
		}
	}
	return nil, nil
}
