package usecase

import (
	"context"
	"testing"
	"time"

	"moviehub/internal/data/repository/repotest"
	"moviehub/internal/dto/request"
	"moviehub/internal/dto/response"
	"moviehub/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	store   *repotest.Store
	tokens  *utils.TokenManager
	service *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tokens, err := utils.NewTokenManager(utils.JWTConfig{
		Secret: "test-secret",
		Issuer: "moviehub-test",
		Expiry: 30 * time.Minute,
	})
	require.NoError(t, err)

	store := repotest.NewStore()
	return &fixture{
		store:   store,
		tokens:  tokens,
		service: NewService(store.Repository(), tokens, zap.NewNop()),
	}
}

func (f *fixture) register(t *testing.T, username string) *response.UserResponse {
	t.Helper()

	user, err := f.service.Auth.Register(context.Background(), &request.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) createMovie(t *testing.T, title string) *response.MovieResponse {
	t.Helper()

	movie, err := f.service.Movie.CreateMovie(context.Background(), &request.CreateMovieRequest{Title: title})
	require.NoError(t, err)
	return movie
}
