package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"moviehub/internal/dto/request"
	"moviehub/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("returns public profile", func(t *testing.T) {
		f := newFixture(t)

		user, err := f.service.Auth.Register(ctx, &request.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Positive(t, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("stores a bcrypt hash", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "alice")

		stored, err := f.store.Repository().User.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NotEqual(t, "secret123", stored.PasswordHash)
		assert.Contains(t, stored.PasswordHash, "$2a$")
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "alice")

		_, err := f.service.Auth.Register(ctx, &request.RegisterRequest{
			Username: "alice",
			Email:    "other@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrUsernameTaken)
		assert.Equal(t, KindConflict, KindOf(err))
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "alice")

		_, err := f.service.Auth.Register(ctx, &request.RegisterRequest{
			Username: "alice2",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Equal(t, KindConflict, KindOf(err))
	})

	t.Run("invalid input", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Auth.Register(ctx, &request.RegisterRequest{
			Username: "al",
			Email:    "not-an-email",
			Password: "123",
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "username")
		assert.Contains(t, verr.Fields, "email")
		assert.Contains(t, verr.Fields, "password")
	})

	t.Run("store failure is internal", func(t *testing.T) {
		f := newFixture(t)
		f.store.Err = errors.New("connection reset")

		_, err := f.service.Auth.Register(ctx, &request.RegisterRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.Equal(t, KindInternal, KindOf(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "alice")

	t.Run("token resolves to the same user", func(t *testing.T) {
		resp, err := f.service.Auth.Login(ctx, &request.LoginRequest{Username: "alice", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, response.TokenTypeBearer, resp.TokenType)

		subject, err := f.tokens.Resolve(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "alice", subject)
	})

	t.Run("email works as identifier", func(t *testing.T) {
		resp, err := f.service.Auth.Login(ctx, &request.LoginRequest{Username: "alice@example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.service.Auth.Login(ctx, &request.LoginRequest{Username: "alice", Password: "wrong-password"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, KindUnauthorized, KindOf(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.service.Auth.Login(ctx, &request.LoginRequest{Username: "bob", Password: "secret123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")

	t.Run("valid token", func(t *testing.T) {
		token, _, err := f.tokens.Issue("alice")
		require.NoError(t, err)

		user, err := f.service.Auth.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, user.ID)
	})

	t.Run("expired token", func(t *testing.T) {
		token, _, err := f.tokens.IssueWithTTL("alice", -time.Second)
		require.NoError(t, err)

		_, err = f.service.Auth.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Equal(t, KindUnauthorized, KindOf(err))
	})

	t.Run("tampered token", func(t *testing.T) {
		token, _, err := f.tokens.Issue("alice")
		require.NoError(t, err)

		_, err = f.service.Auth.Authenticate(ctx, token[:len(token)-2]+"xx")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("subject without user", func(t *testing.T) {
		token, _, err := f.tokens.Issue("ghost")
		require.NoError(t, err)

		_, err = f.service.Auth.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")

	me, err := f.service.Auth.GetCurrentUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, *alice, *me)

	_, err = f.service.Auth.GetCurrentUser(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
