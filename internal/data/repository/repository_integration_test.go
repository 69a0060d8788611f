//go:build integration

package repository

import (
	"context"
	"os/exec"
	"sync"
	"testing"
	"time"

	"moviehub/internal/data/entity"
	"moviehub/pkg/database"
	"moviehub/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func skipIfNoDocker(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

// startPostgres runs a throwaway PostgreSQL and returns a migrated pool.
func startPostgres(t *testing.T) database.PgxIface {
	t.Helper()
	skipIfNoDocker(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "moviehub",
				"POSTGRES_PASSWORD": "moviehub",
				"POSTGRES_DB":       "moviehub",
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := database.InitDB(utils.DatabaseConfig{
		Host:        host,
		Port:        port.Port(),
		Name:        "moviehub",
		User:        "moviehub",
		Password:    "moviehub",
		SSLMode:     "disable",
		MaxConns:    10,
		AutoMigrate: true,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return db
}

func TestRepositories_Postgres(t *testing.T) {
	db := startPostgres(t)
	repo := NewRepository(db, zap.NewNop())
	ctx := context.Background()

	alice := &entity.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.User.Create(ctx, alice))
	assert.Positive(t, alice.ID)
	assert.False(t, alice.CreatedAt.IsZero())

	t.Run("unique username and email", func(t *testing.T) {
		err := repo.User.Create(ctx, &entity.User{Username: "alice", Email: "other@example.com", PasswordHash: "x"})
		assert.ErrorIs(t, err, ErrUsernameExists)

		err = repo.User.Create(ctx, &entity.User{Username: "alice2", Email: "alice@example.com", PasswordHash: "x"})
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("absent reads return nil", func(t *testing.T) {
		user, err := repo.User.FindByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, user)

		movie, err := repo.Movie.FindByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, movie)
	})

	var movies []*entity.Movie
	t.Run("list movies keeps insertion order", func(t *testing.T) {
		year := 1999
		for _, title := range []string{"The Matrix", "Alien", "Zodiac"} {
			m := &entity.Movie{Title: title, ReleaseYear: &year}
			require.NoError(t, repo.Movie.Create(ctx, m))
			movies = append(movies, m)
		}

		got, err := repo.Movie.FindAll(ctx, 0, 100)
		require.NoError(t, err)
		require.Len(t, got, 3)
		for i := range movies {
			assert.Equal(t, movies[i].ID, got[i].ID)
			assert.Equal(t, movies[i].Title, got[i].Title)
		}

		page, err := repo.Movie.FindAll(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "Alien", page[0].Title)
	})

	t.Run("review constraints", func(t *testing.T) {
		movieID := movies[0].ID

		err := repo.Review.Create(ctx, &entity.Review{Content: "x", Rating: 6, UserID: alice.ID, MovieID: movieID})
		assert.ErrorIs(t, err, ErrRatingRange)

		err = repo.Review.Create(ctx, &entity.Review{Content: "x", Rating: 3, UserID: alice.ID, MovieID: 999999})
		assert.ErrorIs(t, err, ErrMovieReference)

		review := &entity.Review{Content: "Great", Rating: 5, UserID: alice.ID, MovieID: movieID}
		require.NoError(t, repo.Review.Create(ctx, review))

		err = repo.Review.Create(ctx, &entity.Review{Content: "Again", Rating: 4, UserID: alice.ID, MovieID: movieID})
		assert.ErrorIs(t, err, ErrReviewExists)

		found, err := repo.Review.FindByUserAndMovie(ctx, alice.ID, movieID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, review.ID, found.ID)

		list, err := repo.Review.FindByMovieID(ctx, movieID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "alice", list[0].Author.Username)
		assert.Empty(t, list[0].Author.PasswordHash)
	})

	t.Run("concurrent duplicate reviews", func(t *testing.T) {
		movieID := movies[1].ID

		var wg sync.WaitGroup
		errs := make([]error, 8)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = repo.Review.Create(ctx, &entity.Review{Content: "race", Rating: 4, UserID: alice.ID, MovieID: movieID})
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, ErrReviewExists)
		}
		assert.Equal(t, 1, succeeded)
	})
}
