package middleware

import (
	"context"
	"errors"
	"net/http"

	"moviehub/internal/data/entity"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

// Authenticator resolves a bearer token to an existing user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

// Auth rejects requests without a valid bearer token and stores the
// resolved user's id and username in the request context.
func Auth(auth Authenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Extract token
			token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
			if err != nil {
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			// 2. Resolve to user
			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, utils.ErrInvalidToken) {
					logger.Warn("Rejected bearer token",
						zap.Error(err),
						zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Could not validate credentials")
					return
				}
				logger.Error("Failed to authenticate request", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// 3. Continue with user in context
			ctx := utils.SetUserContext(r.Context(), user.ID, user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
