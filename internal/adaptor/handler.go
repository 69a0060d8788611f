package adaptor

import (
	"moviehub/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	Movie  *MovieHandler
	Review *ReviewHandler
	Home   *HomeHandler
}

func NewHandler(service *usecase.Service, info AppInfo, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		Movie:  NewMovieHandler(service.Movie, log),
		Review: NewReviewHandler(service.Review, log),
		Home:   NewHomeHandler(info),
	}
}
