package wire

import (
	"net/http"

	"moviehub/internal/adaptor"
	"moviehub/internal/data/repository"
	"moviehub/internal/usecase"
	"moviehub/pkg/middleware"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired HTTP application.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	tokens, err := utils.NewTokenManager(config.JWT)
	if err != nil {
		return nil, err
	}

	service := usecase.NewService(repo, tokens, logger)
	handler := adaptor.NewHandler(service, adaptor.AppInfo{
		Name:    config.App.Name,
		Version: config.App.Version,
	}, logger)

	return &App{
		Router: setupRouter(handler, service, config, logger),
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseError(w, http.StatusMethodNotAllowed, utils.CodeInvalidInput, "Method not allowed", nil)
	})

	auth := middleware.Auth(service.Auth, logger)

	// Apply routes
	wireAuth(r, handler.Auth, auth)
	wireMovie(r, handler.Movie, auth)
	wireReview(r, handler.Review, auth)

	r.Get("/", handler.Home.Root)
	r.Get("/health", handler.Home.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
