// internal/wire/wire.go
package wire

import (
	"net/http"

	"manochitram/internal/adaptor"
	"manochitram/internal/data/repository"
	"manochitram/internal/usecase"
	"manochitram/pkg/middleware"
	"manochitram/pkg/tmdb"
	"manochitram/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of repo and client.
func Wiring(repo *repository.Repository, client *tmdb.Client, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, client, client, logger)
	handler := adaptor.NewHandler(service, config.App.Name, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireRecommend(r, handler.Recommend)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
