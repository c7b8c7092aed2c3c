// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"manochitram/cmd"
	"manochitram/internal/data/repository"
	"manochitram/internal/wire"
	"manochitram/pkg/database"
	"manochitram/pkg/tmdb"
	"manochitram/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("db_driver", config.Database.Driver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)
	if err := repos.Recommendation.EnsureSchema(ctx); err != nil {
		logger.Fatal("Failed to prepare schema", zap.Error(err))
	}

	logHistory(ctx, repos.Recommendation, logger)

	client := tmdb.NewClient(tmdb.Config{
		APIKey:        config.TMDB.APIKey,
		BaseURL:       config.TMDB.BaseURL,
		ImageURL:      config.TMDB.ImageURL,
		Timeout:       config.TMDB.Timeout,
		PosterTimeout: config.TMDB.PosterTimeout,
		RateLimit:     config.TMDB.RateLimit,
	}, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, client, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}

// logHistory reports how many recommendations are stored, warning when the
// store cannot be read.
func logHistory(ctx context.Context, repo repository.RecommendationRepository, logger *zap.Logger) {
	n, err := repo.Count(ctx)
	if err != nil {
		logger.Warn("Failed to count recommendation history", zap.Error(err))
		return
	}
	logger.Info("Recommendation history loaded", zap.Int64("rows", n))
}
