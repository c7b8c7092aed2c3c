package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	TMDB     TMDBConfig
}

type AppConfig struct {
	Name    string `validate:"required"`
	Port    string `validate:"required,numeric"`
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Driver   string `validate:"required,oneof=sqlite postgres"`
	Path     string `validate:"required_if=Driver sqlite"`
	Host     string `validate:"required_if=Driver postgres"`
	Port     string
	Name     string `validate:"required_if=Driver postgres"`
	User     string
	Password string
	MaxConns int32 `validate:"min=1"`
}

type TMDBConfig struct {
	APIKey        string        `validate:"required"`
	BaseURL       string        `validate:"required,url"`
	ImageURL      string        `validate:"required,url"`
	Timeout       time.Duration `validate:"gt=0"`
	PosterTimeout time.Duration `validate:"gt=0"`
	RateLimit     float64       `validate:"gt=0"`
}

// LoadConfig reads path (a .env file, optional) and the process environment.
// Environment variables win over the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "Manochitram")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "movies.db")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("TMDB_API_KEY", "")
	v.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	v.SetDefault("TMDB_IMAGE_URL", "https://image.tmdb.org/t/p/w200")
	v.SetDefault("TMDB_TIMEOUT", 10*time.Second)
	v.SetDefault("TMDB_RATE_LIMIT", 40)
	v.SetDefault("POSTER_TIMEOUT", 15*time.Second)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Driver:   v.GetString("DB_DRIVER"),
			Path:     v.GetString("DB_PATH"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		TMDB: TMDBConfig{
			APIKey:        v.GetString("TMDB_API_KEY"),
			BaseURL:       v.GetString("TMDB_BASE_URL"),
			ImageURL:      v.GetString("TMDB_IMAGE_URL"),
			Timeout:       v.GetDuration("TMDB_TIMEOUT"),
			PosterTimeout: v.GetDuration("POSTER_TIMEOUT"),
			RateLimit:     v.GetFloat64("TMDB_RATE_LIMIT"),
		},
	}

	if errs := ValidateStruct(config); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", FormatValidationErrors(errs))
	}

	return config, nil
}
