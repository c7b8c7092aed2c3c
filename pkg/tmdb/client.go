// Package tmdb talks to The Movie Database: genre discovery and poster images.
package tmdb

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL  = "https://api.themoviedb.org/3"
	DefaultImageURL = "https://image.tmdb.org/t/p/w200"
)

type Config struct {
	APIKey        string
	BaseURL       string
	ImageURL      string
	Timeout       time.Duration
	PosterTimeout time.Duration
	// RateLimit is requests per second across discover and poster calls.
	RateLimit float64
}

// Client is safe for concurrent use.
type Client struct {
	apiKey   string
	baseURL  string
	imageURL string

	http    *http.Client
	posters *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ImageURL == "" {
		cfg.ImageURL = DefaultImageURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.PosterTimeout <= 0 {
		cfg.PosterTimeout = 15 * time.Second
	}

	limit := rate.Inf
	burst := 1
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
		burst = max(1, int(cfg.RateLimit))
	}

	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		imageURL: strings.TrimRight(cfg.ImageURL, "/"),
		http:     &http.Client{Timeout: cfg.Timeout},
		posters:  &http.Client{Timeout: cfg.PosterTimeout},
		limiter:  rate.NewLimiter(limit, burst),
		log:      log.With(zap.String("client", "tmdb")),
	}
}
