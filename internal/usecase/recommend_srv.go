package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"manochitram/internal/data/entity"
	"manochitram/internal/data/repository"
	"manochitram/internal/dto/request"
	"manochitram/internal/dto/response"
	"manochitram/pkg/sentiment"
	"manochitram/pkg/tmdb"
	"manochitram/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidAge means the age field did not parse as an integer. Nothing else ran.
var ErrInvalidAge = errors.New("invalid age")

const posterConcurrency = tmdb.MaxResults

type Catalog interface {
	Discover(ctx context.Context, genres []int) ([]tmdb.MovieSummary, error)
}

type PosterFetcher interface {
	FetchPoster(ctx context.Context, posterURL string) (*tmdb.Thumbnail, error)
}

type RecommendService interface {
	// Recommend classifies the feeling, maps genres and queries the catalog.
	// A catalog failure is reported in the result, never as an error, unless
	// ctx itself was canceled or expired.
	Recommend(ctx context.Context, req *request.RecommendRequest) (*response.RecommendationResult, error)
	// AttachPosters fetches thumbnails. Failures only mark the affected item.
	AttachPosters(ctx context.Context, result *response.RecommendationResult)
	// Save appends one row per item and returns how many were written.
	Save(ctx context.Context, result *response.RecommendationResult) (int, error)
	// Submit runs Recommend then Save, without posters.
	Submit(ctx context.Context, req *request.RecommendRequest) (*response.RecommendationResult, error)
}

type recommendService struct {
	repo       repository.RecommendationRepository
	catalog    Catalog
	posters    PosterFetcher
	classifier *sentiment.Analyzer
	log        *zap.Logger
}

func NewRecommendService(
	repo repository.RecommendationRepository,
	catalog Catalog,
	posters PosterFetcher,
	log *zap.Logger,
) RecommendService {
	return &recommendService{
		repo:       repo,
		catalog:    catalog,
		posters:    posters,
		classifier: sentiment.Default(),
		log:        log.With(zap.String("service", "recommend")),
	}
}

func (s *recommendService) Recommend(ctx context.Context, req *request.RecommendRequest) (*response.RecommendationResult, error) {
	log := s.log.With(utils.RequestIDField(ctx))

	age, err := utils.ParseAge(req.Age)
	if err != nil {
		log.Warn("Invalid age, submit ignored",
			zap.String("age", req.Age),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %q", ErrInvalidAge, req.Age)
	}

	label := s.classifier.Classify(strings.TrimSpace(req.Feeling))
	bucket := BucketForAge(age)
	genres := GenresFor(label, age)

	result := &response.RecommendationResult{
		Submission: response.Submission{
			Name:   strings.TrimSpace(req.Name),
			Age:    age,
			Gender: strings.TrimSpace(req.Gender),
		},
		Sentiment:  string(label),
		AgeBucket:  string(bucket),
		Genres:     genres.Codes(),
		GenreNames: []string{GenreName(genres[0]), GenreName(genres[1])},
	}

	movies, err := s.catalog.Discover(ctx, genres.Codes())
	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Warn("Submit canceled during catalog call", zap.Error(ctxErr))
		return nil, fmt.Errorf("recommend: %w", ctxErr)
	}
	if err != nil {
		result.CatalogError = "unavailable"
		var catalogErr *tmdb.CatalogError
		if errors.As(err, &catalogErr) {
			result.CatalogError = string(catalogErr.Kind)
		}
		log.Warn("Catalog unavailable, continuing with no recommendations",
			zap.String("kind", result.CatalogError),
			zap.Error(err),
		)
	}

	result.Items = make([]response.RecommendationItem, len(movies))
	for i, m := range movies {
		result.Items[i] = response.SummaryToItem(m)
	}

	log.Info("Recommendations prepared",
		zap.String("sentiment", result.Sentiment),
		zap.String("age_bucket", result.AgeBucket),
		zap.Ints("genres", result.Genres),
		zap.Int("count", len(result.Items)),
	)

	return result, nil
}

func (s *recommendService) AttachPosters(ctx context.Context, result *response.RecommendationResult) {
	if result == nil {
		return
	}

	log := s.log.With(utils.RequestIDField(ctx))

	var g errgroup.Group
	g.SetLimit(posterConcurrency)

	for i := range result.Items {
		item := &result.Items[i]
		if item.PosterURL == nil {
			continue
		}

		g.Go(func() error {
			thumb, err := s.posters.FetchPoster(ctx, *item.PosterURL)
			if err != nil {
				log.Warn("Failed to load image",
					zap.String("title", item.Title),
					zap.Error(err),
				)
				item.PosterFailed = true
				return nil
			}
			item.Thumbnail = thumb.DataURI()
			return nil
		})
	}

	g.Wait()
}

func (s *recommendService) Save(ctx context.Context, result *response.RecommendationResult) (int, error) {
	if result == nil || len(result.Items) == 0 {
		return 0, nil
	}

	recs := make([]*entity.Recommendation, len(result.Items))
	for i, item := range result.Items {
		recs[i] = response.ItemToEntity(item, result.Sentiment, result.Submission)
	}

	if err := s.repo.CreateBatch(ctx, recs); err != nil {
		s.log.Error("Failed to save recommendations",
			utils.RequestIDField(ctx),
			zap.Error(err),
			zap.Int("count", len(recs)),
		)
		return 0, fmt.Errorf("save recommendations: %w", err)
	}

	result.Saved = len(recs)

	s.log.Info("Recommendations saved",
		utils.RequestIDField(ctx),
		zap.Int("count", len(recs)),
		zap.String("user_name", result.Submission.Name),
	)

	return len(recs), nil
}

func (s *recommendService) Submit(ctx context.Context, req *request.RecommendRequest) (*response.RecommendationResult, error) {
	result, err := s.Recommend(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.Save(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}
