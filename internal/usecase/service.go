package usecase

import (
	"manochitram/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Recommend RecommendService
}

func NewService(repo *repository.Repository, catalog Catalog, posters PosterFetcher, log *zap.Logger) *Service {
	return &Service{
		Recommend: NewRecommendService(repo.Recommendation, catalog, posters, log),
	}
}
