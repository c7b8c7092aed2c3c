package repository

import (
	"manochitram/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Recommendation RecommendationRepository
}

func NewRepository(db database.SQLIface, log *zap.Logger) *Repository {
	return &Repository{
		Recommendation: NewRecommendationRepository(db, log),
	}
}
