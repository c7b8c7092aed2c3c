package adaptor

import (
	"manochitram/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Recommend *RecommendHandler
}

func NewHandler(service *usecase.Service, appName string, log *zap.Logger) *Handler {
	return &Handler{
		Recommend: NewRecommendHandler(service.Recommend, appName, log),
	}
}
