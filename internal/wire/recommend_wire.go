package wire

import (
	"manochitram/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRecommend(r chi.Router, recommendHandler *adaptor.RecommendHandler) {
	// GET / - form plus the latest results
	r.Get("/", recommendHandler.Index)

	// POST /recommendations - form submit, renders the page
	r.Post("/recommendations", recommendHandler.Submit)

	// POST /api/recommendations - same workflow, JSON in and out
	r.Post("/api/recommendations", recommendHandler.SubmitJSON)
}
