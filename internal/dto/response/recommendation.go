package response

import (
	"manochitram/internal/data/entity"
	"manochitram/pkg/tmdb"
)

type Submission struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

type RecommendationItem struct {
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Rating      float64 `json:"rating"`
	PosterURL   *string `json:"poster_url,omitempty"`

	// Thumbnail is a data URI, set once the poster was fetched.
	Thumbnail    string `json:"-"`
	PosterFailed bool   `json:"-"`
}

type RecommendationResult struct {
	Submission Submission           `json:"submission"`
	Sentiment  string               `json:"sentiment"`
	AgeBucket  string               `json:"age_bucket"`
	Genres     []int                `json:"genres"`
	GenreNames []string             `json:"genre_names"`
	Items      []RecommendationItem `json:"items"`
	// CatalogError is the failure kind when the catalog could not be reached.
	CatalogError string `json:"catalog_error,omitempty"`
	Saved        int    `json:"saved"`
}

// Helper converters
func SummaryToItem(m tmdb.MovieSummary) RecommendationItem {
	return RecommendationItem{
		Title:       m.Title,
		Overview:    m.Overview,
		ReleaseDate: m.ReleaseDate,
		Rating:      m.Rating,
		PosterURL:   m.PosterURL,
	}
}

func ItemToEntity(item RecommendationItem, sentiment string, sub Submission) *entity.Recommendation {
	return &entity.Recommendation{
		Sentiment:   sentiment,
		MovieTitle:  item.Title,
		Overview:    item.Overview,
		ReleaseDate: item.ReleaseDate,
		Rating:      item.Rating,
		UserName:    sub.Name,
		UserAge:     sub.Age,
		UserGender:  sub.Gender,
	}
}
