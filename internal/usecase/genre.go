package usecase

import (
	"fmt"

	"manochitram/pkg/sentiment"
)

type AgeBucket string

const (
	AgeChild AgeBucket = "child"
	AgeTeen  AgeBucket = "teen"
	AgeAdult AgeBucket = "adult"
)

// TMDB genre ids.
const (
	GenreAction    = 28
	GenreAnimation = 16
	GenreComedy    = 35
	GenreDrama     = 18
	GenreRomance   = 10749
)

var sentimentGenres = map[sentiment.Label]int{
	sentiment.Positive: GenreComedy,
	sentiment.Neutral:  GenreAction,
	sentiment.Negative: GenreDrama,
}

var ageGenres = map[AgeBucket]int{
	AgeChild: GenreAnimation,
	AgeTeen:  GenreRomance,
	AgeAdult: GenreDrama,
}

// Fallbacks for labels or buckets outside the tables.
const (
	defaultSentimentGenre = GenreComedy
	defaultAgeGenre       = GenreDrama
)

var genreNames = map[int]string{
	GenreAction:    "Action",
	GenreAnimation: "Animation",
	GenreComedy:    "Comedy",
	GenreDrama:     "Drama",
	GenreRomance:   "Romance",
}

func BucketForAge(age int) AgeBucket {
	switch {
	case age <= 12:
		return AgeChild
	case age <= 19:
		return AgeTeen
	default:
		return AgeAdult
	}
}

// GenrePair is [genre from sentiment, genre from age]. Equal codes are kept as is.
type GenrePair [2]int

func (p GenrePair) Codes() []int {
	return []int{p[0], p[1]}
}

func GenresFor(label sentiment.Label, age int) GenrePair {
	fromSentiment, ok := sentimentGenres[label]
	if !ok {
		fromSentiment = defaultSentimentGenre
	}

	fromAge, ok := ageGenres[BucketForAge(age)]
	if !ok {
		fromAge = defaultAgeGenre
	}

	return GenrePair{fromSentiment, fromAge}
}

func GenreName(code int) string {
	if name, ok := genreNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Genre %d", code)
}
