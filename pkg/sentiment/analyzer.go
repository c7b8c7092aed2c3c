// Package sentiment scores free text with VADER and buckets the score into a
// coarse label.
package sentiment

import (
	"bytes"
	"strings"
	"sync"

	"github.com/jonreiter/govader"
)

type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

// valenceScale maps lexicon polarities in [-1, 1] onto VADER valences in [-4, 4].
const valenceScale = 4

// Analyzer scores text against the VADER lexicon plus a supplement.
// Safe for concurrent use.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer builds a VADER analyzer extended with lex. Words VADER already
// scores keep their VADER valence.
func NewAnalyzer(lex *Lexicon) *Analyzer {
	vader := govader.NewSentimentIntensityAnalyzer()

	if lex != nil {
		for word, polarity := range lex.Words {
			if _, ok := vader.Lexicon[word]; !ok {
				vader.Lexicon[word] = polarity * valenceScale
			}
		}
	}

	return &Analyzer{vader: vader}
}

var defaultAnalyzer = sync.OnceValue(func() *Analyzer {
	lex, err := LoadLexicon(bytes.NewReader(defaultLexicon))
	if err != nil {
		panic("sentiment: embedded lexicon: " + err.Error())
	}
	return NewAnalyzer(lex)
})

// Default returns the analyzer backed by the embedded supplement.
func Default() *Analyzer {
	return defaultAnalyzer()
}

// Score returns the compound polarity of text in [-1, 1]. Text with no
// lexicon hits scores 0.
func (a *Analyzer) Score(text string) float64 {
	text = normalize(text)
	if text == "" {
		return 0
	}
	return a.vader.PolarityScores(text).Compound
}

// Classify labels text by the sign of its score.
func (a *Analyzer) Classify(text string) Label {
	return FromScore(a.Score(text))
}

// FromScore maps a polarity to a label: >0 positive, 0 neutral, <0 negative.
func FromScore(score float64) Label {
	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	default:
		return Neutral
	}
}

// Classify labels text with the default analyzer.
func Classify(text string) Label {
	return Default().Classify(text)
}

var apostrophes = strings.NewReplacer("’", "'", "‘", "'")

// normalize folds typographic apostrophes so negations like "don’t" match, and
// collapses whitespace since VADER splits on single spaces.
func normalize(text string) string {
	return strings.Join(strings.Fields(apostrophes.Replace(text)), " ")
}
