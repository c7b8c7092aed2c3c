package sentiment

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

// Lexicon holds supplementary word polarities in [-1, 1].
type Lexicon struct {
	Words map[string]float64 `yaml:"words"`
}

// LoadLexicon parses a YAML lexicon. Keys are lower-cased.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	var raw Lexicon
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}

	lex := &Lexicon{Words: make(map[string]float64, len(raw.Words))}
	for word, polarity := range raw.Words {
		if polarity < -1 || polarity > 1 {
			return nil, fmt.Errorf("polarity for %q out of range: %v", word, polarity)
		}
		lex.Words[strings.ToLower(word)] = polarity
	}

	return lex, nil
}
