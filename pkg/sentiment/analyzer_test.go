package sentiment

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want Label
	}{
		{"I love this", Positive},
		{"what a wonderful day", Positive},
		{"", Neutral},
		{"   ", Neutral},
		{"the film starts at noon", Neutral},
		{"I feel terrible", Negative},
		{"so sad and lonely", Negative},
		{"not good", Negative},
		{"not bad", Positive},
		{"I am tired but happy", Positive},
		{"I DON’T feel good", Negative},
		{"I DON’T\n\tfeel  good", Negative},
	}

	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s (score %v)", tt.text, got, tt.want, Default().Score(tt.text))
		}
	}
}

func TestClassifyMoodWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want Label
	}{
		{"I feel lazy", Negative},
		{"feeling weird", Negative},
		{"this is crazy", Negative},
		{"something interesting", Positive},
		{"a scary night", Negative},
		{"I am serious", Negative},
		// Supplement words
		{"dark mood", Negative},
		{"kind of grumpy", Negative},
		{"cozy evening", Positive},
		{"afraid", Negative},
	}

	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s (score %v)", tt.text, got, tt.want, Default().Score(tt.text))
		}
	}
}

func TestFromScoreSign(t *testing.T) {
	t.Parallel()

	if FromScore(0.0001) != Positive {
		t.Fatal("tiny positive score must be positive")
	}
	if FromScore(0) != Neutral {
		t.Fatal("zero score must be neutral")
	}
	if FromScore(-0.0001) != Negative {
		t.Fatal("tiny negative score must be negative")
	}
}

func TestScoreModifiers(t *testing.T) {
	t.Parallel()

	a := Default()

	if a.Score("very good") <= a.Score("good") {
		t.Fatal("booster should raise the score")
	}
	if a.Score("not good") >= 0 {
		t.Fatal("negation should flip the score")
	}
	if a.Score("good!") <= a.Score("good") {
		t.Fatal("exclamation should add emphasis")
	}
}

func TestScoreRange(t *testing.T) {
	t.Parallel()

	a := Default()
	for _, text := range []string{
		"extremely absolutely awesome perfect best!!!!!!",
		"incredibly extremely terrible horrible worst!!!",
		"",
		"meh",
	} {
		if s := a.Score(text); s < -1 || s > 1 {
			t.Fatalf("score for %q out of range: %v", text, s)
		}
	}
}

func TestLoadLexicon(t *testing.T) {
	t.Parallel()

	doc := `
words:
  Shiny: 0.9
  love: -1.0
`
	lex, err := LoadLexicon(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadLexicon returned error: %v", err)
	}
	if _, ok := lex.Words["shiny"]; !ok {
		t.Fatal("expected keys to be lower-cased")
	}

	a := NewAnalyzer(lex)
	if got := a.Classify("so shiny"); got != Positive {
		t.Fatalf("expected positive, got %s", got)
	}
	if got := a.Classify("NOT shiny"); got != Negative {
		t.Fatalf("expected negative, got %s", got)
	}
	if got := a.Classify("I love this"); got != Positive {
		t.Fatalf("supplement must not override a VADER word, got %s", got)
	}
}

func TestNewAnalyzerWithoutSupplement(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer(nil)
	if got := a.Classify("I love this"); got != Positive {
		t.Fatalf("expected positive, got %s", got)
	}
	if got := a.Classify("dark mood"); got != Neutral {
		t.Fatalf("expected supplement-only word to be unscored, got %s", got)
	}
}

func TestLoadLexiconRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	if _, err := LoadLexicon(strings.NewReader("words:\n  huge: 3\n")); err == nil {
		t.Fatal("expected error for polarity outside [-1, 1]")
	}
}
