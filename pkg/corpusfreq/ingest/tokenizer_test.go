package ingest

import (
	"strings"
	"testing"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/stoplist"
)

func TestTokenizerBasic(t *testing.T) {
	tokenizer := NewTokenizer(stoplist.New([]string{"el", "la", "de", "y"}))

	tokens := tokenizer.Tokenize("el gato de la casa y el perro")

	expected := []string{"gato", "casa", "perro"}
	if strings.Join(tokens, " ") != strings.Join(expected, " ") {
		t.Errorf("Tokenize = %v, want %v", tokens, expected)
	}
}

func TestTokenizerWhitespace(t *testing.T) {
	tokenizer := NewTokenizer(nil)

	tokens := tokenizer.Tokenize("  uno\tdos\n\ntres   ")
	if len(tokens) != 3 {
		t.Errorf("Expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
}

func TestTokenizerInformationSeparators(t *testing.T) {
	tokenizer := NewTokenizer(stoplist.New([]string{"el"}))

	tokens := tokenizer.Tokenize("gato\x1fel\x1eperro")
	if strings.Join(tokens, " ") != "gato perro" {
		t.Errorf("Tokenize = %q, want [gato perro]", tokens)
	}
}

func TestTokenizerOnlyStopwords(t *testing.T) {
	tokenizer := NewTokenizer(stoplist.New([]string{"de", "la", "que"}))

	if tokens := tokenizer.Tokenize("de la que"); len(tokens) != 0 {
		t.Errorf("Only stopwords should produce 0 tokens, got %v", tokens)
	}
}

func TestTokenizerEmpty(t *testing.T) {
	tokenizer := NewTokenizer(stoplist.New(nil))

	if tokens := tokenizer.Tokenize(""); len(tokens) != 0 {
		t.Errorf("Empty text should produce 0 tokens, got %v", tokens)
	}
}

func TestTokenizerComparesVerbatim(t *testing.T) {
	// Accented stopwords do not match their accent-stripped forms.
	tokenizer := NewTokenizer(stoplist.New([]string{"más"}))

	tokens := tokenizer.Tokenize("mas noticias")
	if len(tokens) != 2 || tokens[0] != "mas" {
		t.Errorf("Accent-stripped token should survive an accented stopword, got %v", tokens)
	}
}
