package ingest

import (
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/normalize"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/stoplist"
)

// Tokenizer splits normalized text into tokens, removing stopwords
type Tokenizer struct {
	stopwords *stoplist.Stoplist
}

// NewTokenizer creates a tokenizer over the given stoplist. A nil stoplist
// removes nothing.
func NewTokenizer(stopwords *stoplist.Stoplist) *Tokenizer {
	return &Tokenizer{stopwords: stopwords}
}

// Tokenize splits text on whitespace and drops stopwords. The text is
// expected to be normalized already; tokens are compared as-is.
func (t *Tokenizer) Tokenize(text string) []string {
	fields := normalize.Fields(text)
	tokens := fields[:0]
	for _, word := range fields {
		if t.stopwords.Contains(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
