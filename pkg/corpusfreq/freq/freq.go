package freq

import (
	"fmt"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/internalerr"
)

// Defaults for the frequency reports
const (
	DefaultTopWords  = 10
	DefaultNGramSize = 4
	DefaultTopNGrams = 10
)

// Words counts tokens and returns the k most frequent
func Words(tokens []string, k int) []Entry {
	c := NewCounter()
	for _, tok := range tokens {
		c.Add(tok)
	}
	return c.MostCommon(k)
}

// NGrams counts every contiguous run of n tokens and returns the k most
// frequent. Fewer than n tokens yields an empty result.
func NGrams(tokens []string, n, k int) ([]Entry, error) {
	if n < 1 {
		return nil, fmt.Errorf("n-gram size %d: %w", n, internalerr.ErrInvalidInput)
	}

	c := NewCounter()
	for i := 0; i+n <= len(tokens); i++ {
		c.Add(tokens[i : i+n]...)
	}
	return c.MostCommon(k), nil
}
