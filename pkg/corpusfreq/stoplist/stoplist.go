package stoplist

import (
	"sort"
	"strings"
)

// Stoplist is a read-only set of stopwords. Build one explicitly and hand it
// to the tokenizer; it is never mutated after construction.
type Stoplist struct {
	stops map[string]struct{}
}

// New creates a stoplist from the given words. Entries are lowercased and
// trimmed; empty entries are ignored.
func New(words []string) *Stoplist {
	stops := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		stops[w] = struct{}{}
	}
	return &Stoplist{stops: stops}
}

// Contains checks if a token is a stopword
func (s *Stoplist) Contains(token string) bool {
	if s == nil {
		return false
	}
	_, ok := s.stops[token]
	return ok
}

// Len returns the number of distinct stopwords
func (s *Stoplist) Len() int {
	if s == nil {
		return 0
	}
	return len(s.stops)
}

// Words returns all stopwords in sorted order
func (s *Stoplist) Words() []string {
	if s == nil {
		return nil
	}
	result := make([]string, 0, len(s.stops))
	for w := range s.stops {
		result = append(result, w)
	}
	sort.Strings(result)
	return result
}

// Map returns a new stoplist with fn applied to every entry. Used to run the
// entries through the same normalizer as the text they are matched against.
func (s *Stoplist) Map(fn func(string) string) *Stoplist {
	words := s.Words()
	for i, w := range words {
		words[i] = fn(w)
	}
	return New(words)
}
