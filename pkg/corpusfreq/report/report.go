package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/freq"
)

// Builder assembles frequency reports with sortable unique IDs
type Builder struct {
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Report is the outcome of one analysis run
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Source      string    `json:"source"`
	Category    string    `json:"category"`
	SampleSize  int       `json:"sample_size"`
	Seed        uint64    `json:"seed"`
	SampledRows []int     `json:"sampled_rows"`
	NGramSize   int       `json:"ngram_size"`
	Words       []Item    `json:"words"`
	NGrams      []Item    `json:"ngrams"`
}

// Item is one ranked word or n-gram
type Item struct {
	Label  string   `json:"label"`
	Tokens []string `json:"tokens"`
	Count  int      `json:"count"`
}

// Params describes the run a report belongs to
type Params struct {
	Source      string
	Category    string
	SampleSize  int
	Seed        uint64
	SampledRows []int
	NGramSize   int
}

// Build creates a report from ranked word and n-gram entries
func (b *Builder) Build(p Params, words, ngrams []freq.Entry) Report {
	now := b.now().UTC()
	return Report{
		ID:          ulid.MustNew(ulid.Timestamp(now), b.entropy).String(),
		GeneratedAt: now,
		Source:      p.Source,
		Category:    p.Category,
		SampleSize:  p.SampleSize,
		Seed:        p.Seed,
		SampledRows: p.SampledRows,
		NGramSize:   p.NGramSize,
		Words:       items(words),
		NGrams:      items(ngrams),
	}
}

// Entries converts report items back into ranked entries
func Entries(items []Item) []freq.Entry {
	out := make([]freq.Entry, len(items))
	for i, it := range items {
		out[i] = freq.Entry{Tokens: it.Tokens, Count: it.Count}
	}
	return out
}

func items(entries []freq.Entry) []Item {
	out := make([]Item, len(entries))
	for i, e := range entries {
		out[i] = Item{Label: e.Label(), Tokens: e.Tokens, Count: e.Count}
	}
	return out
}
