// Package sample draws reproducible fixed-size samples of records.
package sample

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/dataset"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/internalerr"
)

// Defaults used by the analysis pipeline
const (
	DefaultSize = 10
	DefaultSeed = 42
)

// Sampler draws Size records using a generator seeded with Seed. Every call
// builds its own generator, so identical input always yields the same sample.
type Sampler struct {
	Size int
	Seed uint64
}

// New returns a sampler with the default size and seed
func New() Sampler {
	return Sampler{Size: DefaultSize, Seed: DefaultSeed}
}

// Draw picks exactly s.Size records without replacement, returned in draw
// order.
func (s Sampler) Draw(records []dataset.Record) ([]dataset.Record, error) {
	if s.Size < 1 {
		return nil, fmt.Errorf("sample size %d: %w", s.Size, internalerr.ErrInvalidInput)
	}
	if len(records) < s.Size {
		return nil, fmt.Errorf("need %d records, have %d: %w", s.Size, len(records), internalerr.ErrInsufficientRows)
	}

	rng := rand.New(rand.NewPCG(s.Seed, s.Seed))

	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	// Partial Fisher-Yates: only the first Size positions are settled.
	for i := 0; i < s.Size; i++ {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	out := make([]dataset.Record, s.Size)
	for i := range out {
		out[i] = records[idx[i]]
	}
	return out, nil
}

// Select filters the table by category and draws a sample from the matches.
func (s Sampler) Select(table *dataset.Table, category string) ([]dataset.Record, error) {
	matches := table.Filter(category)
	drawn, err := s.Draw(matches)
	if err != nil {
		return nil, fmt.Errorf("sample category %q: %w", category, err)
	}
	return drawn, nil
}

// JoinText concatenates the text of records that have one, separated by a
// single space. Records with missing text are skipped.
func JoinText(records []dataset.Record) string {
	parts := make([]string, 0, len(records))
	for _, r := range records {
		if !r.HasText {
			continue
		}
		parts = append(parts, r.Text)
	}
	return strings.Join(parts, " ")
}
