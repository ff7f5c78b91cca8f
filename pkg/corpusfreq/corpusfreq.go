// Package corpusfreq samples labeled text by category and reports the most
// frequent words and n-grams in the sample.
package corpusfreq

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/config"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/dataset"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/freq"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/ingest"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/report"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/sample"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/stoplist"
)

// Analyzer is the main frequency analysis facade
type Analyzer struct {
	pipeline *ingest.Pipeline
	logger   *slog.Logger
}

// Options configures an Analyzer
type Options struct {
	Stoplist *stoplist.Stoplist
	Sampler  sample.Sampler // zero value selects sample.New()
	Logger   *slog.Logger
}

// New creates an Analyzer with the given dependencies
func New(opts Options) *Analyzer {
	sampler := opts.Sampler
	if sampler == (sample.Sampler{}) {
		sampler = sample.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		pipeline: ingest.NewPipeline(sampler, ingest.NewTokenizer(opts.Stoplist)),
		logger:   logger,
	}
}

// Prepare samples the category and tokenizes the sample
func (a *Analyzer) Prepare(table *dataset.Table, category string) (ingest.Prepared, error) {
	prepared, err := a.pipeline.Process(table, category)
	if err != nil {
		return ingest.Prepared{}, err
	}
	a.logger.Debug("sample prepared",
		"category", category,
		"records", len(prepared.Records),
		"tokens", len(prepared.Tokens),
	)
	return prepared, nil
}

// TopWords returns the numWords most frequent words in the category sample
func (a *Analyzer) TopWords(table *dataset.Table, category string, numWords int) ([]freq.Entry, error) {
	prepared, err := a.Prepare(table, category)
	if err != nil {
		return nil, err
	}
	return freq.Words(prepared.Tokens, numWords), nil
}

// TopNGrams returns the numTop most frequent n-grams in the category sample.
// N-grams are formed after stopword removal.
func (a *Analyzer) TopNGrams(table *dataset.Table, category string, n, numTop int) ([]freq.Entry, error) {
	prepared, err := a.Prepare(table, category)
	if err != nil {
		return nil, err
	}
	return freq.NGrams(prepared.Tokens, n, numTop)
}

// Run loads everything cfg points at and computes both rankings over the
// same sample.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger) (report.Report, error) {
	if logger == nil {
		logger = slog.Default()
	}

	loader := config.Loader{Config: cfg, Logger: logger}
	comp, err := loader.Load(ctx)
	if err != nil {
		return report.Report{}, err
	}

	analyzer := New(Options{
		Stoplist: comp.Stoplist,
		Sampler:  sample.Sampler{Size: cfg.SampleSize, Seed: cfg.Seed},
		Logger:   logger,
	})

	prepared, err := analyzer.Prepare(comp.Table, cfg.Category)
	if err != nil {
		return report.Report{}, err
	}

	words := freq.Words(prepared.Tokens, cfg.TopWords)
	ngrams, err := freq.NGrams(prepared.Tokens, cfg.NGramSize, cfg.TopNGrams)
	if err != nil {
		return report.Report{}, fmt.Errorf("count n-grams: %w", err)
	}

	rows := make([]int, len(prepared.Records))
	for i, r := range prepared.Records {
		rows[i] = r.Row
	}

	logger.Info("analysis complete",
		"input", cfg.Input,
		"category", cfg.Category,
		"words", len(words),
		"ngrams", len(ngrams),
	)

	return report.New().Build(report.Params{
		Source:      cfg.Input,
		Category:    cfg.Category,
		SampleSize:  cfg.SampleSize,
		Seed:        cfg.Seed,
		SampledRows: rows,
		NGramSize:   cfg.NGramSize,
	}, words, ngrams), nil
}
