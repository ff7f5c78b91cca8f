package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/dataset"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/normalize"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/stoplist"
)

// Loader loads the stoplist and input table a configuration points at
type Loader struct {
	Config Config
	Logger *slog.Logger
}

// Components holds all loaded inputs
type Components struct {
	Stoplist *stoplist.Stoplist
	Table    *dataset.Table
}

// Load validates the configuration, then reads the stoplist and the input.
// The stoplist is read first so a missing resource fails before any data
// is touched.
func (l *Loader) Load(ctx context.Context) (*Components, error) {
	if err := l.Config.Validate(); err != nil {
		return nil, err
	}
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	stops, err := l.LoadStoplist()
	if err != nil {
		return nil, fmt.Errorf("load stoplist: %w", err)
	}
	logger.Debug("stoplist loaded", "words", stops.Len())

	opts := l.Config.DatasetOptions()
	opts.Logger = logger
	table, err := dataset.Load(ctx, l.Config.Input, opts)
	if err != nil {
		return nil, fmt.Errorf("load input: %w", err)
	}

	return &Components{Stoplist: stops, Table: table}, nil
}

// LoadStoplist reads the configured stoplist file or language list
func (l *Loader) LoadStoplist() (*stoplist.Stoplist, error) {
	var (
		stops *stoplist.Stoplist
		err   error
	)
	if l.Config.Stopwords != "" {
		stops, err = stoplist.Load(l.Config.Stopwords)
	} else {
		stops, err = stoplist.LoadLanguage(l.Config.StopwordsDir, l.Config.Language)
	}
	if err != nil {
		return nil, err
	}

	if l.Config.NormalizeStopwords {
		stops = stops.Map(normalize.Text)
	}
	return stops, nil
}
