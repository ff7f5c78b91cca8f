package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/dataset"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/freq"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/internalerr"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/sample"
)

// Config describes one analysis run
type Config struct {
	Input          string `yaml:"input" toml:"input"`
	Sheet          string `yaml:"sheet" toml:"sheet"`
	SQLTable       string `yaml:"sql_table" toml:"sql_table"`
	CategoryColumn string `yaml:"category_column" toml:"category_column"`
	TextColumn     string `yaml:"text_column" toml:"text_column"`
	StripMarkup    bool   `yaml:"strip_markup" toml:"strip_markup"`

	Category   string `yaml:"category" toml:"category"`
	SampleSize int    `yaml:"sample_size" toml:"sample_size"`
	Seed       uint64 `yaml:"seed" toml:"seed"`
	NGramSize  int    `yaml:"ngram_size" toml:"ngram_size"`
	TopWords   int    `yaml:"top_words" toml:"top_words"`
	TopNGrams  int    `yaml:"top_ngrams" toml:"top_ngrams"`

	// Stopwords is an explicit stoplist file; when empty the list for
	// Language is read from the NLTK layout under StopwordsDir.
	Stopwords          string `yaml:"stopwords" toml:"stopwords"`
	StopwordsDir       string `yaml:"stopwords_dir" toml:"stopwords_dir"`
	Language           string `yaml:"language" toml:"language"`
	NormalizeStopwords bool   `yaml:"normalize_stopwords" toml:"normalize_stopwords"`

	LogLevel  string `yaml:"log_level" toml:"log_level"`
	LogFormat string `yaml:"log_format" toml:"log_format"`
}

// Default returns the stock configuration: the Spanish development corpus,
// category "Fake", 10 sampled rows with seed 42, top 10 words and 4-grams.
func Default() Config {
	return Config{
		Input:          "corpus/development.xlsx",
		CategoryColumn: dataset.DefaultCategoryColumn,
		TextColumn:     dataset.DefaultTextColumn,
		Category:       "Fake",
		SampleSize:     sample.DefaultSize,
		Seed:           sample.DefaultSeed,
		NGramSize:      freq.DefaultNGramSize,
		TopWords:       freq.DefaultTopWords,
		TopNGrams:      freq.DefaultTopNGrams,
		StopwordsDir:   filepath.Join("data", "nltk_data"),
		Language:       "spanish",
		LogLevel:       "info",
		LogFormat:      "console",
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file over the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config %s: %w", path, internalerr.ErrNotFound)
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config %s: %w", path, internalerr.ErrUnsupportedFormat)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports every invalid setting at once
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Input) == "" {
		problems = append(problems, "input is required")
	}
	if c.Category == "" {
		problems = append(problems, "category is required")
	}
	if c.SampleSize < 1 {
		problems = append(problems, fmt.Sprintf("sample_size must be positive, got %d", c.SampleSize))
	}
	if c.NGramSize < 1 {
		problems = append(problems, fmt.Sprintf("ngram_size must be positive, got %d", c.NGramSize))
	}
	if c.TopWords < 1 {
		problems = append(problems, fmt.Sprintf("top_words must be positive, got %d", c.TopWords))
	}
	if c.TopNGrams < 1 {
		problems = append(problems, fmt.Sprintf("top_ngrams must be positive, got %d", c.TopNGrams))
	}
	if c.Stopwords == "" && strings.TrimSpace(c.Language) == "" {
		problems = append(problems, "either stopwords or language is required")
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("log_format must be console or json, got %q", c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", internalerr.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// DatasetOptions maps the input settings onto loader options
func (c Config) DatasetOptions() dataset.Options {
	return dataset.Options{
		Sheet:          c.Sheet,
		SQLTable:       c.SQLTable,
		CategoryColumn: c.CategoryColumn,
		TextColumn:     c.TextColumn,
		StripMarkup:    c.StripMarkup,
	}
}
