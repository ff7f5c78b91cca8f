package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/internalerr"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Input != "corpus/development.xlsx" {
		t.Errorf("Input = %q", cfg.Input)
	}
	if cfg.Category != "Fake" {
		t.Errorf("Category = %q, want Fake", cfg.Category)
	}
	if cfg.SampleSize != 10 || cfg.Seed != 42 {
		t.Errorf("Sample = %d/%d, want 10/42", cfg.SampleSize, cfg.Seed)
	}
	if cfg.NGramSize != 4 || cfg.TopWords != 10 || cfg.TopNGrams != 10 {
		t.Errorf("Frequency defaults = %d/%d/%d, want 4/10/10", cfg.NGramSize, cfg.TopWords, cfg.TopNGrams)
	}
	if cfg.Language != "spanish" {
		t.Errorf("Language = %q, want spanish", cfg.Language)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpusfreq.yaml")
	content := "input: data.csv\ncategory: \"True\"\nngram_size: 2\nseed: 7\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Input != "data.csv" || cfg.Category != "True" || cfg.NGramSize != 2 || cfg.Seed != 7 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.TopWords != 10 {
		t.Errorf("Unset fields should keep defaults, TopWords = %d", cfg.TopWords)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpusfreq.toml")
	content := "input = \"corpus.db\"\nsql_table = \"news\"\ntop_ngrams = 5\nstrip_markup = true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Input != "corpus.db" || cfg.SQLTable != "news" || cfg.TopNGrams != 5 || !cfg.StripMarkup {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Category != "Fake" {
		t.Errorf("Unset fields should keep defaults, Category = %q", cfg.Category)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("/nonexistent/corpusfreq.yaml"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	dir := t.TempDir()

	ini := filepath.Join(dir, "corpusfreq.ini")
	os.WriteFile(ini, []byte("input=x"), 0o644)
	if _, err := Load(ini); !errors.Is(err, internalerr.ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("input: {unclosed\n"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("Should error on malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"no input", func(c *Config) { c.Input = " " }, "input is required"},
		{"no category", func(c *Config) { c.Category = "" }, "category is required"},
		{"zero sample", func(c *Config) { c.SampleSize = 0 }, "sample_size"},
		{"zero ngram", func(c *Config) { c.NGramSize = 0 }, "ngram_size"},
		{"negative top words", func(c *Config) { c.TopWords = -1 }, "top_words"},
		{"zero top ngrams", func(c *Config) { c.TopNGrams = 0 }, "top_ngrams"},
		{"no stopwords", func(c *Config) { c.Language = ""; c.Stopwords = "" }, "stopwords or language"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Fatalf("Expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.SampleSize = 0
	cfg.NGramSize = 0

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "sample_size") || !strings.Contains(err.Error(), "ngram_size") {
		t.Errorf("Expected both problems reported, got %v", err)
	}
}
