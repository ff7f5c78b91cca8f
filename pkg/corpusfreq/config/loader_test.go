package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/internalerr"
)

func writeFixtures(t *testing.T) (dir, input string) {
	t.Helper()
	dir = t.TempDir()

	stopDir := filepath.Join(dir, "nltk_data", "corpora", "stopwords")
	if err := os.MkdirAll(stopDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(stopDir, "spanish"), []byte("de\nla\nmás\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	input = filepath.Join(dir, "corpus.csv")
	if err := os.WriteFile(input, []byte("Category,Text\nFake,hola\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, input
}

func TestLoaderLoad(t *testing.T) {
	dir, input := writeFixtures(t)

	cfg := Default()
	cfg.Input = input
	cfg.StopwordsDir = filepath.Join(dir, "nltk_data")

	loader := Loader{Config: cfg}
	comp, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if comp.Stoplist.Len() != 3 {
		t.Errorf("Expected 3 stopwords, got %d", comp.Stoplist.Len())
	}
	if comp.Table.Len() != 1 {
		t.Errorf("Expected 1 record, got %d", comp.Table.Len())
	}
}

func TestLoaderExplicitStoplist(t *testing.T) {
	dir, input := writeFixtures(t)
	slPath := filepath.Join(dir, "stoplist.yaml")
	os.WriteFile(slPath, []byte("terms:\n  - hola\n"), 0o644)

	cfg := Default()
	cfg.Input = input
	cfg.Stopwords = slPath

	comp, err := (&Loader{Config: cfg}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !comp.Stoplist.Contains("hola") || comp.Stoplist.Len() != 1 {
		t.Errorf("Expected explicit stoplist, got %v", comp.Stoplist.Words())
	}
}

func TestLoaderNormalizeStopwords(t *testing.T) {
	dir, input := writeFixtures(t)

	cfg := Default()
	cfg.Input = input
	cfg.StopwordsDir = filepath.Join(dir, "nltk_data")
	cfg.NormalizeStopwords = true

	stops, err := (&Loader{Config: cfg}).LoadStoplist()
	if err != nil {
		t.Fatal(err)
	}
	if !stops.Contains("mas") || stops.Contains("más") {
		t.Errorf("Stopwords should be normalized: %v", stops.Words())
	}
}

func TestLoaderMissingStoplist(t *testing.T) {
	_, input := writeFixtures(t)

	cfg := Default()
	cfg.Input = input
	cfg.StopwordsDir = "/nonexistent/nltk_data"

	_, err := (&Loader{Config: cfg}).Load(context.Background())
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing stoplist, got %v", err)
	}
}

func TestLoaderMissingInput(t *testing.T) {
	dir, _ := writeFixtures(t)

	cfg := Default()
	cfg.Input = filepath.Join(dir, "missing.xlsx")
	cfg.StopwordsDir = filepath.Join(dir, "nltk_data")

	_, err := (&Loader{Config: cfg}).Load(context.Background())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoaderInvalidConfig(t *testing.T) {
	cfg := Default()
	cfg.SampleSize = 0

	_, err := (&Loader{Config: cfg}).Load(context.Background())
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
