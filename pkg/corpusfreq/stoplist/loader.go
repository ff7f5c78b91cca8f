package stoplist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/internalerr"
)

// yamlStoplist mirrors the `terms:` stoplist file format
type yamlStoplist struct {
	Terms []string `yaml:"terms"`
}

// Load reads a stoplist file. YAML files (.yaml, .yml) use a `terms:` list;
// anything else is read as an NLTK word list: one word per line, blank lines
// and `#` comments ignored.
func Load(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stoplist %s: %w", path, internalerr.ErrNotFound)
		}
		return nil, fmt.Errorf("read stoplist %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var sl yamlStoplist
		if err := yaml.Unmarshal(data, &sl); err != nil {
			return nil, fmt.Errorf("parse stoplist %s: %w", path, err)
		}
		return New(sl.Terms), nil
	default:
		return New(parseWordList(data)), nil
	}
}

// LoadLanguage loads the stopword list for lang from an NLTK data directory
// (<dataDir>/corpora/stopwords/<lang>).
func LoadLanguage(dataDir, lang string) (*Stoplist, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return nil, fmt.Errorf("stoplist language: %w", internalerr.ErrInvalidInput)
	}
	return Load(filepath.Join(dataDir, "corpora", "stopwords", lang))
}

func parseWordList(data []byte) []string {
	var words []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}
