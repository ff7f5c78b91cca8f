package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/internalerr"
)

// readJSONL loads one JSON object per line. Malformed lines are skipped with
// a warning.
func readJSONL(_ context.Context, path string, opts Options) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var records []Record
	sawCategory, sawText := false, false
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			opts.Logger.Warn("skipping malformed JSON", "path", path, "line", i+1, "error", err)
			continue
		}

		cat, okCat := obj[opts.CategoryColumn]
		text, okText := obj[opts.TextColumn]
		sawCategory = sawCategory || okCat
		sawText = sawText || okText

		rec := Record{Row: i + 1, Category: jsonString(cat)}
		if s := jsonString(text); s != "" {
			rec.Text = s
			rec.HasText = true
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no valid records found in %s: %w", path, internalerr.ErrInvalidInput)
	}
	if !sawCategory {
		return nil, fmt.Errorf("column %q: %w", opts.CategoryColumn, internalerr.ErrMissingColumn)
	}
	if !sawText {
		return nil, fmt.Errorf("column %q: %w", opts.TextColumn, internalerr.ErrMissingColumn)
	}

	return records, nil
}

func jsonString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
