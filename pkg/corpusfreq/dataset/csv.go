package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/internalerr"
)

func readCSV(comma rune) func(context.Context, string, Options) ([]Record, error) {
	return func(_ context.Context, path string, opts Options) ([]Record, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		reader := csv.NewReader(f)
		reader.Comma = comma
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		rows, err := reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("%s is empty: %w", path, internalerr.ErrMissingColumn)
		}

		header := rows[0]
		if len(header) > 0 {
			header[0] = strings.TrimPrefix(header[0], "\ufeff")
		}
		return recordsFromRows(header, rows[1:], opts, 2)
	}
}
