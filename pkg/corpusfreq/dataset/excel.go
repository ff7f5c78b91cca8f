package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/internalerr"
)

// metadataSheets are skipped when no sheet is named explicitly
var metadataSheets = map[string]bool{
	"info":     true,
	"metadata": true,
	"about":    true,
	"readme":   true,
	"notes":    true,
}

func readExcel(_ context.Context, path string, opts Options) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet, err := pickSheet(f.GetSheetList(), opts.Sheet)
	if err != nil {
		return nil, fmt.Errorf("workbook %s: %w", path, err)
	}
	opts.Logger.Debug("reading sheet", "path", path, "sheet", sheet)

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty: %w", sheet, internalerr.ErrMissingColumn)
	}

	// Spreadsheet rows are 1-based and the header occupies row 1.
	return recordsFromRows(rows[0], rows[1:], opts, 2)
}

func pickSheet(sheets []string, want string) (string, error) {
	if len(sheets) == 0 {
		return "", fmt.Errorf("no sheets: %w", internalerr.ErrNotFound)
	}
	if want != "" {
		for _, s := range sheets {
			if s == want {
				return s, nil
			}
		}
		return "", fmt.Errorf("sheet %q: %w", want, internalerr.ErrNotFound)
	}
	for _, s := range sheets {
		if !metadataSheets[strings.ToLower(s)] {
			return s, nil
		}
	}
	return sheets[0], nil
}
