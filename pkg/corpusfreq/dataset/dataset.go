// Package dataset loads labeled text records from spreadsheets, delimited
// text, JSONL and SQLite files into an in-memory table.
package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/internalerr"
)

// Default column and table names
const (
	DefaultCategoryColumn = "Category"
	DefaultTextColumn     = "Text"
	DefaultSQLTable       = "records"
)

// Record is one row of input data. Text is only meaningful when HasText is
// true; a missing or empty cell leaves HasText false.
type Record struct {
	Row      int    `json:"row"`
	Category string `json:"category"`
	Text     string `json:"text,omitempty"`
	HasText  bool   `json:"has_text"`
}

// Table holds the loaded records in source order
type Table struct {
	Path           string
	CategoryColumn string
	TextColumn     string
	Records        []Record
}

// CategoryCount is the number of rows carrying a category label
type CategoryCount struct {
	Category string `json:"category"`
	Rows     int    `json:"rows"`
}

// Options controls how an input file is read
type Options struct {
	Sheet          string // xlsx: sheet name, empty selects the first data sheet
	SQLTable       string // sqlite: table or view to read
	CategoryColumn string
	TextColumn     string
	StripMarkup    bool // reduce HTML text cells to their text content
	Logger         *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.CategoryColumn == "" {
		o.CategoryColumn = DefaultCategoryColumn
	}
	if o.TextColumn == "" {
		o.TextColumn = DefaultTextColumn
	}
	if o.SQLTable == "" {
		o.SQLTable = DefaultSQLTable
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Load reads path into a Table, choosing the reader from the file extension.
func Load(ctx context.Context, path string, opts Options) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	var read func(context.Context, string, Options) ([]Record, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		read = readExcel
	case ".csv":
		read = readCSV(',')
	case ".tsv":
		read = readCSV('\t')
	case ".jsonl", ".ndjson":
		read = readJSONL
	case ".db", ".sqlite", ".sqlite3":
		read = readSQLite
	default:
		return nil, fmt.Errorf("input %s: %w", path, internalerr.ErrUnsupportedFormat)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input %s: %w", path, err)
	}

	records, err := read(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	if opts.StripMarkup {
		for i := range records {
			if !records[i].HasText {
				continue
			}
			records[i].Text = stripMarkup(records[i].Text)
			records[i].HasText = records[i].Text != ""
		}
	}

	opts.Logger.Debug("dataset loaded", "path", path, "records", len(records))

	return &Table{
		Path:           path,
		CategoryColumn: opts.CategoryColumn,
		TextColumn:     opts.TextColumn,
		Records:        records,
	}, nil
}

// Len returns the number of records
func (t *Table) Len() int {
	return len(t.Records)
}

// Filter returns the records whose category equals the label exactly, in
// table order.
func (t *Table) Filter(category string) []Record {
	var out []Record
	for _, r := range t.Records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Categories returns row counts per category in first-seen order
func (t *Table) Categories() []CategoryCount {
	index := make(map[string]int)
	var out []CategoryCount
	for _, r := range t.Records {
		i, ok := index[r.Category]
		if !ok {
			i = len(out)
			index[r.Category] = i
			out = append(out, CategoryCount{Category: r.Category})
		}
		out[i].Rows++
	}
	return out
}

// recordsFromRows converts header + data rows into records. firstRow is the
// source row number of rows[0].
func recordsFromRows(header []string, rows [][]string, opts Options, firstRow int) ([]Record, error) {
	catIdx, err := columnIndex(header, opts.CategoryColumn)
	if err != nil {
		return nil, err
	}
	textIdx, err := columnIndex(header, opts.TextColumn)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}
		text := cell(row, textIdx)
		records = append(records, Record{
			Row:      firstRow + i,
			Category: cell(row, catIdx),
			Text:     text,
			HasText:  text != "",
		})
	}
	return records, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("column %q: %w", name, internalerr.ErrMissingColumn)
}

// cell returns row[i], or "" for rows shorter than the header
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
