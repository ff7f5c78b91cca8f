package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/internalerr"
)

// readSQLite reads the category and text columns of opts.SQLTable. The
// database is opened read-only.
func readSQLite(ctx context.Context, path string, opts Options) ([]Record, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	defer db.Close()

	var name string
	err = db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type IN ('table', 'view') AND name = ?`,
		opts.SQLTable,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("table %q: %w", opts.SQLTable, internalerr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup table %q: %w", opts.SQLTable, err)
	}

	if err := checkColumns(ctx, db, opts); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s, %s FROM %s",
		quoteIdent(opts.CategoryColumn), quoteIdent(opts.TextColumn), quoteIdent(opts.SQLTable))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", opts.SQLTable, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var cat, text sql.NullString
		if err := rows.Scan(&cat, &text); err != nil {
			return nil, fmt.Errorf("scan %s: %w", opts.SQLTable, err)
		}
		records = append(records, Record{
			Row:      len(records) + 1,
			Category: cat.String,
			Text:     text.String,
			HasText:  text.Valid && text.String != "",
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", opts.SQLTable, err)
	}

	return records, nil
}

func checkColumns(ctx context.Context, db *sql.DB, opts Options) error {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT 0", quoteIdent(opts.SQLTable)))
	if err != nil {
		return fmt.Errorf("inspect %s: %w", opts.SQLTable, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("inspect %s: %w", opts.SQLTable, err)
	}
	for _, want := range []string{opts.CategoryColumn, opts.TextColumn} {
		if _, err := columnIndex(cols, want); err != nil {
			return err
		}
	}
	return nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
