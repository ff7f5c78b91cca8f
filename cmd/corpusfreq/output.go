package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq/chart"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/dataset"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/freq"
)

const sampleTextWidth = 80

type entryJSON struct {
	Label  string   `json:"label"`
	Tokens []string `json:"tokens"`
	Count  int      `json:"count"`
}

func (c *commandContext) writeEntries(bc chart.BarChart, entries []freq.Entry) error {
	if c.format == formatJSON {
		out := make([]entryJSON, len(entries))
		for i, e := range entries {
			out[i] = entryJSON{Label: e.Label(), Tokens: e.Tokens, Count: e.Count}
		}
		return writeJSON(c.stdout, out)
	}
	return chart.Render(c.stdout, bc, chart.RenderOptions{})
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeCategories(w io.Writer, cats []dataset.CategoryCount) error {
	rows := make([][]string, len(cats))
	for i, c := range cats {
		rows[i] = []string{c.Category, strconv.Itoa(c.Rows)}
	}
	_, err := fmt.Fprintln(w, chart.Table([]string{"Category", "Rows"}, rows, []chart.Align{chart.AlignLeft, chart.AlignRight}))
	return err
}

func writeSample(w io.Writer, records []dataset.Record) error {
	rows := make([][]string, len(records))
	for i, r := range records {
		body := "(missing)"
		if r.HasText {
			body = text.Snip(strings.Join(strings.Fields(r.Text), " "), sampleTextWidth, "…")
		}
		rows[i] = []string{strconv.Itoa(r.Row), r.Category, body}
	}
	_, err := fmt.Fprintln(w, chart.Table([]string{"Row", "Category", "Text"}, rows, []chart.Align{chart.AlignRight, chart.AlignLeft, chart.AlignLeft}))
	return err
}
