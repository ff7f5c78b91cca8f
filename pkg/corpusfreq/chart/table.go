package chart

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Align is the horizontal alignment of a table column
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

func (a Align) pretty() text.Align {
	if a == AlignRight {
		return text.AlignRight
	}
	return text.AlignLeft
}

// newWriter returns a table writer in the style shared by charts and plain
// tables. Headers keep their case.
func newWriter() table.Writer {
	tw := table.NewWriter()
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	return tw
}

// Table renders rows under headers. Short rows are padded with empty cells;
// columns without an alignment are left-aligned.
func Table(headers []string, rows [][]string, aligns []Align) string {
	if len(headers) == 0 {
		return ""
	}

	tw := newWriter()
	tw.AppendHeader(toRow(headers, len(headers)))
	for _, row := range rows {
		tw.AppendRow(toRow(row, len(headers)))
	}

	configs := make([]table.ColumnConfig, len(headers))
	for i := range headers {
		align := AlignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		configs[i] = table.ColumnConfig{Number: i + 1, Align: align.pretty(), AlignHeader: text.AlignLeft}
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func toRow(cells []string, columns int) table.Row {
	row := make(table.Row, columns)
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = ""
		}
	}
	return row
}
