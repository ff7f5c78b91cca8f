package chart

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// ColorMode selects when bars are coloured
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// DefaultWidth is the width in cells of the longest bar
const DefaultWidth = 40

const barRune = "█"

// RenderOptions tunes terminal rendering
type RenderOptions struct {
	Width int
	Color ColorMode
}

// Render draws the chart to w, most frequent bar on top. An empty chart is
// reported with a single line instead of a table.
func Render(w io.Writer, c BarChart, opts RenderOptions) error {
	if len(c.Bars) == 0 {
		_, err := fmt.Fprintf(w, "%s\n(no data)\n", c.Title)
		return err
	}

	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	colorize := opts.Color == ColorAlways || (opts.Color == ColorAuto && shouldColorize(w))

	tw := newWriter()
	tw.SetTitle(c.Title)
	tw.AppendHeader(table.Row{c.YLabel, "", c.XLabel})

	peak := c.Max()
	for i := len(c.Bars) - 1; i >= 0; i-- {
		b := c.Bars[i]
		tw.AppendRow(table.Row{b.Label, bar(b.Value, peak, width), strconv.Itoa(b.Value)})
	}

	barConfig := table.ColumnConfig{Number: 2, Align: text.AlignLeft}
	if colorize {
		barConfig.Colors = text.Colors{text.FgCyan}
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		barConfig,
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

// bar scales value against peak; any positive value gets at least one cell.
func bar(value, peak, width int) string {
	if value <= 0 || peak <= 0 {
		return ""
	}
	n := (value*width + peak - 1) / peak
	if n < 1 {
		n = 1
	}
	return strings.Repeat(barRune, n)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
