// Package chart turns frequency results into horizontal bar charts and draws
// them in the terminal.
package chart

import (
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/freq"
)

// Bar is one labeled value
type Bar struct {
	Label string
	Value int
}

// BarChart is a horizontal bar chart. Bars are in plot order: the first bar
// sits at the bottom of the chart and the last at the top.
type BarChart struct {
	Title  string
	XLabel string
	YLabel string
	Bars   []Bar
}

// FromEntries builds a chart from ranked entries (highest count first). The
// order is reversed so the most frequent item ends up at the top.
func FromEntries(entries []freq.Entry, title, xLabel, yLabel string) BarChart {
	bars := make([]Bar, len(entries))
	for i, e := range entries {
		bars[len(entries)-1-i] = Bar{Label: e.Label(), Value: e.Count}
	}
	return BarChart{
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Bars:   bars,
	}
}

// Words is the chart for the most frequent words
func Words(entries []freq.Entry) BarChart {
	return FromEntries(entries, "Top Palabras Más Frecuentes", "Frecuencia", "Palabra")
}

// NGrams is the chart for the most frequent n-grams
func NGrams(entries []freq.Entry) BarChart {
	return FromEntries(entries, "Top N-Gramas Más Frecuentes", "Frecuencia", "N-Grama")
}

// Max returns the largest bar value, or 0 for an empty chart
func (c BarChart) Max() int {
	peak := 0
	for _, b := range c.Bars {
		if b.Value > peak {
			peak = b.Value
		}
	}
	return peak
}
