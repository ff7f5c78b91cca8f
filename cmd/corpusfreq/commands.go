package main

import (
	"github.com/spf13/cobra"

	"github.com/cognicore/corpusfreq/pkg/corpusfreq"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/chart"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/config"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/dataset"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/freq"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/report"
	"github.com/cognicore/corpusfreq/pkg/corpusfreq/sample"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var topWords, topNGrams, n int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Chart the top words and n-grams of the category sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.config
			if cmd.Flags().Changed("top-words") {
				cfg.TopWords = topWords
			}
			if cmd.Flags().Changed("top-ngrams") {
				cfg.TopNGrams = topNGrams
			}
			if cmd.Flags().Changed("n") {
				cfg.NGramSize = n
			}

			rep, err := corpusfreq.Run(cmd.Context(), cfg, ctx.logger)
			if err != nil {
				return err
			}
			if ctx.format == formatJSON {
				return writeJSON(ctx.stdout, rep)
			}
			if err := chart.Render(ctx.stdout, chart.Words(report.Entries(rep.Words)), chart.RenderOptions{}); err != nil {
				return err
			}
			return chart.Render(ctx.stdout, chart.NGrams(report.Entries(rep.NGrams)), chart.RenderOptions{})
		},
	}

	cmd.Flags().IntVar(&topWords, "top-words", freq.DefaultTopWords, "Number of words to chart")
	cmd.Flags().IntVar(&topNGrams, "top-ngrams", freq.DefaultTopNGrams, "Number of n-grams to chart")
	cmd.Flags().IntVarP(&n, "n", "n", freq.DefaultNGramSize, "N-gram length")
	return cmd
}

func newWordsCommand(ctx *commandContext) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Chart the most frequent words of the category sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.config
			if cmd.Flags().Changed("top") {
				cfg.TopWords = top
			}

			analyzer, table, err := ctx.analyzer(cmd, cfg)
			if err != nil {
				return err
			}
			entries, err := analyzer.TopWords(table, cfg.Category, cfg.TopWords)
			if err != nil {
				return err
			}
			return ctx.writeEntries(chart.Words(entries), entries)
		},
	}

	cmd.Flags().IntVar(&top, "top", freq.DefaultTopWords, "Number of words to chart")
	return cmd
}

func newNGramsCommand(ctx *commandContext) *cobra.Command {
	var top, n int

	cmd := &cobra.Command{
		Use:   "ngrams",
		Short: "Chart the most frequent n-grams of the category sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.config
			if cmd.Flags().Changed("top") {
				cfg.TopNGrams = top
			}
			if cmd.Flags().Changed("n") {
				cfg.NGramSize = n
			}

			analyzer, table, err := ctx.analyzer(cmd, cfg)
			if err != nil {
				return err
			}
			entries, err := analyzer.TopNGrams(table, cfg.Category, cfg.NGramSize, cfg.TopNGrams)
			if err != nil {
				return err
			}
			return ctx.writeEntries(chart.NGrams(entries), entries)
		},
	}

	cmd.Flags().IntVar(&top, "top", freq.DefaultTopNGrams, "Number of n-grams to chart")
	cmd.Flags().IntVarP(&n, "n", "n", freq.DefaultNGramSize, "N-gram length")
	return cmd
}

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List category labels and their row counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.config
			opts := cfg.DatasetOptions()
			opts.Logger = ctx.logger

			table, err := dataset.Load(cmd.Context(), cfg.Input, opts)
			if err != nil {
				return err
			}
			cats := table.Categories()
			if ctx.format == formatJSON {
				return writeJSON(ctx.stdout, cats)
			}
			return writeCategories(ctx.stdout, cats)
		},
	}
}

func newSampleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Show the rows drawn for the category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.config
			analyzer, table, err := ctx.analyzer(cmd, cfg)
			if err != nil {
				return err
			}
			prepared, err := analyzer.Prepare(table, cfg.Category)
			if err != nil {
				return err
			}
			if ctx.format == formatJSON {
				return writeJSON(ctx.stdout, prepared.Records)
			}
			return writeSample(ctx.stdout, prepared.Records)
		},
	}
}

// analyzer loads the stoplist and input for cfg and builds an Analyzer
func (c *commandContext) analyzer(cmd *cobra.Command, cfg config.Config) (*corpusfreq.Analyzer, *dataset.Table, error) {
	loader := config.Loader{Config: cfg, Logger: c.logger}
	comp, err := loader.Load(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	analyzer := corpusfreq.New(corpusfreq.Options{
		Stoplist: comp.Stoplist,
		Sampler:  sample.Sampler{Size: cfg.SampleSize, Seed: cfg.Seed},
		Logger:   c.logger,
	})
	return analyzer, comp.Table, nil
}
