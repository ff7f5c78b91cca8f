package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:           "corpusfreq",
		Short:         "Word and n-gram frequency charts for a category sample",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx.flags = cmd.Flags()
			ctx.stdout = cmd.OutOrStdout()
			ctx.stderr = cmd.ErrOrStderr()
			_, err := ctx.ensureConfig()
			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path (.yaml or .toml)")
	flags.StringVar(&ctx.overrides.Input, "input", "", "Input file (.xlsx, .csv, .tsv, .jsonl, .db)")
	flags.StringVar(&ctx.overrides.Category, "category", "", "Category label to sample")
	flags.IntVar(&ctx.overrides.SampleSize, "sample-size", 0, "Rows drawn from the category")
	flags.Uint64Var(&ctx.overrides.Seed, "seed", 0, "Random seed for sampling")
	flags.StringVar(&ctx.overrides.Stopwords, "stopwords", "", "Stoplist file (overrides --language)")
	flags.StringVar(&ctx.overrides.Language, "language", "", "NLTK stopword language")
	flags.StringVar(&ctx.overrides.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&ctx.overrides.LogFormat, "log-format", "", "Log format (console, json)")
	flags.StringVar(&ctx.format, "format", formatTable, "Output format (table, json)")

	runCmd := newRunCommand(ctx)
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(newWordsCommand(ctx))
	rootCmd.AddCommand(newNGramsCommand(ctx))
	rootCmd.AddCommand(newCategoriesCommand(ctx))
	rootCmd.AddCommand(newSampleCommand(ctx))

	return rootCmd
}
