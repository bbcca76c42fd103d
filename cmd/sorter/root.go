package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string
	var opts sortOptions

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:   "sorter",
		Short: "Sort a directory into an Organized tree by year, type, or custom category",
		Long: "sorter walks a directory, expands archives it finds, and moves every file into\n" +
			"<source>/Organized/<Category>[/<Year>]. Anything the flags and config file do\n" +
			"not answer is asked for interactively.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, ctx, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override logging.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Override logging.format (console, json)")

	rootCmd.Flags().StringVarP(&opts.source, "source", "s", "", "Directory to sort (skips the source prompt)")
	rootCmd.Flags().StringVarP(&opts.method, "method", "m", "", "Sort method: 1/year, 2/type, 3/custom (skips the method prompt)")
	rootCmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Never prompt; fail when source or method is missing")

	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newCategoriesCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
