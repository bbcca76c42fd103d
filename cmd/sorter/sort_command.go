package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sorter/internal/history"
	"sorter/internal/logging"
	"sorter/internal/organizer"
)

type sortOptions struct {
	source         string
	method         string
	nonInteractive bool
}

func runSort(cmd *cobra.Command, ctx *commandContext, opts sortOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	stdout := cmd.OutOrStdout()
	logger, err := ctx.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	p := newPrompter(cmd.InOrStdin(), stdout, !opts.nonInteractive)
	sel, err := p.collect(opts.source, opts.method, cfg.SortMethod)
	if err != nil {
		return err
	}

	// Configured categories first, prompted ones after; a prompted name
	// replaces a configured one with the same name.
	table, err := cfg.CategoryTable()
	if err != nil {
		return err
	}
	for _, category := range sel.Categories {
		if err := table.AddCustom(category.Name, category.Extensions); err != nil {
			return err
		}
	}

	orgOpts := []organizer.Option{}
	if cfg.History.Enabled {
		store, err := history.Open(cfg)
		if err != nil {
			logging.WarnWithContext(logger, "history journal unavailable", "history_open_failed",
				logging.Error(err),
				logging.Hint("check paths.history_db or disable [history]"),
				logging.Impact("this run will not be journaled"),
			)
		} else {
			defer store.Close()
			orgOpts = append(orgOpts, organizer.WithRecorder(store))
		}
	}

	org, err := organizer.New(cfg, sel.Method, table, logger, orgOpts...)
	if err != nil {
		return err
	}
	summary, err := org.Run(cmd.Context(), sel.Source)
	if err != nil {
		return err
	}

	printSummary(stdout, summary)
	return nil
}

func printSummary(out io.Writer, summary organizer.Summary) {
	colorize := shouldColorize(out)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Processing complete")
	fmt.Fprintln(out)
	for _, line := range summaryLines(summary, colorize) {
		fmt.Fprintln(out, line)
	}

	if summary.HasFailures() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Some entries were left in place. Run `sorter history --run "+summary.RunID+"` for details.")
	}

	if counts := summary.Categories(); len(counts) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderCategoryCounts(counts))
	}
}
