package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sorter/internal/history"
)

const historyPathWidth = 48

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var runID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show journaled moves and archive results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !cfg.History.Enabled {
				fmt.Fprintln(out, "History is disabled ([history] enabled = false)")
				return nil
			}

			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			var entries []history.Entry
			if id := strings.TrimSpace(runID); id != "" {
				entries, err = store.ByRun(cmd.Context(), id)
			} else {
				entries, err = store.Recent(cmd.Context(), limit)
			}
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No history entries")
				return nil
			}

			fmt.Fprintln(out, renderTable(
				[]string{"Time", "Action", "Category", "Source", "Target / Error", "Run"},
				historyRows(entries),
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Number of most recent entries to show (0 for all)")
	cmd.Flags().StringVar(&runID, "run", "", "Only show entries from this run ID")
	return cmd
}

func historyRows(entries []history.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		outcome := entry.Target
		if entry.Failed() {
			outcome = entry.Error
		}
		category := entry.Category
		if entry.Year != "" {
			category = category + "/" + entry.Year
		}
		rows = append(rows, []string{
			entry.CreatedAt.Local().Format(time.DateTime),
			string(entry.Action),
			category,
			truncateLeft(entry.Source, historyPathWidth),
			truncateLeft(outcome, historyPathWidth),
			shortRunID(entry.RunID),
		})
	}
	return rows
}

// truncateLeft keeps the tail of long paths, where the file name is.
func truncateLeft(value string, width int) string {
	runes := []rune(value)
	if width <= 3 || len(runes) <= width {
		return value
	}
	return "..." + string(runes[len(runes)-(width-3):])
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
