package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sorter/internal/classify"
)

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List built-in and configured categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			table, err := cfg.CategoryTable()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, 16)
			for _, entry := range classify.Fixed() {
				rows = append(rows, []string{entry.Name, "built-in", strings.Join(entry.Extensions, " ")})
			}
			rows = append(rows, []string{classify.Other, "built-in", "(anything unmatched)"})
			for _, entry := range table.Custom() {
				rows = append(rows, []string{entry.Name, "custom", strings.Join(entry.Extensions, " ")})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Category", "Source", "Extensions"}, rows, nil))
			fmt.Fprintln(out, "Custom categories apply to method 3 only; built-in extensions always win.")
			fmt.Fprintln(out, "Archives expanded before sorting: .zip .tar .tar.gz .tgz .rar")
			return nil
		},
	}
}
