package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"sorter/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 when the run was refused before any file was touched.
func exitCode(err error) int {
	if services.IsFatal(err) {
		return 2
	}
	return 1
}
