package preflight

import (
	"path/filepath"
	"strings"

	"sorter/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for a run over source.
// An empty source and unconfigured optional locations are not checked.
func RunAll(cfg *config.Config, source string) []Result {
	var results []Result

	if strings.TrimSpace(source) != "" {
		results = append(results, CheckDirectoryAccess("Source directory", source))
	}

	if cfg == nil {
		return results
	}
	if dir := strings.TrimSpace(cfg.Paths.ScratchDir); dir != "" {
		results = append(results, CheckDirectoryAccess("Scratch directory", dir))
	}
	if cfg.History.Enabled && strings.TrimSpace(cfg.Paths.HistoryDB) != "" {
		results = append(results, CheckDirectoryAccess("History directory", filepath.Dir(cfg.Paths.HistoryDB)))
	}
	return results
}

// Failures returns the results that did not pass.
func Failures(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
