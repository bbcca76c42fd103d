package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"sorter/internal/organizer"
	"sorter/internal/preflight"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

const (
	statusLabelWidth = 18
	statusIndent     = "  "
)

// renderStatusLine formats "  Label:   [KIND] message", coloured as a whole
// when colorize is set.
func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	status := "[" + statusKindLabel(kind) + "]"
	if message != "" {
		status += " " + message
	}
	line := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", status)
	if colorize {
		return statusKindColor(kind) + line + ansiReset
	}
	return line
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	default:
		return ansiCyan
	}
}

func renderSectionHeader(title string, colorize bool) []string {
	title = strings.TrimSpace(title)
	rule := strings.Repeat("=", len(title))
	if colorize {
		return []string{ansiCyan + title + ansiReset, ansiCyan + rule + ansiReset}
	}
	return []string{title, rule}
}

// summaryLines renders the counters of a finished run. Failure counters only
// turn red or yellow when they are non-zero.
func summaryLines(summary organizer.Summary, colorize bool) []string {
	lines := renderSectionHeader("Summary", colorize)
	add := func(label string, kind statusKind, value string) {
		lines = append(lines, renderStatusLine(label, kind, value, colorize))
	}
	add("Run", statusInfo, summary.RunID)
	add("Output", statusInfo, summary.Output)
	add("Method", statusInfo, summary.Method.String())
	add("Files moved", statusOK, strconv.Itoa(summary.Moved))
	add("Files failed", countKind(summary.Failed, statusError), strconv.Itoa(summary.Failed))
	add("Archives expanded", statusOK, strconv.Itoa(summary.ArchivesExpanded))
	add("Archives kept", countKind(summary.ArchivesFailed, statusWarn), strconv.Itoa(summary.ArchivesFailed))
	if summary.Skipped > 0 {
		add("Entries skipped", statusInfo, strconv.Itoa(summary.Skipped))
	}
	add("Duration", statusInfo, summary.Duration().Round(time.Millisecond).String())
	return lines
}

// checkLines renders preflight results, one status line each.
func checkLines(results []preflight.Result, colorize bool) []string {
	lines := make([]string, 0, len(results))
	for _, result := range results {
		kind := statusOK
		if !result.Passed {
			kind = statusError
		}
		lines = append(lines, renderStatusLine(result.Name, kind, result.Detail, colorize))
	}
	return lines
}

func countKind(count int, failing statusKind) statusKind {
	if count > 0 {
		return failing
	}
	return statusOK
}

func shouldColorize(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
