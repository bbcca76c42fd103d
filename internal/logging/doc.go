// Package logging assembles structured slog loggers and formatting helpers used
// across sorter.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so organizer code automatically
// tags log lines with the run correlation ID, the pipeline stage, and the
// archive being expanded. The package also provides a no-op logger for tests
// and wiring code that cannot fail.
package logging
