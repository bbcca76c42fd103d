// Package services defines shared utilities consumed by the organizer, the
// archive expander, and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, stage names, and the archive being
//     expanded so log lines can be correlated across a recursive walk.
//   - Structured error markers plus the Wrap helper that give every failure
//     kind from the sorting pipeline a consistent message shape and a stable
//     classification (see Classify).
//
// Use these helpers when wiring new pipeline code so error reporting and
// observability stay uniform across the run.
package services
