// Package preflight validates the filesystem before a sort run touches
// anything.
//
// CheckSourceDir is the gate the organizer and the CLI use: a source path
// that is missing, is not a directory, or is not readable and writable
// fails the run with services.ErrInvalidSourcePath. RunAll reports the same
// check plus the optional scratch and history locations for display.
package preflight
