// Package config loads, normalizes, and validates sorter configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), and
// reads TOML files. The Config type centralizes every knob the CLI and the
// organizer need: the output directory name, scratch space for archive
// extraction, the history database, logging, and the user categories used by
// the custom sort method.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, normalized extensions, and clear validation errors.
package config
