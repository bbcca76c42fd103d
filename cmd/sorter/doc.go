// Package main hosts the sorter CLI entrypoint and command graph.
//
// The root command runs a sort: it resolves configuration, asks for whatever
// the flags and config file did not answer (source directory, sort method,
// custom categories), and hands the result to the organizer. Subcommands
// expose the move journal, the built-in extension table, and configuration
// scaffolding.
//
// Keep this package lean: behaviour lives in internal packages and is only
// surfaced here.
package main
