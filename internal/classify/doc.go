// Package classify maps file names to sorting categories.
//
// It owns the built-in extension table (Photos, Videos, Audio, Text, Logs,
// Scripts, Executables, Other), the runtime-extensible list of user categories
// consulted only by the custom sort method, archive detection, and sort method
// parsing. Lookups are case-insensitive and never fail: every name resolves to
// a category, with Other as the catch-all.
package classify
