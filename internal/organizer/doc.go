// Package organizer sorts a directory tree into an Organized hierarchy.
//
// A run walks the source depth-first, skipping the output base, and sends
// every regular file either to the archive expander or to the strategy for
// the chosen sort method. Strategies pick `<base>/<Category>[/<Year>]`; the
// mover then renames the file there under the first free `name_N.ext`.
// Archives are unpacked into a scratch directory that is sorted with the same
// rules, and the archive is deleted only when every extracted file landed.
//
// Per-file failures are logged, counted in the Summary, and journaled; they
// never stop the walk. Only setup problems (bad source, bad method, a held
// lock) are returned from Run.
package organizer
