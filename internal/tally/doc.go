// Package tally counts the entries of a directory tree by type and totals the
// regular files whose full path contains a pattern.
//
// It drives a walk.Walker with a single-threaded visitor; the walk never
// follows symbolic links and reports per-entry failures without stopping.
package tally
