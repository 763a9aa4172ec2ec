// Package walk implements a single-threaded, depth-first, pre-order walk of a
// filesystem subtree.
//
// Entries are classified with lstat semantics, so symbolic links are reported
// as themselves and never followed. Every entry is handed to a Visitor before
// any of its children; a non-nil error from the Visitor stops the walk.
//
// Child paths are built by appending a separator and the entry name to the
// start path, except that no separator is added after a start path that
// already ends in one ("root/" yields "root/a.txt", not "root//a.txt").
//
// Descent is recursive. The maximum tree depth is bounded by the goroutine
// stack limit (see runtime/debug.SetMaxStack).
package walk
