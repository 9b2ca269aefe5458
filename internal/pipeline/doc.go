// Package pipeline runs a sanitize pass over the configured targets.
//
// [Run] processes targets strictly in command-line order. Directories are
// walked post-order when recursion is on; otherwise every target, directory
// or not, is renamed on its own. Each rename decision is logged as it
// happens and counted into [RunStats]. The first I/O error stops the run.
package pipeline
