// Package rename applies sanitized names to the file system.
//
// [Renamer] performs (or, in dry-run mode, only announces) a single rename
// after checking for no-ops, missing sources and existing destinations.
// [Walker] drives it over one entry or a whole directory tree, post-order:
// every child of a directory is handled under the directory's original name
// before the directory itself is renamed. Symlinks are renamed like files
// and never followed.
//
// Every decision is delivered to a [Reporter] as an [Event]; nothing in this
// package writes to stdout. Skips (same name, missing source, collision) are
// events, not errors. Only I/O failures are returned, as *[PathError], and
// they stop the walk immediately without undoing earlier renames.
package rename
