// Package naming turns arbitrary path components into shell-safe names.
//
// It has three layers, leaf first:
//
//   - Classification (classify.go): [HasDot], [IsHidden], [IsDirectory],
//     [HasExtension] and [ExtractExtension] decide whether the last
//     component of a path carries a real extension. Directories and
//     dotfiles never do.
//   - Component sanitizing (rules.go, sanitize.go, postprocess.go):
//     [SanitizeComponent] maps every character according to a [Mode],
//     collapses runs of the replacement character, strips the mapped
//     extension tail and trims the edges.
//   - Path composition (outputpath.go): [SanitizedFilename] sanitizes the
//     final component of a path and reattaches its parent and extension.
//
// Only classification touches the file system (one stat per call). The
// rest is pure string work and never renames anything; see package rename
// for that.
package naming
