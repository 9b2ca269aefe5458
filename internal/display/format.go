// Package display holds small formatting helpers shared by the logger and
// the rename reports.
package display

import (
	"fmt"
	"strings"
)

// Path renders a file-system path for human-readable output. Bytes that are
// not valid UTF-8 are shown as U+FFFD; the name on disk is never affected.
func Path(p string) string {
	return strings.ToValidUTF8(p, "�")
}

// Quote wraps [Path] in single quotes, matching the report lines
// ("Changing 'a b' to 'a_b'").
func Quote(p string) string {
	return "'" + Path(p) + "'"
}

// Count returns n followed by the singular or plural noun (e.g. "1 file",
// "3 files").
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
