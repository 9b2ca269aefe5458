package naming

import (
	"strings"
	"unicode/utf8"
)

// SanitizeComponent returns the safe form of a single path component.
//
// The passes run in order: map every character per mode, collapse runs of
// replacement into one, drop a single trailing "<replacement><extension>"
// left behind by mapping the extension dot, then trim replacement
// characters from both ends. A non-empty name never sanitizes to "": if
// trimming would empty it, exactly one replacement character remains.
//
// extension is the name's extension without the dot, or "" for none. It is
// not reattached here; see [SanitizedFilename].
func SanitizeComponent(name string, replacement rune, extension string, mode Mode) string {
	s := mapAndCollapse(name, replacement, mode)
	s = stripExtensionSuffix(s, replacement, extension)
	return trimReplacement(s, replacement)
}

// mapAndCollapse runs the mapping and collapse passes in one sweep. Since
// the mapping is 1:1, collapsing while writing gives the same result as
// collapsing the fully mapped string.
//
// Bytes that are not valid UTF-8 are kept verbatim in legacy mode so the
// on-disk name survives untouched, and replaced in full mode.
func mapAndCollapse(name string, replacement rune, mode Mode) string {
	var b strings.Builder
	b.Grow(len(name))

	prevRepl := false
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		raw := name[i : i+size]
		i += size

		if r == utf8.RuneError && size == 1 {
			if mode == ModeLegacy {
				b.WriteString(raw)
				prevRepl = false
				continue
			}
			r = replacement
		} else {
			r = mapRune(r, replacement, mode)
		}

		if r == replacement {
			if prevRepl {
				continue
			}
			prevRepl = true
		} else {
			prevRepl = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
