package naming

import "strings"

// stripExtensionSuffix removes one trailing "<replacement><extension>".
// Mapping "file.txt" yields "file_txt"; the tail goes so the extension can
// be reattached with its dot.
func stripExtensionSuffix(s string, replacement rune, extension string) string {
	if extension == "" {
		return s
	}
	return strings.TrimSuffix(s, string(replacement)+extension)
}

// trimReplacement strips leading and trailing replacement characters. It
// compares encoded bytes rather than decoded runes so that invalid UTF-8
// at the edges is never mistaken for a U+FFFD replacement.
func trimReplacement(s string, replacement rune) string {
	rs := string(replacement)
	t := s
	for strings.HasPrefix(t, rs) {
		t = t[len(rs):]
	}
	for strings.HasSuffix(t, rs) {
		t = t[:len(t)-len(rs)]
	}
	if t == "" && s != "" {
		return rs
	}
	return t
}
