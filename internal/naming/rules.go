package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode selects the character mapping applied by [SanitizeComponent].
type Mode int

const (
	// ModeLegacy replaces whitespace and a fixed punctuation/bracket set.
	ModeLegacy Mode = iota
	// ModeFull replaces everything that is not an ASCII letter, ASCII
	// digit, '_' or '-'.
	ModeFull
)

func (m Mode) String() string {
	switch m {
	case ModeLegacy:
		return "legacy"
	case ModeFull:
		return "full"
	default:
		return "unknown"
	}
}

// legacyPunct is replaced in legacy mode in addition to Unicode whitespace.
const legacyPunct = `.,":?'#;&*\()[]`

// multiplicationSign is transliterated rather than replaced in legacy mode,
// so "14 × 2" reads as "14_x_2".
const multiplicationSign = '×'

// mapRune returns the single rune r maps to under mode. Every input rune
// produces exactly one output rune.
func mapRune(r, replacement rune, mode Mode) rune {
	if mode == ModeFull {
		return mapRuneFull(r, replacement)
	}
	return mapRuneLegacy(r, replacement)
}

func mapRuneLegacy(r, replacement rune) rune {
	switch {
	case r == multiplicationSign:
		return 'x'
	case unicode.IsSpace(r), strings.ContainsRune(legacyPunct, r):
		return replacement
	}
	return r
}

func mapRuneFull(r, replacement rune) rune {
	if r < utf8.RuneSelf && isSafeASCII(byte(r)) {
		return r
	}
	return replacement
}

func isSafeASCII(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_', c == '-':
		return true
	}
	return false
}
