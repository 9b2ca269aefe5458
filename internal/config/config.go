// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. A Config is built once at startup and treated as read-only
// afterwards.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/backmassage/sanitize-filenames/internal/naming"
)

// DefaultReplacement is substituted for unsafe characters unless -c is given.
const DefaultReplacement = '_'

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Sentinel errors returned by [ParseFlags] and [Config.Validate].
var (
	ErrNoTargets        = errors.New("no files or directories specified")
	ErrEmptyReplacement = errors.New("replacement character cannot be empty")
	ErrHelp             = errors.New("help requested")
	ErrVersion          = errors.New("version requested")
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Targets are the files and directories to sanitize, processed in
	// order. "." and ".." are never present.
	Targets []string

	// Rename behavior.
	Recursive    bool
	DryRun       bool
	Replacement  rune // Default: '_'. Never '/'.
	FullSanitize bool // Allowlist mode; see naming.ModeFull.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with every default applied. Used as the
// base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Recursive:    false,
		DryRun:       false,
		Replacement:  DefaultReplacement,
		FullSanitize: false,
		Verbose:      false,
		ColorMode:    ColorAuto,
	}
}

// SanitizeMode maps FullSanitize onto the naming mode threaded through
// every sanitize call.
func (c *Config) SanitizeMode() naming.Mode {
	if c.FullSanitize {
		return naming.ModeFull
	}
	return naming.ModeLegacy
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" && path != "" {
		return "/"
	}
	return trimmed
}

// ValidateReplacement parses a user-supplied replacement. It must be exactly
// one character and must not be the path separator.
func ValidateReplacement(s string) (rune, error) {
	if s == "" {
		return 0, ErrEmptyReplacement
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, fmt.Errorf("replacement character must be a single character (got %q)", s)
	}
	if err := checkReplacement(r); err != nil {
		return 0, err
	}
	return r, nil
}

func checkReplacement(r rune) error {
	switch r {
	case 0:
		return ErrEmptyReplacement
	case '/':
		return fmt.Errorf("replacement character '%c' is not allowed", r)
	}
	return nil
}

// Validate checks the replacement character, the color mode, and that at
// least one target is present.
func (c *Config) Validate() error {
	if err := checkReplacement(c.Replacement); err != nil {
		return err
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if len(c.Targets) == 0 {
		return ErrNoTargets
	}
	return nil
}
