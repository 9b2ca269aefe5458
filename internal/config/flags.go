package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into rename behavior, display, and utility.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults hold unless set.

import (
	"fmt"
	"io"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
)

// ParseFlags parses args (without the program name) into cfg. --help and
// --version are reported as [ErrHelp] and [ErrVersion] so the caller decides
// where to print and which status to exit with.
func ParseFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("sanitize-filenames", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	var negated negatedFlags

	defineRenameFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if negated.showHelp {
		return ErrHelp
	}
	if negated.showVersion {
		return ErrVersion
	}

	applyNegatedFlags(cfg, &negated)
	cfg.Targets = parseTargets(fs.Args())
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default or trigger an early return (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineRenameFlags registers -r/--recursive, -n/--dry-run, -c/--replacement, -F/--full.
func defineRenameFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.Recursive, "recursive", "r", cfg.Recursive, "Recursively sanitize directories and their contents")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", cfg.DryRun, "Show actions without renaming files")
	fs.VarP(&replacementValue{&cfg.Replacement}, "replacement", "c", "Replacement character to use")
	fs.BoolVarP(&cfg.FullSanitize, "full", "F", cfg.FullSanitize, "Replace everything except ASCII letters, digits, '_' and '-'")
}

// defineDisplayFlags registers --color, --no-color, -v/--verbose, -l/--log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", cfg.LogFile, "Append logs to file")
}

// defineUtilityFlags registers --version and --help.
func defineUtilityFlags(fs *pflag.FlagSet, n *negatedFlags) {
	fs.BoolVarP(&n.showVersion, "version", "V", false, "Print version and exit")
	fs.BoolVarP(&n.showHelp, "help", "h", false, "Show this help and exit")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parseTargets expands a leading "~", strips trailing slashes so that a
// directory given as "dir/" compares equal to its sanitized form, and then
// drops "." and "..".
func parseTargets(args []string) []string {
	targets := make([]string, 0, len(args))
	for _, arg := range args {
		if expanded, err := homedir.Expand(arg); err == nil {
			arg = expanded
		}
		arg = NormalizeDirArg(arg)
		if arg == "." || arg == ".." {
			continue
		}
		targets = append(targets, arg)
	}
	return targets
}

// PrintUsage writes the help text to w. Column-aligned for readability.
func PrintUsage(w io.Writer, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "sanitize-filenames v" + version + " - rename files to shell-safe names"},
		{"", ""},
		{"Usage: sanitize-filenames [OPTIONS] [FILES...]", ""},
		{"", ""},
		{"Renaming", ""},
		{"  -r, --recursive", "Recursively sanitize directories and their contents"},
		{"  -n, --dry-run", "Show actions without renaming files"},
		{"  -c, --replacement <char>", "Replacement character to use (default: _)"},
		{"  -F, --full", "Keep only ASCII letters, digits, '_' and '-'"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"  -l, --log <path>", "Append logs to file"},
		{"", ""},
		{"Utility", ""},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"", "Provide one or more files or directories to sanitize their names in-place."},
		{"", "Use '--' to stop option parsing when filenames begin with '-'."},
		{"", ""},
		{"Examples", ""},
		{"  # sanitize a single file in the current directory", ""},
		{"  sanitize-filenames \"My File.txt\"", ""},
		{"  # preview changes without renaming", ""},
		{"  sanitize-filenames --dry-run \"My File.txt\"", ""},
		{"  # sanitize recursively and use '-' as the separator", ""},
		{"  sanitize-filenames --recursive --replacement - ~/Downloads", ""},
		{"  # sanitize a file whose name starts with a dash", ""},
		{"  sanitize-filenames -- --weird name.mp3", ""},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// pflag.Value adapter so the replacement is validated while parsing.

type replacementValue struct{ p *rune }

func (r *replacementValue) String() string { return string(*r.p) }
func (r *replacementValue) Type() string   { return "char" }
func (r *replacementValue) Set(s string) error {
	v, err := ValidateReplacement(s)
	if err != nil {
		return err
	}
	*r.p = v
	return nil
}
