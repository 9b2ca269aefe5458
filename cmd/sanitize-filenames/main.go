// Command sanitize-filenames renames files and directories so their names
// contain no whitespace or shell-hostile punctuation.
//
// It parses flags, validates the configuration and runs the rename pass
// over every target in order, optionally recursing into directories.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/backmassage/sanitize-filenames/internal/config"
	"github.com/backmassage/sanitize-filenames/internal/logging"
	"github.com/backmassage/sanitize-filenames/internal/pipeline"
	"github.com/backmassage/sanitize-filenames/internal/term"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, args); err != nil {
		switch {
		case errors.Is(err, config.ErrHelp):
			config.PrintUsage(stdout, version)
			return 0
		case errors.Is(err, config.ErrVersion):
			fmt.Fprintf(stdout, "sanitize-filenames %s (%s)\n", version, commit)
			return 0
		}
		fmt.Fprintf(stderr, "sanitize-filenames: %v\n", err)
		config.PrintUsage(stderr, version)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrNoTargets) {
			fmt.Fprintln(stderr, "No files or directories specified")
		} else {
			fmt.Fprintf(stderr, "sanitize-filenames: %v\n", err)
		}
		config.PrintUsage(stderr, version)
		return 1
	}

	term.Configure(cfg.ColorMode)
	log, err := logging.NewLoggerWithWriters(&cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "sanitize-filenames: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available; all output goes through log from here on.
	if _, err := pipeline.Run(&cfg, log); err != nil {
		log.Error("Error: %v", err)
		return 1
	}
	return 0
}
