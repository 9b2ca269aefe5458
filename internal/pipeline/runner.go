package pipeline

import (
	"github.com/backmassage/sanitize-filenames/internal/config"
	"github.com/backmassage/sanitize-filenames/internal/display"
	"github.com/backmassage/sanitize-filenames/internal/logging"
	"github.com/backmassage/sanitize-filenames/internal/rename"
)

// Run sanitizes every target in cfg.Targets and returns the aggregate
// stats. It stops at the first I/O error and returns it; renames made
// before the error are kept and counted.
func Run(cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	logRunHeader(cfg, log)

	walker := &rename.Walker{
		Renamer: &rename.Renamer{
			DryRun:   cfg.DryRun,
			Reporter: eventLogger(log, &stats),
		},
		Replacement: cfg.Replacement,
		Mode:        cfg.SanitizeMode(),
	}

	for _, target := range cfg.Targets {
		stats.Targets++
		log.Debug("Target %d/%d: %s", stats.Targets, len(cfg.Targets), display.Quote(target))

		var err error
		if cfg.Recursive {
			_, err = walker.SanitizeTree(target)
		} else {
			_, err = walker.SanitizeEntry(target)
		}
		if err != nil {
			logSummary(cfg, log, &stats)
			return stats, err
		}
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// eventLogger returns the Reporter that logs each decision at its level
// and counts it.
func eventLogger(log *logging.Logger, stats *RunStats) rename.Reporter {
	return rename.ReporterFunc(func(e rename.Event) {
		stats.record(e.Action)
		switch {
		case e.Action == rename.ActionRenamed:
			log.Success("%s", e)
		case e.Action == rename.ActionWouldRename:
			log.Info("[DRY] %s", e)
		case e.Action == rename.ActionFailed:
			log.Debug("%s", e)
		case e.Action.Skipped():
			log.Warn("%s", e)
		default:
			log.Info("%s", e)
		}
	})
}

func logRunHeader(cfg *config.Config, log *logging.Logger) {
	if cfg.DryRun {
		log.Warn("DRY RUN: nothing will be renamed")
	}
	log.Debug("Mode: %s, replacement %q, recursive: %t", cfg.SanitizeMode(), cfg.Replacement, cfg.Recursive)
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	changed := "renamed"
	if cfg.DryRun {
		changed = "to rename"
	}
	log.Info("Done: %s processed; %d %s, %d unchanged, %d skipped, %d failed",
		display.Count(stats.Targets, "target", "targets"),
		stats.Changed(), changed, stats.Unchanged, stats.Skipped(), stats.Failed)
}
