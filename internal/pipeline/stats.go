package pipeline

import "github.com/backmassage/sanitize-filenames/internal/rename"

// RunStats tracks aggregate counters across a run.
type RunStats struct {
	Targets     int // Targets attempted, including the one that failed.
	Renamed     int
	WouldRename int
	Unchanged   int
	Missing     int
	Collisions  int
	Failed      int // Renames attempted that returned an error.
}

// Skipped returns how many entries were left in place because the source
// was gone or the destination was taken.
func (s *RunStats) Skipped() int {
	return s.Missing + s.Collisions
}

// Changed returns renames done, or announced in dry-run mode.
func (s *RunStats) Changed() int {
	return s.Renamed + s.WouldRename
}

func (s *RunStats) record(a rename.Action) {
	switch a {
	case rename.ActionRenamed:
		s.Renamed++
	case rename.ActionWouldRename:
		s.WouldRename++
	case rename.ActionUnchanged:
		s.Unchanged++
	case rename.ActionMissing:
		s.Missing++
	case rename.ActionCollision:
		s.Collisions++
	case rename.ActionFailed:
		// Follows the ActionRenamed event for the same rename.
		s.Renamed--
		s.Failed++
	}
}
