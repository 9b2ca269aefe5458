package rename

import (
	"fmt"

	"github.com/backmassage/sanitize-filenames/internal/display"
)

// Action is the outcome of one rename decision.
type Action int

const (
	ActionUnchanged   Action = iota // Sanitized name equals the current one.
	ActionMissing                   // Source does not exist.
	ActionCollision                 // Destination exists and differs from the source.
	ActionRenamed                   // Rename performed.
	ActionWouldRename               // Rename announced in dry-run mode.
	ActionFailed                    // Rename announced as ActionRenamed, then failed.
)

func (a Action) String() string {
	switch a {
	case ActionUnchanged:
		return "unchanged"
	case ActionMissing:
		return "missing"
	case ActionCollision:
		return "collision"
	case ActionRenamed:
		return "renamed"
	case ActionWouldRename:
		return "would-rename"
	case ActionFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Skipped reports whether the source was left in place for a reason other
// than already having a safe name.
func (a Action) Skipped() bool {
	return a == ActionMissing || a == ActionCollision
}

// Event describes one rename decision. New is empty for ActionMissing
// events raised before a destination was computed.
type Event struct {
	Action Action
	Old    string
	New    string
}

// String renders the event as a single human-readable report line.
func (e Event) String() string {
	switch e.Action {
	case ActionUnchanged:
		return fmt.Sprintf("Old name and new name are the same for %s.  Not changing", display.Quote(e.Old))
	case ActionMissing:
		return fmt.Sprintf("Old file name %s does not exist.  Skipping", display.Quote(e.Old))
	case ActionCollision:
		return fmt.Sprintf("New file name %s already exists!  Skipping", display.Quote(e.New))
	case ActionRenamed:
		return fmt.Sprintf("Changing %s to %s", display.Quote(e.Old), display.Quote(e.New))
	case ActionWouldRename:
		return fmt.Sprintf("Would change %s to %s", display.Quote(e.Old), display.Quote(e.New))
	case ActionFailed:
		return fmt.Sprintf("Could not change %s to %s", display.Quote(e.Old), display.Quote(e.New))
	default:
		return fmt.Sprintf("%s %s", e.Action, display.Quote(e.Old))
	}
}

// Reporter receives every rename decision in the order it is made.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a plain function to [Reporter].
type ReporterFunc func(Event)

// Report calls f(e).
func (f ReporterFunc) Report(e Event) { f(e) }
