package rename

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/backmassage/sanitize-filenames/internal/display"
)

// PathError is returned for any file-system failure during a rename or a
// walk. Err is the underlying system error.
type PathError struct {
	Op     string // "stat", "readdir" or "rename".
	Path   string
	Target string // Destination, for "rename" only.
	Err    error
}

func (e *PathError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s to %s: %v", e.Op, display.Quote(e.Path), display.Quote(e.Target), e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, display.Quote(e.Path), e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// wrapPathError builds a PathError, unwrapping the os-level error so the
// path is not repeated in the message.
func wrapPathError(op, path, target string, err error) error {
	var pe *fs.PathError
	var le *os.LinkError
	switch {
	case errors.As(err, &pe):
		err = pe.Err
	case errors.As(err, &le):
		err = le.Err
	}
	return &PathError{Op: op, Path: path, Target: target, Err: err}
}
