package rename

import (
	"errors"
	"io/fs"
	"os"
)

// Renamer performs single renames, refusing to overwrite anything.
type Renamer struct {
	DryRun   bool
	Reporter Reporter // nil discards events.
}

// Rename moves oldPath to newPath and returns the path the entry lives at
// afterwards: newPath when the rename happened (or would have, in dry-run
// mode), oldPath when it was skipped.
//
// The checks run in order: identical paths are reported unchanged without
// touching the file system; a missing source and an existing destination
// are reported and skipped. Only a failing stat or rename is an error. A
// rename is reported before it is attempted; if it then fails, an
// ActionFailed event for the same paths follows.
func (r *Renamer) Rename(oldPath, newPath string) (string, error) {
	if oldPath == newPath {
		r.report(ActionUnchanged, oldPath, newPath)
		return newPath, nil
	}

	exists, err := pathExists(oldPath)
	if err != nil {
		return oldPath, err
	}
	if !exists {
		r.report(ActionMissing, oldPath, newPath)
		return oldPath, nil
	}

	exists, err = pathExists(newPath)
	if err != nil {
		return oldPath, err
	}
	if exists {
		r.report(ActionCollision, oldPath, newPath)
		return oldPath, nil
	}

	if r.DryRun {
		r.report(ActionWouldRename, oldPath, newPath)
		return newPath, nil
	}

	r.report(ActionRenamed, oldPath, newPath)
	if err := os.Rename(oldPath, newPath); err != nil {
		r.report(ActionFailed, oldPath, newPath)
		return oldPath, wrapPathError("rename", oldPath, newPath, err)
	}
	return newPath, nil
}

func (r *Renamer) report(a Action, oldPath, newPath string) {
	if r.Reporter == nil {
		return
	}
	r.Reporter.Report(Event{Action: a, Old: oldPath, New: newPath})
}

// lstat returns path's own metadata (symlinks are not followed). A missing
// path is (nil, nil).
func lstat(path string) (fs.FileInfo, error) {
	fi, err := os.Lstat(path)
	if err == nil {
		return fi, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return nil, wrapPathError("stat", path, "", err)
}

// pathExists reports whether path exists without following symlinks, so a
// dangling symlink counts as present.
func pathExists(path string) (bool, error) {
	fi, err := lstat(path)
	return fi != nil, err
}
