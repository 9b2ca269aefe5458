package rename

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/backmassage/sanitize-filenames/internal/naming"
)

// Walker sanitizes entries with a fixed replacement and mode.
type Walker struct {
	Renamer     *Renamer
	Replacement rune
	Mode        naming.Mode
}

// SanitizeEntry renames path itself to its sanitized name. Directories are
// not descended into.
func (w *Walker) SanitizeEntry(path string) (string, error) {
	// The extension lookup stats path, so the name must be computed now,
	// right before acting, not earlier in the walk.
	return w.Renamer.Rename(path, naming.SanitizedFilename(path, w.Replacement, w.Mode))
}

// SanitizeTree sanitizes path and, when it is a real directory, everything
// below it. Children are handled first, under the directory's original
// name; the directory is renamed last. Symlinks and other non-directories
// are renamed as leaves. The returned path is where path ended up.
//
// The first I/O error aborts the whole walk. Renames already done stay.
func (w *Walker) SanitizeTree(path string) (string, error) {
	fi, err := lstat(path)
	if err != nil {
		return path, err
	}
	if fi == nil {
		w.Renamer.report(ActionMissing, path, "")
		return path, nil
	}
	if !isRealDir(fi.Mode()) {
		return w.SanitizeEntry(path)
	}

	// The listing is taken in full before any child is renamed.
	entries, err := os.ReadDir(path)
	if err != nil {
		return path, wrapPathError("readdir", path, "", err)
	}
	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		if isRealDir(entry.Type()) {
			_, err = w.SanitizeTree(child)
		} else {
			_, err = w.SanitizeEntry(child)
		}
		if err != nil {
			return path, err
		}
	}

	return w.SanitizeEntry(path)
}

// isRealDir is true for directories but not for symlinks to them.
func isRealDir(m fs.FileMode) bool {
	return m.IsDir() && m&fs.ModeSymlink == 0
}
