package naming

import (
	"os"
	"path/filepath"
	"strings"
)

// HasDot reports whether name contains at least one '.'.
func HasDot(name string) bool {
	return strings.Contains(name, ".")
}

// IsHidden reports whether name is a dotfile.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// IsDirectory reports whether path currently resolves to a directory.
// Symlinks are followed.
func IsDirectory(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// HasExtension reports whether the last component of path has a real
// extension: it contains a dot, is not a dotfile and path is not a
// directory. "v1.2/" and ".bashrc" have none.
//
// The answer depends on the file system at the time of the call; callers
// must ask right before acting on path, never ahead of time.
func HasExtension(path string) bool {
	_, name := splitPath(path)
	return HasDot(name) && !IsHidden(name) && !IsDirectory(path)
}

// ExtractExtension returns the text after the last '.' of the last
// component of path, or "" when [HasExtension] is false.
func ExtractExtension(path string) string {
	if !HasExtension(path) {
		return ""
	}
	_, name := splitPath(path)
	return name[strings.LastIndexByte(name, '.')+1:]
}

// splitPath splits path into its parent portion and last component without
// cleaning either. Trailing separators are ignored. The parent of a
// top-level absolute entry is the root itself.
func splitPath(path string) (parent, name string) {
	p := trimTrailingSeparators(path)
	i := strings.LastIndexByte(p, filepath.Separator)
	switch {
	case i < 0:
		return "", p
	case i == 0:
		return p[:1], p[1:]
	default:
		return p[:i], p[i+1:]
	}
}

func trimTrailingSeparators(path string) string {
	sep := string(filepath.Separator)
	p := strings.TrimRight(path, sep)
	if p == "" && path != "" {
		return sep
	}
	return p
}
