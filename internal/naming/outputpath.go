package naming

import (
	"path/filepath"
	"strings"
)

// SanitizedFilename returns the path that path should be renamed to. Only
// the last component is sanitized; the parent portion is reattached
// byte-for-byte, except that a bare "" or "." parent is dropped.
//
//	"nested/dir/file name.txt"  -> "nested/dir/file_name.txt"
//	"Hello.world.wav"           -> "Hello_world.wav"
//	"archive.v2" (a directory)  -> "archive_v2"
//
// The extension is looked up on the live file system first, so a
// directory that looks like "name.ext" is sanitized as a whole.
func SanitizedFilename(path string, replacement rune, mode Mode) string {
	ext := ExtractExtension(path)
	parent, name := splitPath(path)

	base := SanitizeComponent(name, replacement, ext, mode)
	if ext != "" {
		if base != "" {
			base += "."
		}
		base += ext
	}

	if parent == "" || parent == "." {
		return base
	}
	return joinParent(parent, base)
}

func joinParent(parent, name string) string {
	sep := string(filepath.Separator)
	if strings.HasSuffix(parent, sep) {
		return parent + name
	}
	return parent + sep + name
}
