package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--help"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Usage:")
	assert.Empty(t, stderr.String())
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-V"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "sanitize-filenames "+version+" ("+commit+")\n", stdout.String())
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no targets", nil, "No files or directories specified\n"},
		{"only dot targets", []string{".", ".."}, "No files or directories specified\n"},
		{"unknown flag", []string{"--bogus", "x"}, "sanitize-filenames: unknown flag: --bogus\n"},
		{"slash replacement", []string{"-c", "/", "x"}, "replacement character '/' is not allowed"},
		{"long replacement", []string{"-c", "ab", "x"}, "must be a single character"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), tt.wantErr)
			assert.Contains(t, stderr.String(), "Usage:")
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_RenamesTargets(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Hello World.txt")
	if err := os.WriteFile(src, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"--no-color", src}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(dir, "Hello_World.txt"))
	assert.NoFileExists(t, src)
	assert.Contains(t, stdout.String(), "[SUCCESS] Changing '"+src+"' to '"+filepath.Join(dir, "Hello_World.txt")+"'")
	assert.Empty(t, stderr.String())
}

func TestRun_IOErrorExitsOne(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	later := filepath.Join(dir, "later one")
	if err := os.WriteFile(later, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	// Stat below a regular file fails with ENOTDIR.
	var stdout, stderr bytes.Buffer
	code := run([]string{"--no-color", filepath.Join(file, "x y"), later}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "[ERROR] Error: stat '"+filepath.Join(file, "x y")+"'")
	assert.FileExists(t, later)
}

func TestRun_DotTargetsWithSlashAreIgnored(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-r", "./", "../"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "No files or directories specified")
}
