package config

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf, "9.9.9")
	out := buf.String()

	for _, want := range []string{
		"sanitize-filenames v9.9.9",
		"Usage: sanitize-filenames [OPTIONS] [FILES...]",
		"-r, --recursive",
		"-n, --dry-run",
		"-c, --replacement <char>",
		"-F, --full",
		"Use '--' to stop option parsing",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
