package display

import (
	"testing"
)

func TestPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "dir/file name.txt", "dir/file name.txt"},
		{"unicode", "Café/×.wav", "Café/×.wav"},
		{"invalid byte", "bad\xffname", "bad�name"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Path(tt.in)
			if got != tt.want {
				t.Errorf("Path(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	if got := Quote("a b"); got != "'a b'" {
		t.Errorf("Quote = %q, want %q", got, "'a b'")
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{"zero", 0, "0 paths"},
		{"one", 1, "1 path"},
		{"many", 12, "12 paths"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.n, "path", "paths")
			if got != tt.want {
				t.Errorf("Count(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}
