package naming

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizedFilename_Legacy(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"×", "x"},
		{"Hello", "Hello"},
		{"hello.wav", "hello.wav"},
		{"Hello World", "Hello_World"},
		{"Hello.World", "Hello.World"},
		{"Hello World.txt", "Hello_World.txt"},
		{"hello world.wav", "hello_world.wav"},
		{"Hello.world.wav", "Hello_world.wav"},
		{"hello? + world.wav", "hello_+_world.wav"},
		{"Bart_banner_14_5_×_2_5_in.png", "Bart_banner_14_5_x_2_5_in.png"},
		{"hello? &&*()#@+ world.wav", "hello_@+_world.wav"},
		{"August Gold Q&A Audio.m4a.wav", "August_Gold_Q_A_Audio_m4a.wav"},
		{"_Name_.md", "Name.md"},
		{"nested/dir/file name.txt", "nested/dir/file_name.txt"},
		{"/absolute/path/Hello World.txt", "/absolute/path/Hello_World.txt"},
		{"relative/./path/Hello World.txt", "relative/./path/Hello_World.txt"},
		{"./foo bar", "foo_bar"},
		{"/top level", "/top_level"},
		{"my dir/", "my_dir"},
		{"parent dir/child dir", "parent dir/child_dir"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizedFilename(tt.in, '_', ModeLegacy))
		})
	}
}

func TestSanitizedFilename_Full(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World.txt", "Hello_World.txt"},
		{"Café Menu.pdf", "Caf_Menu.pdf"},
		{"a+b=c.txt", "a_b_c.txt"},
		{"x/ünï.txt", "x/n.txt"},
		{"日本語", "_"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizedFilename(tt.in, '_', ModeFull))
		})
	}
}

func TestSanitizedFilename_CustomReplacement(t *testing.T) {
	assert.Equal(t, "Hello-World.txt", SanitizedFilename("Hello World.txt", '-', ModeLegacy))
	assert.Equal(t, "dir-one", SanitizedFilename("dir one", '-', ModeFull))
}

func TestSanitizedFilename_DirectoryHasNoExtension(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "archive.v2")
	require.NoError(t, os.Mkdir(archive, 0o755))

	for _, mode := range []Mode{ModeLegacy, ModeFull} {
		assert.Equal(t, filepath.Join(dir, "archive_v2"), SanitizedFilename(archive, '_', mode), mode.String())
	}
}

func TestSanitizedFilename_FileKeepsExtension(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "archive.v2")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.Equal(t, file, SanitizedFilename(file, '_', ModeLegacy))
}

func TestSanitizedFilename_EmptyBaseKeepsBareExtension(t *testing.T) {
	// With 'a' as the replacement, "a.txt" maps to "atxt" and the whole
	// base is stripped as the extension tail.
	assert.Equal(t, "txt", SanitizedFilename("a.txt", 'a', ModeLegacy))
}
