package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/sanitize-filenames/internal/config"
)

func TestConfigure_ExplicitModes(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	Configure(config.ColorAlways)
	assert.True(t, Enabled())
	assert.NotEmpty(t, Green)

	Configure(config.ColorNever)
	assert.False(t, Enabled())
	assert.Empty(t, Green)
	assert.Empty(t, NC)
}

func TestResolve_AutoOnRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, resolve(config.ColorAuto, f), "a regular file is not a terminal")
}

func TestIsTerminal_Nil(t *testing.T) {
	assert.False(t, IsTerminal(nil))
}
