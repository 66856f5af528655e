package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileOrStdinResolveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.bursa")
	require.NoError(t, os.WriteFile(path, []byte(">>> META\n"), 0o644))

	var f FileOrStdin
	require.NoError(t, f.resolve(path))
	assert.Equal(t, path, f.Filename)
	assert.Nil(t, f.Contents)

	source, err := f.Source()
	require.NoError(t, err)
	assert.Equal(t, ">>> META\n", string(source))
}

func TestFileOrStdinResolveMissingFileErrors(t *testing.T) {
	var f FileOrStdin
	err := f.resolve(filepath.Join(t.TempDir(), "missing.bursa"))
	assert.Error(t, err)
}

func TestFileOrStdinAbsolutePath(t *testing.T) {
	f := FileOrStdin{Filename: "<stdin>"}
	assert.Equal(t, "<stdin>", f.AbsolutePath())

	f = FileOrStdin{Filename: "relative.bursa"}
	abs := f.AbsolutePath()
	assert.True(t, filepath.IsAbs(abs))
}

func TestIsTerminalFalseInTestEnvironment(t *testing.T) {
	// go test's stdin is never a TTY, so this should be deterministic here.
	assert.False(t, isTerminal())
}

func TestPromptOverwriteReturnsFalseWithoutTerminal(t *testing.T) {
	confirm, err := promptOverwrite("whatever.bursa")
	require.NoError(t, err)
	assert.False(t, confirm)
}
