package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsAndParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.bursa")
	require.NoError(t, os.WriteFile(path, []byte(
		">>> LEDGER\n@A\n  2026-01-01 +5 USD &Op\n",
	), 0o644))

	res, data, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, res.Errors)
	assert.Len(t, res.Data.Ledger, 1)
	assert.Equal(t, ">>> LEDGER\n@A\n  2026-01-01 +5 USD &Op\n", string(data))
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, _, err := Load(context.Background(), "/nonexistent/path/to.bursa")
	assert.Error(t, err)
}

func TestLoadBytesParsesWithoutFilesystem(t *testing.T) {
	res := LoadBytes(context.Background(), []byte(">>> META\ncommodity: USD\n"))
	assert.Empty(t, res.Errors)
	assert.True(t, res.Data.Meta.Commodities["USD"])
}
