package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bursa-lang/bursa/ast"
	"github.com/bursa-lang/bursa/diag"
	"github.com/bursa-lang/bursa/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportDiagnosticsReturnsTrueOnError(t *testing.T) {
	var buf bytes.Buffer
	errs := []diag.Diagnostic{diag.New(diag.CodeInvalidDate, ast.Span{}, "")}

	hadErrors := reportDiagnostics(&buf, "2026-1-1", nil, errs, nil)

	assert.True(t, hadErrors)
	assert.Contains(t, buf.String(), string(diag.CodeInvalidDate))
}

func TestReportDiagnosticsReturnsFalseForWarningsOnly(t *testing.T) {
	var buf bytes.Buffer
	warnings := []diag.Diagnostic{diag.New(diag.CodeRedundantAlias, ast.Span{}, "")}

	hadErrors := reportDiagnostics(&buf, "", nil, nil, warnings)

	assert.False(t, hadErrors)
	assert.Contains(t, buf.String(), string(diag.CodeRedundantAlias))
}

func TestReportDiagnosticsProducesNoOutputWhenClean(t *testing.T) {
	var buf bytes.Buffer

	hadErrors := reportDiagnostics(&buf, "", nil, nil, nil)

	assert.False(t, hadErrors)
	assert.Equal(t, 0, buf.Len())
}

func TestLoadStdinSkipsFileRead(t *testing.T) {
	f := &FileOrStdin{Filename: "<stdin>", Contents: []byte(">>> META\ncommodity: USD\n")}

	res, source, err := load(context.Background(), f)

	require.NoError(t, err)
	assert.Empty(t, res.Errors)
	assert.True(t, res.Data.Meta.Commodities["USD"])
	assert.Equal(t, f.Contents, source)
}

func TestLoadFileRoutesThroughLoaderAndTimesTheRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.bursa")
	require.NoError(t, os.WriteFile(path, []byte(">>> LEDGER\n@A\n  2026-01-01 +5 USD &Op\n"), 0o644))

	collector := telemetry.NewTimingCollector()
	ctx := telemetry.WithCollector(context.Background(), collector)

	f := &FileOrStdin{Filename: path}
	res, source, err := load(ctx, f)

	require.NoError(t, err)
	assert.Len(t, res.Data.Ledger, 1)
	assert.Equal(t, ">>> LEDGER\n@A\n  2026-01-01 +5 USD &Op\n", string(source))

	var report bytes.Buffer
	collector.Report(&report)
	assert.Contains(t, report.String(), "loader.read")
	assert.Contains(t, report.String(), "lex+parse")
}
