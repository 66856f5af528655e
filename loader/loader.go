// Package loader reads a .bursa file from disk and hands its contents to
// the parser. Bursa has no include directive (see spec's Non-goals), so
// unlike a multi-file loader there is nothing here to resolve or merge —
// this package exists to give file I/O its own timed, testable seam
// instead of inlining os.ReadFile into the CLI commands.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bursa-lang/bursa/parser"
	"github.com/bursa-lang/bursa/telemetry"
)

// Load reads filename and parses it, returning the parser's Result plus
// the raw bytes read (so callers needing source context for diagnostics
// don't have to read the file a second time). A file-read failure is
// returned as an error; parse-time problems are never errors — they
// arrive as entries in Result.Errors.
func Load(ctx context.Context, filename string) (parser.Result, []byte, error) {
	timer := telemetry.FromContext(ctx).Start(fmt.Sprintf("loader.read %s", filepath.Base(filename)))
	data, err := os.ReadFile(filename)
	timer.End()
	if err != nil {
		return parser.Result{}, nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	parseTimer := telemetry.FromContext(ctx).Start("lex+parse")
	defer parseTimer.End()
	return parser.Parse(string(data)), data, nil
}

// LoadBytes parses data already in memory, without touching the
// filesystem — used by tests and by commands that read from stdin.
func LoadBytes(ctx context.Context, data []byte) parser.Result {
	timer := telemetry.FromContext(ctx).Start("lex+parse")
	defer timer.End()
	return parser.Parse(string(data))
}
