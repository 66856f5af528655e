package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bursa-lang/bursa/diag"
	"github.com/bursa-lang/bursa/loader"
	"github.com/bursa-lang/bursa/output"
	"github.com/bursa-lang/bursa/parser"
	"github.com/bursa-lang/bursa/render"
)

// load parses f's contents, routing through loader.Load for a real file so
// the read itself is covered by the "loader.read" telemetry timer, or
// loader.LoadBytes for stdin (already in memory, nothing to time). It
// returns the parse result alongside the raw source bytes, which callers
// need for diagnostic caret context.
func load(ctx context.Context, f *FileOrStdin) (parser.Result, []byte, error) {
	if f.Filename == "<stdin>" {
		return loader.LoadBytes(ctx, f.Contents), f.Contents, nil
	}
	return loader.Load(ctx, f.Filename)
}

// reportDiagnostics prints errors and warnings from a parse result to w,
// using styles for severity coloring and source for caret context. It
// returns true if any error-severity diagnostic was printed.
func reportDiagnostics(w io.Writer, source string, styles *output.Styles, errors, warnings []diag.Diagnostic) bool {
	all := make([]diag.Diagnostic, 0, len(errors)+len(warnings))
	all = append(all, errors...)
	all = append(all, warnings...)
	diag.SortBySpan(all)

	if len(all) > 0 {
		formatter := render.NewTextFormatter(source, styles)
		_, _ = fmt.Fprintln(w, formatter.FormatAll(all))
	}

	return len(errors) > 0
}
