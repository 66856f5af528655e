package diag

import (
	"github.com/bursa-lang/bursa/ast"
	"golang.org/x/exp/slices"
)

// compareSpan orders two spans by start line, then start column — the same
// ordering spec.md's diagnostic reports use when presenting multiple
// findings for one file.
func compareSpan(a, b ast.Span) int {
	if a.Start.Line != b.Start.Line {
		return a.Start.Line - b.Start.Line
	}
	return a.Start.Col - b.Start.Col
}

// SortBySpan sorts diagnostics in place by ascending source position, so a
// report always reads top-to-bottom through the file regardless of the
// order the parser happened to emit them in.
func SortBySpan(diagnostics []Diagnostic) {
	slices.SortFunc(diagnostics, func(a, b Diagnostic) int {
		return compareSpan(a.Span, b.Span)
	})
}
