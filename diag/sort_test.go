package diag

import (
	"testing"

	"github.com/bursa-lang/bursa/ast"
	"github.com/stretchr/testify/assert"
)

func TestSortBySpanOrdersAscending(t *testing.T) {
	diagnostics := []Diagnostic{
		New(CodeInvalidToken, ast.Span{Start: ast.Pos{Line: 10, Col: 1}}, ""),
		New(CodeInvalidDate, ast.Span{Start: ast.Pos{Line: 2, Col: 5}}, ""),
		New(CodeMalformedAmount, ast.Span{Start: ast.Pos{Line: 2, Col: 1}}, ""),
	}

	SortBySpan(diagnostics)

	assert.Equal(t, CodeMalformedAmount, diagnostics[0].Code)
	assert.Equal(t, CodeInvalidDate, diagnostics[1].Code)
	assert.Equal(t, CodeInvalidToken, diagnostics[2].Code)
}
