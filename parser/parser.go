package parser

import (
	"github.com/bursa-lang/bursa/ast"
	"github.com/bursa-lang/bursa/diag"
)

// section identifies which of the three top-level sections is active.
type section int

const (
	sectionNone section = iota
	sectionMeta
	sectionBudget
	sectionLedger
)

// Parser is a fused lexer+parser: it threads (section, currentAccount,
// currentPeriod) as local state for the duration of one Parse call. Nothing
// here is shared across calls — each Parse constructs its own Parser.
type Parser struct {
	cur    *cursor
	meta   *ast.Meta
	ledger *ast.Ledger

	errors   []diag.Diagnostic
	warnings []diag.Diagnostic

	section        section
	currentAccount *ast.AccountRef
	currentPeriod  string
}

// Result is what Parse returns: the structured Ledger plus the diagnostics
// accumulated while producing it, split by severity.
type Result struct {
	Data     *ast.Ledger
	Errors   []diag.Diagnostic
	Warnings []diag.Diagnostic
}

// Parse turns Bursa source text into a Ledger plus diagnostics. It is a
// pure function of source: no I/O, no shared state, linear time in len(source).
func Parse(source string) Result {
	p := &Parser{
		cur:    newCursor(source),
		meta:   ast.NewMeta(),
		ledger: ast.NewLedger(),
	}
	p.run()
	p.ledger.Meta = p.meta
	return Result{Data: p.ledger, Errors: p.errors, Warnings: p.warnings}
}

// emit appends a diagnostic, routing it to Errors or Warnings by severity.
func (p *Parser) emit(code diag.Code, span ast.Span, message string) {
	d := diag.New(code, span, message)
	if d.IsError() {
		p.errors = append(p.errors, d)
	} else {
		p.warnings = append(p.warnings, d)
	}
}
