// Package diag defines the Diagnostic shape shared by the parser and the
// (external) semantic validator, and the fixed catalog of codes/messages
// spec.md §4.9 assigns to each. Only the parser's own codes are ever
// produced by this repository; the validator codes are reserved here so
// downstream tooling can treat both producers' output uniformly.
package diag

import "github.com/bursa-lang/bursa/ast"

// Severity is the fixed two-value severity a Diagnostic carries.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Code identifies a diagnostic's fixed kind. Codes are deliberately coarse —
// spec.md §9 notes E001 covers several unrelated conditions — so callers
// should key on Code + Span + a substring of Message, never the exact text.
type Code string

const (
	// Parser-emitted codes.
	CodeInvalidToken      Code = "E001"
	CodeMalformedAmount   Code = "E002"
	CodeInvalidDate       Code = "E003"
	CodeInvalidOrder      Code = "E009" // reserved for future enforcement
	CodeContentBeforeMark Code = "E011"

	// Reserved for the external semantic validator; never produced here.
	CodeUnknownAccount     Code = "E005"
	CodeUndeclaredCurrency Code = "E007"
	CodeAssertionMismatch  Code = "E008"
	CodeChronologyError    Code = "E010"
	CodeUnusedCategory     Code = "W001"
	CodeUnusedAccount      Code = "W002"
	CodeRedundantAlias     Code = "W003"
)

// catalog gives the default human-readable message and severity for every
// code the parser itself can emit; messages passed to New may elaborate on
// this (e.g. naming the offending token) but the code+severity are fixed.
var catalog = map[Code]struct {
	severity Severity
	message  string
}{
	CodeInvalidToken:      {SeverityError, "invalid token"},
	CodeMalformedAmount:   {SeverityError, "malformed amount"},
	CodeInvalidDate:       {SeverityError, "invalid date format"},
	CodeInvalidOrder:      {SeverityError, "invalid component order"},
	CodeContentBeforeMark: {SeverityError, "content before section marker"},

	CodeUnknownAccount:     {SeverityError, "unknown account"},
	CodeUndeclaredCurrency: {SeverityError, "undeclared currency"},
	CodeAssertionMismatch:  {SeverityError, "assertion mismatch"},
	CodeChronologyError:    {SeverityError, "chronology error"},
	CodeUnusedCategory:     {SeverityWarning, "unused category"},
	CodeUnusedAccount:      {SeverityWarning, "unused account"},
	CodeRedundantAlias:     {SeverityWarning, "redundant alias"},
}

// Diagnostic is a coded, severity-tagged note attached to a source span.
type Diagnostic struct {
	Code     Code
	Message  string
	Severity Severity
	Span     ast.Span
}

// New builds a Diagnostic for code at span, using message verbatim if
// non-empty or the catalog default otherwise. Panics on an unknown code —
// the catalog above is the single source of truth and every call site uses
// a constant, so an unknown code is a programmer error, not user input.
func New(code Code, span ast.Span, message string) Diagnostic {
	entry, ok := catalog[code]
	if !ok {
		panic("diag: unknown code " + string(code))
	}
	if message == "" {
		message = entry.message
	}
	return Diagnostic{Code: code, Message: message, Severity: entry.severity, Span: span}
}

// IsError reports whether d has error severity.
func (d Diagnostic) IsError() bool { return d.Severity == SeverityError }
