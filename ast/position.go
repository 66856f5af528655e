// Package ast declares the data model produced by the Bursa parser: spans,
// amounts, reference nodes, targets, ledger entries, budget entries and the
// root Ledger value. Every type here is a plain value — the parser is the
// only producer, and nothing in this package does any parsing itself.
package ast

import "fmt"

// Pos is a single 1-based source location.
type Pos struct {
	Line int
	Col  int
}

// String renders the position as "line:col".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span is a half-open source range: [Start, End). End marks the position
// immediately after the last consumed character, so an empty span has
// Start == End. Every node the parser produces carries one.
type Span struct {
	Start Pos
	End   Pos
}

// Valid reports whether Start does not come after End, the one invariant
// every span the parser emits must satisfy.
func (s Span) Valid() bool {
	if s.Start.Line != s.End.Line {
		return s.Start.Line < s.End.Line
	}
	return s.Start.Col <= s.End.Col
}

// String renders the span as "start-end".
func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
