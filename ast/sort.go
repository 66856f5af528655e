package ast

import "golang.org/x/exp/slices"

// compareSpan orders two spans by start line, then start column.
func compareSpan(a, b Span) int {
	if a.Start.Line != b.Start.Line {
		return a.Start.Line - b.Start.Line
	}
	return a.Start.Col - b.Start.Col
}

// SortLedgerBySpan sorts entries in place by ascending source position.
// The parser already appends entries in source order, so this is only
// needed by callers that reassemble a Ledger from multiple files or
// otherwise lose that ordering.
func SortLedgerBySpan(entries []LedgerEntry) {
	slices.SortFunc(entries, func(a, b LedgerEntry) int {
		return compareSpan(a.GetSpan(), b.GetSpan())
	})
}

// SortBudgetBySpan sorts budget entries in place by ascending source
// position, for the same reason SortLedgerBySpan exists.
func SortBudgetBySpan(entries []*BudgetEntry) {
	slices.SortFunc(entries, func(a, b *BudgetEntry) int {
		return compareSpan(a.Span, b.Span)
	})
}
