package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortLedgerBySpanOrdersByStartPosition(t *testing.T) {
	entries := []LedgerEntry{
		&Transaction{Span: Span{Start: Pos{Line: 5, Col: 1}}},
		&Assertion{Span: Span{Start: Pos{Line: 2, Col: 3}}},
		&Transaction{Span: Span{Start: Pos{Line: 2, Col: 1}}},
	}

	SortLedgerBySpan(entries)

	assert.Equal(t, 2, entries[0].GetSpan().Start.Line)
	assert.Equal(t, 1, entries[0].GetSpan().Start.Col)
	assert.Equal(t, 2, entries[1].GetSpan().Start.Line)
	assert.Equal(t, 3, entries[1].GetSpan().Start.Col)
	assert.Equal(t, 5, entries[2].GetSpan().Start.Line)
}

func TestSortBudgetBySpanOrdersByStartPosition(t *testing.T) {
	entries := []*BudgetEntry{
		{Span: Span{Start: Pos{Line: 9, Col: 1}}},
		{Span: Span{Start: Pos{Line: 3, Col: 1}}},
	}

	SortBudgetBySpan(entries)

	assert.Equal(t, 3, entries[0].Span.Start.Line)
	assert.Equal(t, 9, entries[1].Span.Start.Line)
}
