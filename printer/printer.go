// Package printer renders a parsed ast.Ledger back to canonical .bursa
// text. It never tries to reproduce the original source layout — the parser
// discards whitespace and standalone comment lines, keeping only each
// entry's trailing comment, which is printed after the entry. Instead it
// lays out a fresh, consistently
// aligned rendering from the structured Ledger, the same relationship the
// teacher's formatter package has to its own parser.
package printer

import (
	"strings"

	"github.com/bursa-lang/bursa/ast"
	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/slices"
)

const (
	// Indentation is the number of spaces ledger/budget entries are
	// indented under their section header.
	Indentation = 2

	// MinimumSpacing is the minimum gap left between an entry's prefix
	// and its amount before the commodity column.
	MinimumSpacing = 2

	// DateWidth is the display width of a formatted YYYY-MM-DD date.
	DateWidth = 10
)

// Print renders l as canonical .bursa source text.
func Print(l *ast.Ledger) string {
	var buf strings.Builder

	if hasMeta(l.Meta) {
		printMeta(&buf, l.Meta)
	}
	if len(l.Budget) > 0 {
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		printBudget(&buf, l.Budget)
	}
	if len(l.Ledger) > 0 {
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		printLedger(&buf, l.Ledger)
	}

	return buf.String()
}

func hasMeta(m *ast.Meta) bool {
	return m != nil && (len(m.Commodities) > 0 || len(m.Aliases) > 0 || len(m.Untracked) > 0)
}

func printMeta(buf *strings.Builder, m *ast.Meta) {
	buf.WriteString(">>> META\n")

	commodities := make([]string, 0, len(m.Commodities))
	for c := range m.Commodities {
		commodities = append(commodities, c)
	}
	slices.Sort(commodities)
	for _, c := range commodities {
		buf.WriteString("commodity: ")
		buf.WriteString(c)
		buf.WriteByte('\n')
	}

	aliases := make([]string, 0, len(m.Aliases))
	for symbol := range m.Aliases {
		aliases = append(aliases, symbol)
	}
	slices.Sort(aliases)
	for _, symbol := range aliases {
		buf.WriteString("alias: ")
		buf.WriteString(symbol)
		buf.WriteString(" = ")
		buf.WriteString(m.Aliases[symbol])
		buf.WriteByte('\n')
	}

	for _, pattern := range m.Untracked {
		buf.WriteString("untracked: ")
		buf.WriteString(pattern)
		buf.WriteByte('\n')
	}
}

func printBudget(buf *strings.Builder, entries []*ast.BudgetEntry) {
	buf.WriteString(">>> BUDGET\n")

	column := budgetColumn(entries)
	period := ""
	for _, e := range entries {
		if e.Period != period {
			period = e.Period
			buf.WriteString(period)
			buf.WriteByte('\n')
		}
		prefix := strings.Repeat(" ", Indentation) + e.Category.Raw
		buf.WriteString(prefix)
		writeAmountAligned(buf, e.Amount, runewidth.StringWidth(prefix), column)
		buf.WriteByte('\n')
	}
}

func printLedger(buf *strings.Builder, entries []ast.LedgerEntry) {
	buf.WriteString(">>> LEDGER\n")

	column := ledgerColumn(entries)
	account := ""
	for _, e := range entries {
		ref := e.GetAccount()
		if ref.Raw != account {
			account = ref.Raw
			buf.WriteString(account)
			buf.WriteByte('\n')
		}
		printEntry(buf, e, column)
	}
}

func printEntry(buf *strings.Builder, e ast.LedgerEntry, column int) {
	prefix := strings.Repeat(" ", Indentation)
	if e.GetUnverified() {
		prefix += "? "
	}
	prefix += e.GetDate() + " "

	switch entry := e.(type) {
	case *ast.Assertion:
		buf.WriteString(prefix)
		buf.WriteString("== ")
		writeAmountAligned(buf, entry.Amount, runewidth.StringWidth(prefix)+3, column)
		writeComment(buf, entry.Comment)
		buf.WriteByte('\n')

	case *ast.Transaction:
		sign := entry.Amount.Sign.String()
		buf.WriteString(prefix)
		buf.WriteString(sign)
		writeAmountAligned(buf, entry.Amount, runewidth.StringWidth(prefix)+runewidth.StringWidth(sign), column)
		buf.WriteByte(' ')
		writeTarget(buf, entry.Target)
		for _, tag := range entry.Tags {
			buf.WriteByte(' ')
			buf.WriteString(tag.Raw)
		}
		writeComment(buf, entry.Comment)
		buf.WriteByte('\n')
	}
}

func writeTarget(buf *strings.Builder, t ast.Target) {
	switch target := t.(type) {
	case ast.CategoryTarget:
		buf.WriteString(target.Ref.Raw)
	case ast.AccountTarget:
		buf.WriteString(target.Ref.Raw)
		if target.Category != nil {
			buf.WriteByte(' ')
			buf.WriteString(target.Category.Raw)
		}
	case ast.SwapTarget:
		buf.WriteString(target.Amount.Sign.String())
		buf.WriteString(target.Amount.Raw)
		buf.WriteByte(' ')
		buf.WriteString(target.Amount.Commodity)
	}
}

func writeComment(buf *strings.Builder, comment string) {
	if comment == "" {
		return
	}
	buf.WriteString(" ; ")
	buf.WriteString(comment)
}

// writeAmountAligned writes amount's sign and numeral, padded on the left so
// the numeral ends at column, then a space and the commodity. currentWidth
// is the display width already written on the current line.
func writeAmountAligned(buf *strings.Builder, amount ast.Amount, currentWidth, column int) {
	numeral := amount.Sign.String() + amount.Raw
	numWidth := runewidth.StringWidth(numeral)
	padding := column - currentWidth - numWidth
	if padding < MinimumSpacing {
		padding = MinimumSpacing
	}
	buf.WriteString(strings.Repeat(" ", padding))
	buf.WriteString(numeral)
	buf.WriteByte(' ')
	buf.WriteString(amount.Commodity)
}

// ledgerColumn computes the commodity column wide enough to fit every
// entry's numeral without crowding.
func ledgerColumn(entries []ast.LedgerEntry) int {
	widest := 0
	for _, e := range entries {
		var amount ast.Amount
		switch entry := e.(type) {
		case *ast.Assertion:
			amount = entry.Amount
		case *ast.Transaction:
			amount = entry.Amount
		}
		widest = max(widest, runewidth.StringWidth(amount.Raw))
	}
	return Indentation + DateWidth + 2 + widest + MinimumSpacing
}

func budgetColumn(entries []*ast.BudgetEntry) int {
	widestPrefix, widestNum := 0, 0
	for _, e := range entries {
		widestPrefix = max(widestPrefix, runewidth.StringWidth(e.Category.Raw))
		widestNum = max(widestNum, runewidth.StringWidth(e.Amount.Raw))
	}
	return Indentation + widestPrefix + MinimumSpacing + widestNum + MinimumSpacing
}
