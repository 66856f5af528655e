package parser

import (
	"github.com/bursa-lang/bursa/ast"
	"github.com/bursa-lang/bursa/diag"
)

// parseBudgetLine parses one line of the BUDGET section: either a period
// header (`YYYY-MM`) or an allocation (`&Category AMOUNT`) under the most
// recently seen header.
func (p *Parser) parseBudgetLine() {
	start := p.cur.markStart()

	switch c := p.cur.peek(); {
	case isDigit(c):
		period, _, ok := p.parsePeriod()
		if ok {
			p.currentPeriod = period
		}
		p.cur.skipToEOL()

	case c == '&':
		if p.currentPeriod == "" {
			p.cur.skipToEOL()
			p.emit(diag.CodeInvalidToken, p.cur.spanFrom(start), "budget entry before period header")
			p.cur.skipLine()
			return
		}

		category, ok := p.parseCategoryRef()
		if !ok {
			p.cur.skipToEOL()
			p.cur.skipLine()
			return
		}

		p.cur.skipHorizontalWhitespace()
		amount, ok := p.parseAmount()
		if !ok {
			p.cur.skipToEOL()
			p.cur.skipLine()
			return
		}

		p.ledger.Budget = append(p.ledger.Budget, &ast.BudgetEntry{
			Period:   p.currentPeriod,
			Category: category,
			Amount:   amount,
			Span:     p.cur.spanFrom(start),
		})
		p.cur.skipToEOL()

	default:
		p.cur.skipToEOL()
		p.emit(diag.CodeInvalidToken, p.cur.spanFrom(start), "")
	}

	p.cur.skipLine()
}
