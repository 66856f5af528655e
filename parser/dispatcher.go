package parser

import "github.com/bursa-lang/bursa/diag"

// run is the main loop: skip blank lines, dispatch on the first
// non-whitespace character and the active section, and repeat until EOF.
// Every line parser it calls is responsible for consuming its entire line
// (including the terminating newline) on both success and failure, so run
// always re-enters at the start of a fresh line.
func (p *Parser) run() {
	for {
		p.cur.skipBlankLines()
		if p.cur.atEOF() {
			return
		}

		p.cur.skipHorizontalWhitespace()
		if p.cur.atEOF() {
			return
		}

		switch c := p.cur.peek(); {
		case c == ';':
			p.cur.skipLine()
		case c == '>':
			p.parseSectionMarker()
		case p.section == sectionMeta:
			p.parseMetaLine()
		case p.section == sectionBudget:
			p.parseBudgetLine()
		case p.section == sectionLedger:
			p.parseLedgerLine()
		default:
			start := p.cur.markStart()
			p.cur.skipToEOL()
			span := p.cur.spanFrom(start)
			p.emit(diag.CodeContentBeforeMark, span, "")
			p.cur.skipLine()
		}
	}
}

// parseSectionMarker recognizes `>>> NAME` and updates section state.
// Switching sections resets currentPeriod and currentAccount — a stray
// transaction can never attach to an account header from a previous LEDGER
// block.
func (p *Parser) parseSectionMarker() {
	start := p.cur.markStart()

	if !p.cur.peekString(">>>") {
		p.cur.skipToEOL()
		span := p.cur.spanFrom(start)
		p.emit(diag.CodeInvalidToken, span, "expected '>>>'")
		p.cur.skipLine()
		return
	}
	p.cur.advance()
	p.cur.advance()
	p.cur.advance()

	p.cur.skipHorizontalWhitespace()
	name, nameSpan, ok := p.parseIdentifier()
	if !ok {
		p.cur.skipToEOL()
		span := p.cur.spanFrom(start)
		p.emit(diag.CodeInvalidToken, span, "unknown section")
		p.cur.skipLine()
		return
	}

	switch name {
	case "META":
		p.section = sectionMeta
	case "BUDGET":
		p.section = sectionBudget
	case "LEDGER":
		p.section = sectionLedger
	default:
		p.emit(diag.CodeInvalidToken, nameSpan, "unknown section")
		p.cur.skipLine()
		return
	}

	p.currentPeriod = ""
	p.currentAccount = nil
	p.cur.skipLine()
}
