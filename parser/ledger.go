package parser

import (
	"github.com/bursa-lang/bursa/ast"
	"github.com/bursa-lang/bursa/diag"
)

// parseLedgerLine parses one line of the LEDGER section: an @Account
// header, or a (possibly unverified) dated transaction/assertion under the
// most recently seen header.
func (p *Parser) parseLedgerLine() {
	start := p.cur.markStart()

	switch c := p.cur.peek(); {
	case c == '@':
		account, ok := p.parseAccountRef()
		if ok {
			p.currentAccount = &account
		}
		p.cur.skipLine()

	case c == '?' || isDigit(c):
		if p.currentAccount == nil {
			p.cur.skipToEOL()
			p.emit(diag.CodeInvalidToken, p.cur.spanFrom(start), "entry before account header")
			p.cur.skipLine()
			return
		}
		p.parseLedgerEntry(start, *p.currentAccount)

	default:
		p.cur.skipToEOL()
		p.emit(diag.CodeInvalidToken, p.cur.spanFrom(start), "")
		p.cur.skipLine()
	}
}

// parseLedgerEntry parses the body of a ledger entry once currentAccount is
// known to be set: an optional '?', a date, and either a `==` assertion or
// a transaction.
func (p *Parser) parseLedgerEntry(start ast.Pos, account ast.AccountRef) {
	unverified := false
	if p.cur.peek() == '?' {
		p.cur.advance()
		unverified = true
		p.cur.skipHorizontalWhitespace()
	}

	date, _, ok := p.parseDate()
	if !ok {
		p.cur.skipLine()
		return
	}

	p.cur.skipHorizontalWhitespace()

	if p.cur.peekString("==") {
		p.parseAssertion(start, account, unverified, date)
		return
	}
	p.parseTransaction(start, account, unverified, date)
}

// parseAssertion parses `== AMOUNT [; comment]` after the date has already
// been consumed.
func (p *Parser) parseAssertion(start ast.Pos, account ast.AccountRef, unverified bool, date string) {
	p.cur.advance() // '='
	p.cur.advance() // '='
	p.cur.skipHorizontalWhitespace()

	amount, ok := p.parseAmount()
	if !ok {
		p.cur.skipLine()
		return
	}

	comment := p.tryParseComment()
	span := p.cur.spanFrom(start)

	p.ledger.Ledger = append(p.ledger.Ledger, &ast.Assertion{
		Date:       date,
		Account:    account,
		Unverified: unverified,
		Amount:     amount,
		Comment:    comment,
		Span:       span,
	})
	p.cur.skipLine()
}

// parseTransaction parses `AMOUNT TARGET [#TAG...] [; comment]` after the
// date has already been consumed.
func (p *Parser) parseTransaction(start ast.Pos, account ast.AccountRef, unverified bool, date string) {
	amount, ok := p.parseAmount()
	if !ok {
		p.cur.skipLine()
		return
	}

	p.cur.skipHorizontalWhitespace()
	target, ok := p.parseTarget()
	if !ok {
		p.cur.skipLine()
		return
	}

	var tags []ast.TagRef
	for {
		save := *p.cur
		p.cur.skipHorizontalWhitespace()
		if p.cur.peek() != '#' {
			*p.cur = save
			break
		}
		tag, ok := p.parseTagRef()
		if !ok {
			p.cur.skipLine()
			return
		}
		tags = append(tags, tag)
	}

	comment := p.tryParseComment()
	span := p.cur.spanFrom(start)

	p.ledger.Ledger = append(p.ledger.Ledger, &ast.Transaction{
		Date:       date,
		Account:    account,
		Unverified: unverified,
		Amount:     amount,
		Target:     target,
		Tags:       tags,
		Comment:    comment,
		Span:       span,
	})
	p.cur.skipLine()
}

// parseTarget dispatches on a single character of lookahead to one of the
// Target variants: &Category, @Account[ &Category], or a second amount
// (Swap).
func (p *Parser) parseTarget() (ast.Target, bool) {
	switch c := p.cur.peek(); {
	case c == '&':
		ref, ok := p.parseCategoryRef()
		if !ok {
			return nil, false
		}
		return ast.CategoryTarget{Ref: ref}, true

	case c == '@':
		ref, ok := p.parseAccountRef()
		if !ok {
			return nil, false
		}

		var category *ast.CategoryRef
		save := *p.cur
		p.cur.skipHorizontalWhitespace()
		if p.cur.peek() == '&' {
			cat, ok := p.parseCategoryRef()
			if !ok {
				return nil, false
			}
			category = &cat
		} else {
			*p.cur = save
		}

		return ast.AccountTarget{Ref: ref, Category: category}, true

	case c == '+' || c == '-' || isDigit(c) || currencySymbols[c]:
		amount, ok := p.parseAmount()
		if !ok {
			return nil, false
		}
		return ast.SwapTarget{Amount: amount}, true

	default:
		start := p.cur.markStart()
		p.cur.skipToEOL()
		p.emit(diag.CodeInvalidToken, p.cur.spanFrom(start), "invalid token")
		return nil, false
	}
}
