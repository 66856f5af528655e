package parser

import (
	"strings"

	"github.com/bursa-lang/bursa/ast"
	"github.com/bursa-lang/bursa/diag"
	"github.com/shopspring/decimal"
)

// currencySymbols is the fixed set of recognized currency sigils. This is
// the exact set spec.md §4.2 mandates; implementations must not extend it.
var currencySymbols = map[rune]bool{
	'$': true, '€': true, '£': true, '¥': true,
	'₹': true, '₽': true, '₩': true, '₪': true, '฿': true,
}

// parseIdentifier scans a maximal run of [A-Za-z0-9_]. An empty result is a
// parse failure at the call site — this primitive itself never emits a
// diagnostic, since the right message depends on what the caller expected.
func (p *Parser) parseIdentifier() (string, ast.Span, bool) {
	start := p.cur.markStart()
	startPos := p.cur.pos
	for isIdentRune(p.cur.peek()) {
		p.cur.advance()
	}
	if p.cur.pos == startPos {
		return "", p.cur.spanFrom(start), false
	}
	return p.cur.src[startPos:p.cur.pos], p.cur.spanFrom(start), true
}

// parseHierarchicalName scans one identifier, then zero or more ':'
// followed by another identifier. A trailing ':' not followed by an
// identifier character is left unconsumed.
func (p *Parser) parseHierarchicalName() (string, []string, ast.Span, bool) {
	start := p.cur.markStart()
	startPos := p.cur.pos

	first, _, ok := p.parseIdentifier()
	if !ok {
		return "", nil, p.cur.spanFrom(start), false
	}

	segments := []string{first}
	for p.cur.peek() == ':' {
		save := *p.cur
		p.cur.advance() // ':'
		seg, _, ok := p.parseIdentifier()
		if !ok {
			*p.cur = save
			break
		}
		segments = append(segments, seg)
	}

	name := p.cur.src[startPos:p.cur.pos]
	return name, segments, p.cur.spanFrom(start), true
}

// parseCurrencySymbol consumes one currency symbol if present.
func (p *Parser) parseCurrencySymbol() (string, bool) {
	r := p.cur.peek()
	if !currencySymbols[r] {
		return "", false
	}
	p.cur.advance()
	return string(r), true
}

// parseSymbolOrIdentifier reads a currency symbol if present, otherwise an
// identifier — the `parseSymbol` production used by `alias:` directives.
func (p *Parser) parseSymbolOrIdentifier() (string, ast.Span, bool) {
	start := p.cur.markStart()
	if sym, ok := p.parseCurrencySymbol(); ok {
		return sym, p.cur.spanFrom(start), true
	}
	ident, span, ok := p.parseIdentifier()
	if !ok {
		return "", p.cur.spanFrom(start), false
	}
	return ident, span, true
}

// parseDate parses a fixed-shape DDDD-DD-DD date. Any deviation emits E003
// on the attempted span and fails; the enclosing line parser must abort.
func (p *Parser) parseDate() (string, ast.Span, bool) {
	start := p.cur.markStart()
	startPos := p.cur.pos

	ok := p.matchDigits(4) && p.matchLiteral('-') && p.matchDigits(2) &&
		p.matchLiteral('-') && p.matchDigits(2)

	span := p.cur.spanFrom(start)
	if !ok {
		p.cur.pos, p.cur.line, p.cur.col = startPos, start.Line, start.Col
		p.emit(diag.CodeInvalidDate, span, "")
		return "", span, false
	}
	return p.cur.src[startPos:p.cur.pos], span, true
}

// parsePeriod parses a fixed-shape DDDD-DD year-month header. Deviation
// emits E001 and fails.
func (p *Parser) parsePeriod() (string, ast.Span, bool) {
	start := p.cur.markStart()
	startPos := p.cur.pos

	ok := p.matchDigits(4) && p.matchLiteral('-') && p.matchDigits(2)

	span := p.cur.spanFrom(start)
	if !ok {
		p.cur.pos, p.cur.line, p.cur.col = startPos, start.Line, start.Col
		p.emit(diag.CodeInvalidToken, span, "invalid period")
		return "", span, false
	}
	return p.cur.src[startPos:p.cur.pos], span, true
}

// matchDigits consumes exactly n digits, or none at all on failure.
func (p *Parser) matchDigits(n int) bool {
	save := *p.cur
	for i := 0; i < n; i++ {
		if !isDigit(p.cur.peek()) {
			*p.cur = save
			return false
		}
		p.cur.advance()
	}
	return true
}

// matchLiteral consumes a single expected rune, or nothing on failure.
func (p *Parser) matchLiteral(r rune) bool {
	if p.cur.peek() != r {
		return false
	}
	p.cur.advance()
	return true
}

// parseAmount parses the flexible amount lexeme: optional sign, optional
// leading commodity symbol, a decimal numeral, and — if no leading
// commodity was seen — a trailing symbol or identifier. Alias resolution
// is applied immediately, using the alias map as it stands at this point in
// the file (spec.md §4.2 step 5, §9).
func (p *Parser) parseAmount() (ast.Amount, bool) {
	start := p.cur.markStart()

	sign := ast.SignUnspecified
	switch p.cur.peek() {
	case '+':
		sign = ast.SignPositive
		p.cur.advance()
	case '-':
		sign = ast.SignNegative
		p.cur.advance()
	}

	leadingCommodity, hasLeading := p.parseCurrencySymbol()

	numStart := p.cur.pos
	sawDigit := false
	for isDigit(p.cur.peek()) {
		p.cur.advance()
		sawDigit = true
	}
	if p.cur.peek() == '.' {
		save := *p.cur
		p.cur.advance()
		if isDigit(p.cur.peek()) {
			for isDigit(p.cur.peek()) {
				p.cur.advance()
				sawDigit = true
			}
		} else {
			*p.cur = save // ".": a dot alone is rejected, not consumed
		}
	}
	numeral := p.cur.src[numStart:p.cur.pos]

	if !sawDigit {
		span := p.cur.spanFrom(start)
		p.emit(diag.CodeMalformedAmount, span, "")
		return ast.Amount{}, false
	}

	value, err := decimal.NewFromString(numeral)
	if err != nil {
		span := p.cur.spanFrom(start)
		p.emit(diag.CodeMalformedAmount, span, "")
		return ast.Amount{}, false
	}

	commodity := leadingCommodity
	if !hasLeading {
		save := *p.cur
		p.cur.skipHorizontalWhitespace()
		if sym, ok := p.parseCurrencySymbol(); ok {
			commodity = sym
		} else if ident, _, ok := p.parseIdentifier(); ok {
			commodity = ident
		} else {
			*p.cur = save
		}
	}

	span := p.cur.spanFrom(start)
	if commodity == "" {
		p.emit(diag.CodeMalformedAmount, span, "missing commodity")
		return ast.Amount{}, false
	}

	// Resolving against the alias map does not declare the commodity —
	// "commodity declared" checking belongs to the external semantic
	// validator (spec §1), so usage here never mutates meta.Commodities.
	resolved := p.meta.ResolveSymbol(commodity)

	return ast.Amount{
		Sign:      sign,
		Value:     value,
		Raw:       numeral,
		Commodity: resolved,
		Span:      span,
	}, true
}

// parseRef implements the shared grammar behind AccountRef/CategoryRef/
// TagRef: a leading sigil, then a hierarchical name. An empty name after
// the sigil is E001.
func (p *Parser) parseRef(sigil rune) (string, []string, ast.Span, bool) {
	start := p.cur.markStart()
	startPos := p.cur.pos
	if p.cur.peek() != sigil {
		span := p.cur.spanFrom(start)
		p.emit(diag.CodeInvalidToken, span, "expected '"+string(sigil)+"'")
		return "", nil, span, false
	}
	p.cur.advance()

	_, segments, _, ok := p.parseHierarchicalName()
	span := p.cur.spanFrom(start)
	if !ok {
		p.emit(diag.CodeInvalidToken, span, "expected identifier after '"+string(sigil)+"'")
		return "", nil, span, false
	}

	return p.cur.src[startPos:p.cur.pos], segments, span, true
}

func (p *Parser) parseAccountRef() (ast.AccountRef, bool) {
	raw, segments, span, ok := p.parseRef('@')
	if !ok {
		return ast.AccountRef{}, false
	}
	return ast.AccountRef{Path: segments, Raw: raw, Span: span}, true
}

func (p *Parser) parseCategoryRef() (ast.CategoryRef, bool) {
	raw, segments, span, ok := p.parseRef('&')
	if !ok {
		return ast.CategoryRef{}, false
	}
	return ast.CategoryRef{Path: segments, Raw: raw, Span: span}, true
}

func (p *Parser) parseTagRef() (ast.TagRef, bool) {
	raw, segments, span, ok := p.parseRef('#')
	if !ok {
		return ast.TagRef{}, false
	}
	return ast.TagRef{Path: segments, Raw: raw, Span: span}, true
}

// parseComment consumes a leading ';', horizontal whitespace, and the rest
// of the line (trimmed of trailing whitespace). Empty comments become "".
func (p *Parser) parseComment() string {
	if p.cur.peek() != ';' {
		return ""
	}
	p.cur.advance()
	p.cur.skipHorizontalWhitespace()

	start := p.cur.pos
	p.cur.skipToEOL()
	return strings.TrimRight(p.cur.src[start:p.cur.pos], " \t\r")
}

// tryParseComment parses a trailing comment if one is present after
// skipping horizontal whitespace, otherwise leaves the cursor untouched and
// returns "".
func (p *Parser) tryParseComment() string {
	save := *p.cur
	p.cur.skipHorizontalWhitespace()
	if p.cur.peek() != ';' {
		*p.cur = save
		return ""
	}
	return p.parseComment()
}
