package parser

import (
	"github.com/bursa-lang/bursa/ast"
	"github.com/bursa-lang/bursa/diag"
)

// parseMetaLine parses one line of the META section: `keyword: ...`.
func (p *Parser) parseMetaLine() {
	start := p.cur.markStart()

	keyword, _, ok := p.parseIdentifier()
	if !ok {
		p.cur.skipToEOL()
		p.emit(diag.CodeInvalidToken, p.cur.spanFrom(start), "expected directive keyword")
		p.cur.skipLine()
		return
	}

	if p.cur.peek() != ':' {
		p.cur.skipToEOL()
		p.emit(diag.CodeInvalidToken, p.cur.spanFrom(start), "expected ':'")
		p.cur.skipLine()
		return
	}
	p.cur.advance()
	p.cur.skipHorizontalWhitespace()

	switch keyword {
	case "commodity":
		p.parseCommodityDirective(start)
	case "alias":
		p.parseAliasDirective(start)
	case "untracked":
		p.parseUntrackedDirective(start)
	default:
		p.cur.skipToEOL()
		p.emit(diag.CodeInvalidToken, p.cur.spanFrom(start), "unknown directive")
	}

	p.cur.skipLine()
}

func (p *Parser) parseCommodityDirective(start ast.Pos) {
	name, _, ok := p.parseIdentifier()
	if !ok {
		p.cur.skipToEOL()
		p.emit(diag.CodeInvalidToken, p.cur.spanFrom(start), "expected commodity name")
		return
	}
	p.meta.Commodities[name] = true
	p.cur.skipToEOL()
}

func (p *Parser) parseAliasDirective(start ast.Pos) {
	symbol, _, ok := p.parseSymbolOrIdentifier()
	if !ok {
		p.cur.skipToEOL()
		p.emit(diag.CodeInvalidToken, p.cur.spanFrom(start), "expected alias symbol")
		return
	}

	p.cur.skipHorizontalWhitespace()
	if p.cur.peek() != '=' {
		p.cur.skipToEOL()
		p.emit(diag.CodeInvalidToken, p.cur.spanFrom(start), "expected '='")
		return
	}
	p.cur.advance()
	p.cur.skipHorizontalWhitespace()

	commodity, _, ok := p.parseIdentifier()
	if !ok {
		p.cur.skipToEOL()
		p.emit(diag.CodeInvalidToken, p.cur.spanFrom(start), "expected commodity name")
		return
	}

	p.meta.Aliases[symbol] = commodity
	p.meta.Commodities[commodity] = true
	p.cur.skipToEOL()
}

func (p *Parser) parseUntrackedDirective(start ast.Pos) {
	patternStart := p.cur.pos

	if p.cur.peek() != '@' {
		p.cur.skipToEOL()
		p.emit(diag.CodeInvalidToken, p.cur.spanFrom(start), "expected '@'")
		return
	}
	p.cur.advance()

	if p.cur.peek() == '*' {
		p.cur.advance()
	} else {
		_, _, _, ok := p.parseHierarchicalName()
		if !ok {
			p.cur.skipToEOL()
			p.emit(diag.CodeInvalidToken, p.cur.spanFrom(start), "expected identifier after '@'")
			return
		}
		if p.cur.peekString(":*") {
			p.cur.advance()
			p.cur.advance()
		}
	}

	p.meta.Untracked = append(p.meta.Untracked, p.cur.src[patternStart:p.cur.pos])
	p.cur.skipToEOL()
}
