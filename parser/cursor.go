// Package parser implements Bursa's fused lexer+parser: a single pass over
// the source text that dispatches line by line and builds the final
// ast.Ledger directly, with no intermediate token stream. See cursor.go for
// the character-advancing primitives, primitives.go for the shared grammar
// fragments (identifiers, amounts, references), and dispatcher.go/meta.go/
// budget.go/ledger.go for the three section grammars.
package parser

import (
	"unicode/utf8"

	"github.com/bursa-lang/bursa/ast"
)

// cursor walks the source string one rune at a time, tracking 1-based
// line/column position. Implementations may accept "\r\n" line endings by
// treating '\r' as horizontal whitespace, which is what this cursor does —
// a CRLF file parses identically to its LF counterpart.
type cursor struct {
	src  string
	pos  int // byte offset
	line int // 1-indexed
	col  int // 1-indexed
}

func newCursor(src string) *cursor {
	return &cursor{src: src, line: 1, col: 1}
}

// atEOF reports whether the cursor has consumed the entire source.
func (c *cursor) atEOF() bool {
	return c.pos >= len(c.src)
}

// peek returns the rune at the current position without consuming it, or
// the zero rune at end of input.
func (c *cursor) peek() rune {
	if c.atEOF() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.pos:])
	return r
}

// peekAt returns the rune n runes ahead of the current position (0 is the
// current position), without consuming anything.
func (c *cursor) peekAt(n int) rune {
	pos := c.pos
	var r rune
	for i := 0; i <= n; i++ {
		if pos >= len(c.src) {
			return 0
		}
		var size int
		r, size = utf8.DecodeRuneInString(c.src[pos:])
		pos += size
	}
	return r
}

// peekString reports whether the source at the current position starts with
// s, without consuming anything.
func (c *cursor) peekString(s string) bool {
	return len(c.src)-c.pos >= len(s) && c.src[c.pos:c.pos+len(s)] == s
}

// advance consumes and returns one rune, updating line/col. A newline
// resets col to 1 and increments line; anything else just advances col by
// one rune.
func (c *cursor) advance() rune {
	if c.atEOF() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(c.src[c.pos:])
	c.pos += size
	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return r
}

// markStart snapshots the current position to later pair with spanFrom.
func (c *cursor) markStart() ast.Pos {
	return ast.Pos{Line: c.line, Col: c.col}
}

// spanFrom pairs a previously captured start with the current position.
func (c *cursor) spanFrom(start ast.Pos) ast.Span {
	return ast.Span{Start: start, End: ast.Pos{Line: c.line, Col: c.col}}
}

// isHorizontalWhitespace reports whether r is a space, tab, or carriage
// return — never a newline.
func isHorizontalWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

// skipHorizontalWhitespace consumes spaces, tabs, and carriage returns but
// never a newline.
func (c *cursor) skipHorizontalWhitespace() {
	for isHorizontalWhitespace(c.peek()) {
		c.advance()
	}
}

// skipToEOL advances up to but not past a newline (or EOF).
func (c *cursor) skipToEOL() {
	for !c.atEOF() && c.peek() != '\n' {
		c.advance()
	}
}

// skipLine advances past the next newline, or to EOF if none remains. Every
// line parser calls this on both success and failure so the dispatcher
// always re-enters at the start of a fresh line.
func (c *cursor) skipLine() {
	c.skipToEOL()
	if !c.atEOF() {
		c.advance() // consume the newline itself
	}
}

// skipBlankLines repeatedly consumes lines whose non-whitespace prefix is
// empty, leaving the cursor at the start of the first line with content (or
// at EOF).
func (c *cursor) skipBlankLines() {
	for !c.atEOF() {
		save := *c
		c.skipHorizontalWhitespace()
		if c.atEOF() {
			return
		}
		if c.peek() == '\n' {
			c.advance()
			continue
		}
		*c = save
		return
	}
}

// isDigit, isLetter and friends classify ASCII bytes the way the grammar's
// identifier rule does: [A-Za-z0-9_] only, no Unicode letters.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentRune(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}
