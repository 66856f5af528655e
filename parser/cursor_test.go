package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorAdvanceTracksLineAndColumn(t *testing.T) {
	c := newCursor("ab\ncd")

	assert.Equal(t, 'a', c.advance())
	assert.Equal(t, 1, c.line)
	assert.Equal(t, 2, c.col)

	assert.Equal(t, 'b', c.advance())
	assert.Equal(t, 3, c.col)

	assert.Equal(t, '\n', c.advance())
	assert.Equal(t, 2, c.line)
	assert.Equal(t, 1, c.col)

	assert.Equal(t, 'c', c.advance())
	assert.Equal(t, 2, c.col)
}

func TestCursorAdvanceHandlesMultibyteRunes(t *testing.T) {
	c := newCursor("€5")
	r := c.advance()
	assert.Equal(t, '€', r)
	assert.Equal(t, 2, c.col) // one rune consumed, column advances by one
	assert.Equal(t, '5', c.peek())
}

func TestCursorPeekAtEOFReturnsZero(t *testing.T) {
	c := newCursor("")
	assert.True(t, c.atEOF())
	assert.Equal(t, rune(0), c.peek())
	assert.Equal(t, rune(0), c.advance())
}

func TestCursorSkipHorizontalWhitespaceStopsAtNewline(t *testing.T) {
	c := newCursor("  \t x\n")
	c.skipHorizontalWhitespace()
	assert.Equal(t, 'x', c.peek())
}

func TestCursorSkipLineConsumesNewline(t *testing.T) {
	c := newCursor("abc\ndef")
	c.skipLine()
	assert.Equal(t, 2, c.line)
	assert.Equal(t, 1, c.col)
	assert.Equal(t, 'd', c.peek())
}

func TestCursorSkipLineAtEOFWithoutNewline(t *testing.T) {
	c := newCursor("abc")
	c.skipLine()
	assert.True(t, c.atEOF())
}

func TestCursorSkipBlankLinesLeavesContentLineIntact(t *testing.T) {
	c := newCursor("\n  \n\tfoo\n")
	c.skipBlankLines()
	assert.Equal(t, 3, c.line)
	c.skipHorizontalWhitespace()
	assert.Equal(t, 'f', c.peek())
}

func TestCursorSkipBlankLinesAtEOF(t *testing.T) {
	c := newCursor("   \n  ")
	c.skipBlankLines()
	assert.True(t, c.atEOF())
}

func TestCursorSpanFromCapturesRange(t *testing.T) {
	c := newCursor("hello")
	start := c.markStart()
	c.advance()
	c.advance()
	span := c.spanFrom(start)
	assert.Equal(t, 1, span.Start.Col)
	assert.Equal(t, 3, span.End.Col)
	assert.True(t, span.Valid())
}

func TestCursorPeekString(t *testing.T) {
	c := newCursor("== 5 USD")
	assert.True(t, c.peekString("=="))
	assert.False(t, c.peekString("=x"))
	assert.False(t, c.peekString("=== too long for remaining =="))
}
