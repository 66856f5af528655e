package parser

import (
	"testing"

	"github.com/bursa-lang/bursa/ast"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestParser(src string) *Parser {
	return &Parser{
		cur:  newCursor(src),
		meta: ast.NewMeta(),
		ledger: ast.NewLedger(),
	}
}

func TestParseIdentifier(t *testing.T) {
	p := newTestParser("Foo_bar2 rest")
	name, _, ok := p.parseIdentifier()
	assert.True(t, ok)
	assert.Equal(t, "Foo_bar2", name)
	assert.Equal(t, ' ', p.cur.peek())
}

func TestParseIdentifierEmptyFails(t *testing.T) {
	p := newTestParser(":nope")
	_, _, ok := p.parseIdentifier()
	assert.False(t, ok)
}

func TestParseHierarchicalName(t *testing.T) {
	p := newTestParser("Opening:Balance:Extra rest")
	name, segs, _, ok := p.parseHierarchicalName()
	assert.True(t, ok)
	assert.Equal(t, "Opening:Balance:Extra", name)
	assert.Equal(t, []string{"Opening", "Balance", "Extra"}, segs)
}

func TestParseHierarchicalNameTrailingColonNotConsumed(t *testing.T) {
	p := newTestParser("Opening:")
	_, segs, _, ok := p.parseHierarchicalName()
	assert.True(t, ok)
	assert.Equal(t, []string{"Opening"}, segs)
	assert.Equal(t, ':', p.cur.peek())
}

func TestParseAmountLeadingSymbol(t *testing.T) {
	p := newTestParser("+$5000 rest")
	a, ok := p.parseAmount()
	assert.True(t, ok)
	assert.Equal(t, ast.SignPositive, a.Sign)
	assert.True(t, a.Value.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, "$", a.Commodity)
}

func TestParseAmountTrailingIdentifier(t *testing.T) {
	p := newTestParser("-6.5 AAPL")
	a, ok := p.parseAmount()
	assert.True(t, ok)
	assert.Equal(t, ast.SignNegative, a.Sign)
	assert.Equal(t, "AAPL", a.Commodity)
	assert.Equal(t, "6.5", a.Raw)
}

func TestParseAmountUsesAliasAtParseTime(t *testing.T) {
	p := newTestParser("5 $")
	p.meta.Aliases["$"] = "USD"
	a, ok := p.parseAmount()
	assert.True(t, ok)
	assert.Equal(t, "USD", a.Commodity)
}

func TestParseAmountMissingCommodityFails(t *testing.T) {
	p := newTestParser("100")
	_, ok := p.parseAmount()
	assert.False(t, ok)
	assert.Len(t, p.errors, 1)
	assert.Equal(t, "E002", string(p.errors[0].Code))
}

func TestParseAmountDotAloneRejected(t *testing.T) {
	p := newTestParser(". USD")
	_, ok := p.parseAmount()
	assert.False(t, ok)
}

func TestParseDateValidShape(t *testing.T) {
	p := newTestParser("2026-01-31 rest")
	d, _, ok := p.parseDate()
	assert.True(t, ok)
	assert.Equal(t, "2026-01-31", d)
}

func TestParseDateInvalidShapeEmitsE003(t *testing.T) {
	p := newTestParser("2026-1-20 rest")
	_, _, ok := p.parseDate()
	assert.False(t, ok)
	assert.Len(t, p.errors, 1)
	assert.Equal(t, "E003", string(p.errors[0].Code))
}

func TestParsePeriod(t *testing.T) {
	p := newTestParser("2026-01\n")
	period, _, ok := p.parsePeriod()
	assert.True(t, ok)
	assert.Equal(t, "2026-01", period)
}

func TestParseAccountRef(t *testing.T) {
	p := newTestParser("@Checking:Main rest")
	ref, ok := p.parseAccountRef()
	assert.True(t, ok)
	assert.Equal(t, "@Checking:Main", ref.Raw)
	assert.Equal(t, []string{"Checking", "Main"}, ref.Path)
}

func TestParseCategoryRefEmptyFails(t *testing.T) {
	p := newTestParser("& rest")
	_, ok := p.parseCategoryRef()
	assert.False(t, ok)
	assert.Equal(t, "E001", string(p.errors[0].Code))
}

func TestParseTagRef(t *testing.T) {
	p := newTestParser("#traderjoes")
	ref, ok := p.parseTagRef()
	assert.True(t, ok)
	assert.Equal(t, "#traderjoes", ref.Raw)
}

func TestParseCommentTrimsTrailingWhitespace(t *testing.T) {
	p := newTestParser(";   hello world   \n")
	c := p.parseComment()
	assert.Equal(t, "hello world", c)
}

func TestParseCommentEmpty(t *testing.T) {
	p := newTestParser(";\n")
	c := p.parseComment()
	assert.Equal(t, "", c)
}

func TestTryParseCommentLeavesCursorWhenAbsent(t *testing.T) {
	p := newTestParser("   next")
	c := p.tryParseComment()
	assert.Equal(t, "", c)
	assert.Equal(t, ' ', p.cur.peek())
}
