package ast

import "github.com/shopspring/decimal"

// Sign is the explicit sign carried by an Amount, distinct from the sign of
// Value itself: Value is always stored non-negative, per spec.
type Sign int

const (
	// SignUnspecified marks an amount whose grammar position never required
	// a leading +/- (e.g. a budget allocation).
	SignUnspecified Sign = iota
	SignPositive
	SignNegative
)

// String renders the sign as written in source ("+", "-", or "" when
// unspecified).
func (s Sign) String() string {
	switch s {
	case SignPositive:
		return "+"
	case SignNegative:
		return "-"
	default:
		return ""
	}
}

// Amount is a signed decimal quantity denominated in a commodity. Value is
// always non-negative; the sign is carried separately in Sign. Raw preserves
// the exact numeral text as written (per the open question in spec.md §9),
// so downstream balance arithmetic can re-parse the decimal without source
// reacquisition if Value's rounding mode ever needs to change.
type Amount struct {
	Sign      Sign
	Value     decimal.Decimal
	Raw       string // numeral text as written, pre-decimal-parse
	Commodity string // canonical commodity code, post alias resolution
	Span      Span
}

// Signed returns Value negated when Sign is SignNegative, unchanged
// otherwise. Amounts with SignUnspecified are returned as-is: the grammar
// only permits that sign in contexts where no polarity is implied.
func (a Amount) Signed() decimal.Decimal {
	if a.Sign == SignNegative {
		return a.Value.Neg()
	}
	return a.Value
}
