package ast

// Meta is the result of the META section: declared commodities, alias
// resolutions, and untracked-account patterns. Aliases and commodities are
// sets (declaration order doesn't matter to downstream consumers); untracked
// patterns are an ordered list since later patterns don't shadow earlier
// ones — the validator that interprets them may want source order.
type Meta struct {
	// Commodities is the set of declared commodity codes. Contains both
	// explicit `commodity:` declarations and the right-hand side of every
	// alias (invariant 3 in spec.md §3).
	Commodities map[string]bool

	// Aliases maps a symbol or identifier to its canonical commodity.
	Aliases map[string]string

	// Untracked holds raw untracked-account patterns in encounter order:
	// "@*", "@Name", or "@Name:...:*". Interpretation is deferred to the
	// semantic validator.
	Untracked []string
}

// NewMeta returns an empty, ready-to-populate Meta value.
func NewMeta() *Meta {
	return &Meta{
		Commodities: make(map[string]bool),
		Aliases:     make(map[string]string),
	}
}

// ResolveSymbol resolves a symbol or identifier against the alias map as of
// the point in the file where it's called. Declaring an alias later in the
// file never retroactively rewrites amounts parsed earlier — callers must
// invoke this at the moment the amount is parsed, not after the whole file
// has been read.
func (m *Meta) ResolveSymbol(symbol string) string {
	if commodity, ok := m.Aliases[symbol]; ok {
		return commodity
	}
	return symbol
}

// Ledger is the root value the parser produces: the declared meta, and the
// BUDGET and LEDGER sections' entries in source order.
type Ledger struct {
	Meta   *Meta
	Budget []*BudgetEntry
	Ledger []LedgerEntry
}

// NewLedger returns an empty Ledger, ready to be appended to as the parser
// walks the source.
func NewLedger() *Ledger {
	return &Ledger{
		Meta:   NewMeta(),
		Budget: nil,
		Ledger: nil,
	}
}
