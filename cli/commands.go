package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations." short:"t"`
	Color     bool `help:"Accepted but not read by any command; output color follows terminal detection."`
}

type Commands struct {
	Globals

	Check  CheckCmd  `cmd:"" help:"Parse a ledger file and report diagnostics."`
	Fmt    FmtCmd    `cmd:"" help:"Print a ledger file in canonical form, optionally rewriting it in place."`
	Watch  WatchCmd  `cmd:"" help:"Watch a ledger file and re-check it on every save."`
	Doctor DoctorCmd `cmd:"" help:"Debugging utilities for ledger internals."`
}
