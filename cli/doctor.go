package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
)

// DoctorCmd groups debugging utilities for inspecting ledger internals.
type DoctorCmd struct {
	Dump DumpCmd `cmd:"" help:"Dump the parsed Ledger structure and any diagnostics."`
}

// DumpCmd prints a repr-formatted tree of the parsed Ledger, the structural
// analogue of the teacher's token dumper for a parser with no token stream.
type DumpCmd struct {
	File FileOrStdin `help:"Ledger input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	res, _, err := load(context.Background(), &cmd.File)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(ctx.Stdout, repr.String(res.Data, repr.Indent("  ")))

	for _, e := range res.Errors {
		_, _ = fmt.Fprintln(ctx.Stdout, repr.String(e, repr.Indent("  ")))
	}
	for _, w := range res.Warnings {
		_, _ = fmt.Fprintln(ctx.Stdout, repr.String(w, repr.Indent("  ")))
	}

	return nil
}
