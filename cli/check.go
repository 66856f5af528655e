package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/bursa-lang/bursa/diag"
	"github.com/bursa-lang/bursa/output"
	"github.com/bursa-lang/bursa/render"
	"github.com/bursa-lang/bursa/telemetry"
)

// CheckCmd parses a ledger file and reports every diagnostic found.
type CheckCmd struct {
	File   FileOrStdin `help:"Ledger input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Format string      `help:"Diagnostic output format: text or json." enum:"text,json" default:"text"`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)
		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	res, source, err := load(runCtx, &cmd.File)
	if err != nil {
		return err
	}

	if cmd.Format == "json" {
		all := make([]diag.Diagnostic, 0, len(res.Errors)+len(res.Warnings))
		all = append(all, res.Errors...)
		all = append(all, res.Warnings...)
		diag.SortBySpan(all)

		formatter := render.NewJSONFormatter()
		_, _ = fmt.Fprintln(ctx.Stdout, formatter.FormatAll(all))

		if len(res.Errors) > 0 {
			return NewCommandError(1)
		}
		return nil
	}

	styles := output.NewStyles(ctx.Stdout)
	hadErrors := reportDiagnostics(ctx.Stderr, string(source), styles, res.Errors, res.Warnings)
	if hadErrors {
		printError(ctx.Stderr, fmt.Sprintf("%d error(s) found", len(res.Errors)))
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, "check passed")
	return nil
}
