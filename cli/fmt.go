package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/bursa-lang/bursa/output"
	"github.com/bursa-lang/bursa/printer"
	"github.com/bursa-lang/bursa/telemetry"
)

// FmtCmd prints a ledger file in canonical form.
type FmtCmd struct {
	File  FileOrStdin `help:"Ledger input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Write bool        `help:"Rewrite the file in place instead of printing to stdout." short:"w"`
}

func (cmd *FmtCmd) Run(ctx *kong.Context, globals *Globals) error {
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

	styles := output.NewStyles(ctx.Stdout)
	if hadErrors := reportDiagnostics(ctx.Stderr, string(source), styles, res.Errors, res.Warnings); hadErrors {
		printError(ctx.Stderr, "parse error")
		return NewCommandError(1)
	}

	formatted := printer.Print(res.Data)

	if !cmd.Write || cmd.File.Filename == "<stdin>" {
		_, _ = fmt.Fprint(ctx.Stdout, formatted)
		return nil
	}

	if formatted == string(source) {
		printInfof(ctx.Stdout, "%s is already formatted", cmd.File.Filename)
		return nil
	}

	confirm, err := promptOverwrite(cmd.File.Filename)
	if err != nil {
		return err
	}
	if !confirm {
		_, _ = fmt.Fprint(ctx.Stdout, formatted)
		return nil
	}

	if err := os.WriteFile(cmd.File.Filename, []byte(formatted), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.File.Filename, err)
	}
	printSuccess(ctx.Stdout, fmt.Sprintf("wrote %s", cmd.File.Filename))
	return nil
}
