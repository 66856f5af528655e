package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/bursa-lang/bursa/loader"
	"github.com/bursa-lang/bursa/output"
)

// WatchCmd re-checks a ledger file every time it's saved. There is no
// incremental reparsing: each save triggers a fresh, full Parse.
type WatchCmd struct {
	File string `help:"Ledger file to watch." arg:""`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cmd.File); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cmd.File, err)
	}

	styles := output.NewStyles(ctx.Stdout)
	printInfof(ctx.Stdout, "watching %s (ctrl-c to stop)", cmd.File)

	cmd.recheck(ctx, styles)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// Editors often replace a file via rename-and-recreate; give the
			// new inode a moment to settle before reading it.
			time.Sleep(25 * time.Millisecond)
			cmd.recheck(ctx, styles)

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, watchErr.Error())
		}
	}
}

func (cmd *WatchCmd) recheck(ctx *kong.Context, styles *output.Styles) {
	res, source, err := loader.Load(context.Background(), cmd.File)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return
	}

	hadErrors := reportDiagnostics(ctx.Stderr, string(source), styles, res.Errors, res.Warnings)
	if hadErrors {
		printError(ctx.Stdout, fmt.Sprintf("%d error(s) found", len(res.Errors)))
		return
	}
	printSuccess(ctx.Stdout, "check passed")
}
