package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/bursa-lang/bursa/cli"
)

var (
	// Version contains the application version number. Set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit this binary was built
	// against. Set via ldflags when building.
	CommitSHA = ""

	cliStruct struct {
		Version kong.VersionFlag `help:"Show version information"`
		cli.Commands
	}
)

func main() {
	cli.Version = Version
	cli.CommitSHA = CommitSHA

	ctx := kong.Parse(&cliStruct,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("bursa"),
		kong.Description("A plain-text personal finance ledger parser and formatter."),
		kong.UsageOnError(),
		kong.Bind(&cliStruct.Globals),
	)

	err := ctx.Run()
	if cmdErr, ok := err.(*cli.CommandError); ok {
		ctx.Exit(cmdErr.ExitCode())
		return
	}
	ctx.FatalIfErrorf(err)
}

func buildVersion() string {
	if Version == "" {
		Version = "dev"
	}
	if CommitSHA == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, CommitSHA)
}
