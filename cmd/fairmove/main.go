package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lox/fairmove/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play one round against the computer (default)"`
	Rules   RulesCmd         `cmd:"" help:"Print who beats whom for a set of moves"`
	Verify  VerifyCmd        `cmd:"" help:"Check a revealed key against the HMAC shown before your move"`
}

func options(cli *CLI, out io.Writer) []kong.Option {
	return []kong.Option{
		kong.Name("fairmove"),
		kong.Description("Rock-paper-scissors for any odd number of moves, with a provably fair computer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_path": config.DefaultPath,
		},
		kong.Bind(&cli.Globals),
		kong.BindTo(out, (*io.Writer)(nil)),
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, options(&cli, os.Stdout)...)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
