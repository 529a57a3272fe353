// Package cli wires the teya commands, flags, and runtime configuration
// into a [kong] command-line interface.
package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/teya-lang/teya/cli/cmd"
	"github.com/teya-lang/teya/pkg"
)

// CLI is the top-level command-line interface for teya.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and quit." short:"V"`

	Check cmd.Check `cmd:"" help:"Parse modules and report syntax errors."`
	Fmt   cmd.Fmt   `cmd:"" help:"Reprint modules from their syntax trees."`

	Repl cmd.Repl `cmd:"" default:"withargs" help:"Start an interactive session."`
}

// Run executes the teya CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon
// completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	vars := kong.Vars{
		"version":     pkg.Name + " " + strings.TrimSpace(pkg.Version),
		"historyFile": historyPath(),
	}.CloneWith(cli.Pprof.vars())

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact: true,
				Summary: true,
			}),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)

	// No-op unless a profiling mode was selected.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx)
}
