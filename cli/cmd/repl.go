package cmd

import (
	"context"

	"github.com/teya-lang/teya/cli/cmd/repl"
)

// Repl starts an interactive session for parsing terms and commands.
type Repl struct {
	History string   `default:"${historyFile}" help:"History file path." type:"path"`
	Preload []string `arg:"" optional:"" help:"Module file(s) whose names seed completion." type:"existingfile"`
}

// Run executes the repl command.
func (c *Repl) Run(ctx context.Context) error {
	return repl.Run(ctx, repl.Options{
		History: c.History,
		Preload: c.Preload,
	})
}
