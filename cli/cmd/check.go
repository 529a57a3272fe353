package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/teya-lang/teya/log"
	"github.com/teya-lang/teya/syntax/parser"
)

// Check parses modules and reports every syntax error with a source
// snippet. It reads stdin when no files are named.
type Check struct {
	Source []string `arg:"" optional:"" help:"Source input file(s) or '-' for stdin." name:"source"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	var total int

	for _, path := range sourcesOrStdin(c.Source) {
		file, err := readSource(path)
		if err != nil {
			return err
		}

		_, errs := parser.ParseModule(file)

		for _, e := range errs {
			fmt.Fprint(os.Stderr, e.Render(file))
		}

		log.DebugContext(ctx, "checked module",
			slog.String("source", file.Name),
			slog.Int("errors", len(errs)),
		)

		total += len(errs)
	}

	if total > 0 {
		return ErrSyntax.With(slog.Int("count", total))
	}

	return nil
}
