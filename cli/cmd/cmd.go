// Package cmd implements the teya subcommands.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/teya-lang/teya/syntax/source"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// readSource loads one input file, with "-" meaning stdin.
func readSource(path string) (*source.File, error) {
	if path == stdinSource {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, ErrReadSource.Wrap(err)
		}

		return source.NewFile("<stdin>", string(data)), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrReadSource.Wrap(err).
			With(slog.String("path", path))
	}

	return source.NewFile(path, string(data)), nil
}

// sourcesOrStdin substitutes stdin when no inputs were named.
func sourcesOrStdin(paths []string) []string {
	if len(paths) == 0 {
		return []string{stdinSource}
	}

	return paths
}
