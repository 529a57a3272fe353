package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/teya-lang/teya/syntax"
	"github.com/teya-lang/teya/syntax/parser"
)

// Fmt reprints a parsed module in the chosen output format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Reprint as canonical teya syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Print the syntax tree as JSON."`
	YAML   YAML   `cmd:""                    help:"Print the syntax tree as YAML."`
	AST    AST    `cmd:""                    help:"Print the syntax tree as an indented dump."`
}

// parseOne loads and parses a single module, rendering any syntax errors
// to stderr. Formatting refuses trees containing error nodes since their
// output could not round-trip.
func parseOne(path string) (syntax.Module, error) {
	file, err := readSource(path)
	if err != nil {
		return nil, err
	}

	m, errs := parser.ParseModule(file)

	for _, e := range errs {
		fmt.Fprint(os.Stderr, e.Render(file))
	}

	if err := errs.Err(); err != nil {
		return nil, ErrSyntax.Wrap(err)
	}

	return m, nil
}

// Native reprints a module as canonical teya syntax.
type Native struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the fmt command.
func (f *Native) Run(_ context.Context) error {
	m, err := parseOne(f.Source)
	if err != nil {
		return err
	}

	if err := syntax.WriteModule(os.Stdout, m); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// JSON prints a module's syntax tree as JSON.
type JSON struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(_ context.Context) error {
	m, err := parseOne(j.Source)
	if err != nil {
		return err
	}

	out, err := syntax.MarshalJSON(m)
	if err != nil {
		return ErrEncode.Wrap(err)
	}

	if _, err := os.Stdout.Write(out); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// YAML prints a module's syntax tree as YAML.
type YAML struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(_ context.Context) error {
	m, err := parseOne(y.Source)
	if err != nil {
		return err
	}

	out, err := syntax.MarshalYAML(m)
	if err != nil {
		return ErrEncode.Wrap(err)
	}

	if _, err := os.Stdout.Write(out); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// AST prints a module's syntax tree as an indented dump with spans.
type AST struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the ast command.
func (a *AST) Run(_ context.Context) error {
	m, err := parseOne(a.Source)
	if err != nil {
		return err
	}

	if err := syntax.WriteTree(os.Stdout, m); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
