// Package parser builds teya syntax trees from source text.
//
// Parsing never stops at the first mistake. Errors are accumulated while
// the parser re-synchronizes at well-known boundaries, so one pass
// reports every problem it can find and always yields a complete tree
// with Error* nodes standing in for the unparseable parts.
package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/teya-lang/teya/syntax/source"
	"github.com/teya-lang/teya/syntax/token"
)

// ErrorKind classifies a [ParseError].
type ErrorKind int

const (
	// Unexpected reports a token (or end of input) that fits no
	// production at that point.
	Unexpected ErrorKind = iota

	// UnknownReplCommand reports an unrecognized ":name" REPL command.
	UnknownReplCommand

	// LiteralOverflow reports a universe level outside the uint32 range.
	LiteralOverflow

	// AmbiguousPiBinder reports a parenthesized annotation before "->"
	// whose left side is not a plain sequence of names.
	AmbiguousPiBinder
)

// ParseError describes one syntax error at a source location.
type ParseError struct {
	Kind ErrorKind
	Span token.Span

	// Found describes the offending token. Empty means end of input.
	Found string

	// Expected lists the token descriptions that would have been valid.
	Expected []string

	// Text is the offending source text for kinds that report it, such
	// as the unknown command name or the overflowing literal.
	Text string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case UnknownReplCommand:
		return fmt.Sprintf("unknown command %q", ":"+e.Text)

	case LiteralOverflow:
		return fmt.Sprintf(
			"universe level %s is too large (maximum %d)",
			e.Text, maxUniverseLevel,
		)

	case AmbiguousPiBinder:
		return "ambiguous binder before \"->\"" +
			": parenthesized annotation must bind plain names"

	default:
		found := e.Found
		if found == "" {
			found = "end of input"
		}

		if len(e.Expected) == 0 {
			return "unexpected " + found
		}

		return fmt.Sprintf(
			"unexpected %s, expected %s",
			found, strings.Join(e.Expected, " or "),
		)
	}
}

// Render formats the error with its position and a source snippet:
//
//	test.teya:2:7: unexpected ";", expected term
//	  2 | foo : ;
//	    |       ^
func (e *ParseError) Render(f *source.File) string {
	pos := f.Position(e.Span.Start)

	var b strings.Builder

	if f.Name != "" {
		b.WriteString(f.Name)
		b.WriteByte(':')
	}

	b.WriteString(pos.String())
	b.WriteString(": ")
	b.WriteString(e.Error())
	b.WriteByte('\n')
	b.WriteString(f.Snippet(e.Span))

	return b.String()
}

// LogValue implements [slog.LogValuer] for structured logging.
func (e *ParseError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("error", e.Error()),
		slog.String("span", e.Span.String()),
	}

	if len(e.Expected) > 0 {
		attrs = append(attrs,
			slog.String("expected", strings.Join(e.Expected, ", ")))
	}

	return slog.GroupValue(attrs...)
}

// Errors is the accumulated result of one parse, in source order.
type Errors []*ParseError

// Error implements the error interface by joining all messages.
func (es Errors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}

	return strings.Join(msgs, "; ")
}

// Err returns the collection as an error, or nil if it is empty.
func (es Errors) Err() error {
	if len(es) == 0 {
		return nil
	}

	return es
}
