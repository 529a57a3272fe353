package parser

import (
	"github.com/teya-lang/teya/syntax"
	"github.com/teya-lang/teya/syntax/lexer"
	"github.com/teya-lang/teya/syntax/source"
	"github.com/teya-lang/teya/syntax/token"
)

// ParseReplCommand parses one line of REPL input: a ":name" command, a
// term to evaluate, or nothing. The returned command is never nil; input
// that fits no command yields a [syntax.ReplError].
func ParseReplCommand(file *source.File) (syntax.ReplCommand, Errors) {
	p := newParser(file, lexer.Repl)
	c := p.replCommand()

	return c, p.errs
}

// ParseReplCommandString parses REPL input given directly as a string.
func ParseReplCommandString(src string) (syntax.ReplCommand, Errors) {
	return ParseReplCommand(source.NewFile("", src))
}

func (p *parser) replCommand() syntax.ReplCommand {
	t, ok := p.peek()
	if !ok {
		return &syntax.ReplNoOp{Sp: p.inputSpan()}
	}

	if t.Kind != token.ReplCommand {
		return p.replEval()
	}

	p.next()

	switch t.Text {
	case "?", "h", "help":
		p.finish()

		return &syntax.ReplHelp{Sp: t.Span}

	case "q", "quit":
		p.finish()

		return &syntax.ReplQuit{Sp: t.Span}

	case "t", "type":
		term, err := p.term()
		if err != nil {
			p.record(err)

			return &syntax.ReplError{Sp: p.inputSpan()}
		}

		p.finish()

		return &syntax.ReplTypeOf{
			Sp:   t.Span.To(term.Span()),
			Term: term,
		}

	default:
		p.record(&ParseError{
			Kind: UnknownReplCommand,
			Span: t.Span,
			Text: t.Text,
		})

		return &syntax.ReplError{Sp: p.inputSpan()}
	}
}

func (p *parser) replEval() syntax.ReplCommand {
	term, err := p.term()
	if err != nil {
		p.record(err)

		return &syntax.ReplError{Sp: p.inputSpan()}
	}

	p.finish()

	return &syntax.ReplEval{Term: term}
}

// finish reports any input left over after a complete command.
func (p *parser) finish() {
	if _, ok := p.peek(); ok {
		p.record(p.unexpected("end of input"))
	}
}
