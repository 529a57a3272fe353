// Package lexer converts teya source text into tokens.
//
// The scanner never fails. Bytes that begin no valid token are emitted as
// [token.Invalid] tokens and left for the parser to report, so a single
// scan always covers the whole input.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/teya-lang/teya/syntax/source"
	"github.com/teya-lang/teya/syntax/token"
)

// Mode selects the grammar variant the scanner feeds.
type Mode int

const (
	// Module scans ordinary source files.
	Module Mode = iota

	// Repl additionally recognizes a leading ":name" command token.
	Repl
)

type lexer struct {
	src  string
	mode Mode
	pos  int
	toks []token.Token
}

// Scan tokenizes the file's content. The returned tokens cover every
// non-whitespace, non-comment byte of the input in order.
func Scan(file *source.File, mode Mode) []token.Token {
	l := &lexer{src: file.Content, mode: mode}

	for l.pos < len(l.src) {
		l.next()
	}

	return l.toks
}

func (l *lexer) next() {
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])

	switch {
	case unicode.IsSpace(r):
		l.pos += size

	case r == '-':
		l.scanDash()

	case r == '|':
		l.scanBar()

	case r == ':':
		l.scanColon()

	case isIdentStart(r):
		l.scanIdent()

	case r >= '0' && r <= '9':
		l.scanNumber()

	default:
		l.scanSymbol(r, size)
	}
}

func (l *lexer) emit(kind token.Kind, start int) {
	l.toks = append(l.toks, token.Token{
		Kind: kind,
		Span: token.Make(start, l.pos),
		Text: l.src[start:l.pos],
	})
}

// scanDash handles "->", "--" line comments, and stray "-".
func (l *lexer) scanDash() {
	start := l.pos
	l.pos++

	switch {
	case strings.HasPrefix(l.src[l.pos:], ">"):
		l.pos++
		l.emit(token.Arrow, start)

	case strings.HasPrefix(l.src[l.pos:], "-"):
		l.skipLine()

	default:
		l.emit(token.Invalid, start)
	}
}

// scanBar handles "|||" doc comments. Doc comments are kept as tokens so
// the parser can attach them to the following declaration.
func (l *lexer) scanBar() {
	start := l.pos

	if !strings.HasPrefix(l.src[l.pos:], "|||") {
		l.pos++
		l.emit(token.Invalid, start)

		return
	}

	l.skipLine()
	l.emit(token.DocComment, start)
}

// scanColon handles ":" and, in REPL mode, a leading command like ":help"
// or ":?". Commands are only recognized as the first token of the input
// so annotations keep their meaning everywhere else.
func (l *lexer) scanColon() {
	start := l.pos
	l.pos++

	if l.mode == Repl && len(l.toks) == 0 {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])

		if r == '?' {
			l.pos += size
		} else {
			for isIdentPart(r) {
				l.pos += size
				r, size = utf8.DecodeRuneInString(l.src[l.pos:])
			}
		}

		if l.pos > start+1 {
			tok := token.Token{
				Kind: token.ReplCommand,
				Span: token.Make(start, l.pos),
				Text: l.src[start+1 : l.pos],
			}
			l.toks = append(l.toks, tok)

			return
		}
	}

	l.emit(token.Colon, start)
}

func (l *lexer) scanIdent() {
	start := l.pos

	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])

		if isIdentPart(r) {
			l.pos += size

			continue
		}

		// Interior dashes join words, as in "two-words", but only when
		// another word follows. This keeps "x->y" lexing as an arrow.
		if r == '-' {
			after, _ := utf8.DecodeRuneInString(l.src[l.pos+size:])
			if isIdentPart(after) {
				l.pos += size

				continue
			}
		}

		break
	}

	l.emit(token.Keyword(l.src[start:l.pos]), start)
}

func (l *lexer) scanNumber() {
	start := l.pos

	for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
		l.pos++
	}

	l.emit(token.IntLiteral, start)
}

func (l *lexer) scanSymbol(r rune, size int) {
	start := l.pos
	l.pos += size

	var kind token.Kind

	switch r {
	case '\\':
		kind = token.Backslash
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semi
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '=':
		kind = token.Equal

		if strings.HasPrefix(l.src[l.pos:], ">") {
			l.pos++
			kind = token.FatArrow
		}
	case '.':
		kind = token.Invalid

		if strings.HasPrefix(l.src[l.pos:], ".") {
			l.pos++
			kind = token.DotDot
		}
	default:
		kind = token.Invalid
	}

	l.emit(kind, start)
}

func (l *lexer) skipLine() {
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
