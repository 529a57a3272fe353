// Package token defines the lexical tokens of the teya surface language
// and the byte spans that locate them in source text.
package token

import "fmt"

// Kind identifies the lexical class of a [Token].
type Kind int

// Lexical token kinds.
const (
	Invalid Kind = iota

	Ident       // foo, Bar, two-words
	DocComment  // ||| line
	ReplCommand // :help (REPL input only)
	IntLiteral  // 42

	KwAs     // as
	KwModule // module
	KwImport // import
	KwType   // Type

	Backslash // \
	Colon     // :
	Comma     // ,
	DotDot    // ..
	Equal     // =
	Arrow     // ->
	FatArrow  // =>
	Semi      // ;
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
)

//nolint:gochecknoglobals
var kindName = map[Kind]string{
	Invalid:     "invalid token",
	Ident:       "identifier",
	DocComment:  "doc comment",
	ReplCommand: "command",
	IntLiteral:  "integer literal",
	KwAs:        `"as"`,
	KwModule:    `"module"`,
	KwImport:    `"import"`,
	KwType:      `"Type"`,
	Backslash:   `"\"`,
	Colon:       `":"`,
	Comma:       `","`,
	DotDot:      `".."`,
	Equal:       `"="`,
	Arrow:       `"->"`,
	FatArrow:    `"=>"`,
	Semi:        `";"`,
	LParen:      `"("`,
	RParen:      `")"`,
	LBrace:      `"{"`,
	RBrace:      `"}"`,
	LBracket:    `"["`,
	RBracket:    `"]"`,
}

// String returns a human-readable name for the kind, suitable for use in
// diagnostics.
func (k Kind) String() string {
	if s, ok := kindName[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keyword returns the [Kind] reserved for the identifier text, or [Ident]
// if the text is not a keyword.
func Keyword(text string) Kind {
	switch text {
	case "as":
		return KwAs
	case "module":
		return KwModule
	case "import":
		return KwImport
	case "Type":
		return KwType
	default:
		return Ident
	}
}

// Span is a half-open byte range [Start, End) into source text.
type Span struct {
	Start int
	End   int
}

// Make returns the span covering [start, end).
func Make(start, end int) Span {
	return Span{Start: start, End: end}
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	if s.Empty() {
		return 0
	}

	return s.End - s.Start
}

// To returns the smallest span covering both s and t.
func (s Span) To(t Span) Span {
	if t.Start < s.Start {
		s.Start = t.Start
	}

	if t.End > s.End {
		s.End = t.End
	}

	return s
}

// Contains reports whether t lies entirely within s.
func (s Span) Contains(t Span) bool {
	return s.Start <= t.Start && t.End <= s.End
}

// String returns the span in "start..end" form.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Token is a single lexical token with its location and source text.
type Token struct {
	Kind Kind
	Span Span
	Text string
}

// String returns the token kind and text for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case Ident, IntLiteral, ReplCommand, Invalid:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}
