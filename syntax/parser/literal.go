package parser

import (
	"strconv"

	"github.com/teya-lang/teya/syntax/token"
)

// maxUniverseLevel is the largest universe level the surface language
// admits.
const maxUniverseLevel = 1<<32 - 1

// universeLevel validates a universe level literal. The scanner only
// produces decimal digit runs here, so the sole failure mode is a value
// outside the uint32 range.
func universeLevel(lit token.Token) (uint32, *ParseError) {
	v, err := strconv.ParseUint(lit.Text, 10, 32)
	if err != nil {
		return 0, &ParseError{
			Kind: LiteralOverflow,
			Span: lit.Span,
			Text: lit.Text,
		}
	}

	return uint32(v), nil
}
