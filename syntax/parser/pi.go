package parser

import (
	"github.com/teya-lang/teya/syntax"
)

// reparseArrow decides between a pi type and a plain arrow once "->" has
// been seen.
//
// The grammar cannot tell "(x : A) -> B" from "(e : A) -> B" while
// parsing the left side, so both parse as a parenthesized annotation
// first. Here the annotated expression is reinterpreted: if it is a bare
// application spine of names, those names become pi binders. Any other
// shape before "->" keeps its parentheses and forms an ordinary arrow,
// except an annotation whose left side mixes in non-names, which is
// reported as ambiguous.
func (p *parser) reparseArrow(lhs, rhs syntax.Term) syntax.Term {
	parens, ok := lhs.(*syntax.Parens)
	if !ok {
		return &syntax.Arrow{Domain: lhs, Codomain: rhs}
	}

	ann, ok := parens.Inner.(*syntax.Ann)
	if !ok {
		return &syntax.Arrow{Domain: lhs, Codomain: rhs}
	}

	names, ok := spineNames(ann.Expr)
	if !ok {
		p.record(&ParseError{
			Kind: AmbiguousPiBinder,
			Span: parens.Span(),
		})

		return &syntax.ErrorTerm{Sp: parens.Span().To(rhs.Span())}
	}

	return &syntax.Pi{
		Sp:    parens.Span().To(rhs.Span()),
		Names: names,
		Ann:   ann.Type,
		Body:  rhs,
	}
}

// spineNames flattens an application spine whose leaves are all plain
// names, as in "x y z". Any other leaf disqualifies the spine from
// becoming a binder list.
func spineNames(t syntax.Term) ([]syntax.Ident, bool) {
	switch t := t.(type) {
	case *syntax.Var:
		return []syntax.Ident{t.Name}, true

	case *syntax.App:
		fn, ok := spineNames(t.Fn)
		if !ok {
			return nil, false
		}

		arg, ok := t.Arg.(*syntax.Var)
		if !ok {
			return nil, false
		}

		return append(fn, arg.Name), true

	default:
		return nil, false
	}
}
