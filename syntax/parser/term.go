package parser

import (
	"github.com/teya-lang/teya/syntax"
	"github.com/teya-lang/teya/syntax/token"
)

// The term grammar is a precedence ladder, loosest first:
//
//	term   = expr (":" term)?           annotation, right associative
//	expr   = lambda | arrow
//	arrow  = app level? ("->" expr)?    pi types recovered by reparse
//	app    = atom atom*                 left associative
//	atom   = "(" term ")" | "Type" | name
//
// A universe level literal attaches at the arrow tier, and only when the
// application tier produced the bare "Type" keyword.
func (p *parser) term() (syntax.Term, *ParseError) {
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, ok := p.eat(token.Colon); !ok {
		return expr, nil
	}

	ann, err := p.term()
	if err != nil {
		return nil, err
	}

	return &syntax.Ann{Expr: expr, Type: ann}, nil
}

func (p *parser) expr() (syntax.Term, *ParseError) {
	if p.at(token.Backslash) {
		return p.lam()
	}

	return p.arrow()
}

// lam parses "\x => e", "\x : T => e", and "\(x y : T) z => e".
func (p *parser) lam() (syntax.Term, *ParseError) {
	bs := p.next()

	// A name directly annotated with ":" can only be the single
	// parameter form, since grouped annotations require parentheses.
	if p.at(token.Ident) && p.atAt(1, token.Colon) {
		name := p.next()
		p.next()

		ann, err := p.expr()
		if err != nil {
			return nil, err
		}

		return p.lamBody(bs, []syntax.LamParam{{
			Names: []syntax.Ident{{Sp: name.Span, Name: name.Text}},
			Ann:   ann,
		}})
	}

	var params []syntax.LamParam

	for {
		if t, ok := p.eat(token.Ident); ok {
			params = append(params, syntax.LamParam{
				Names: []syntax.Ident{{Sp: t.Span, Name: t.Text}},
			})

			continue
		}

		if p.at(token.LParen) {
			group, err := p.paramGroup()
			if err != nil {
				return nil, err
			}

			params = append(params, group)

			continue
		}

		break
	}

	if len(params) == 0 {
		return nil, p.unexpected("parameter")
	}

	return p.lamBody(bs, params)
}

func (p *parser) lamBody(bs token.Token, params []syntax.LamParam) (syntax.Term, *ParseError) {
	if _, err := p.expect(token.FatArrow); err != nil {
		return nil, err
	}

	body, err := p.expr()
	if err != nil {
		return nil, err
	}

	return &syntax.Lam{
		Sp:     bs.Span.To(body.Span()),
		Params: params,
		Body:   body,
	}, nil
}

// paramGroup parses "(x y : T)", shared by lambdas and definitions.
func (p *parser) paramGroup() (syntax.LamParam, *ParseError) {
	if _, err := p.expect(token.LParen); err != nil {
		return syntax.LamParam{}, err
	}

	first, err := p.expect(token.Ident)
	if err != nil {
		return syntax.LamParam{}, err
	}

	names := []syntax.Ident{{Sp: first.Span, Name: first.Text}}

	for {
		t, ok := p.eat(token.Ident)
		if !ok {
			break
		}

		names = append(names, syntax.Ident{Sp: t.Span, Name: t.Text})
	}

	if _, err := p.expect(token.Colon); err != nil {
		return syntax.LamParam{}, err
	}

	ann, err := p.term()
	if err != nil {
		return syntax.LamParam{}, err
	}

	if _, err := p.expect(token.RParen); err != nil {
		return syntax.LamParam{}, err
	}

	return syntax.LamParam{Names: names, Ann: ann}, nil
}

func (p *parser) arrow() (syntax.Term, *ParseError) {
	lhs, err := p.app()
	if err != nil {
		return nil, err
	}

	lhs = p.levelSuffix(lhs)

	if _, ok := p.eat(token.Arrow); !ok {
		return lhs, nil
	}

	rhs, err := p.expr()
	if err != nil {
		return nil, err
	}

	return p.reparseArrow(lhs, rhs), nil
}

func (p *parser) app() (syntax.Term, *ParseError) {
	fn, err := p.atom()
	if err != nil {
		return nil, err
	}

	for {
		t, ok := p.peek()
		if !ok || !startsAtom(t.Kind) {
			return fn, nil
		}

		arg, err := p.atom()
		if err != nil {
			return nil, err
		}

		fn = &syntax.App{Fn: fn, Arg: arg}
	}
}

func startsAtom(k token.Kind) bool {
	switch k {
	case token.LParen, token.KwType, token.Ident:
		return true
	default:
		return false
	}
}

func (p *parser) atom() (syntax.Term, *ParseError) {
	t, ok := p.peek()
	if !ok {
		return nil, p.unexpected("term")
	}

	switch t.Kind {
	case token.LParen:
		return p.parens()

	case token.KwType:
		p.next()

		return &syntax.Universe{Sp: t.Span}, nil

	case token.Ident:
		p.next()

		return &syntax.Var{
			Name: syntax.Ident{Sp: t.Span, Name: t.Text},
		}, nil

	default:
		// Finest recovery grain: report the token and stand in an error
		// node for the missing atom. Tokens that delimit an enclosing
		// construct instead propagate the failure, so the coarser grain
		// resynchronizes and the construct's own error node covers them.
		e := p.unexpected("term")

		if !consumableOnError(t.Kind) {
			return nil, e
		}

		p.record(e)
		p.next()

		return &syntax.ErrorTerm{Sp: t.Span}, nil
	}
}

func consumableOnError(k token.Kind) bool {
	switch k {
	case token.Semi, token.RParen, token.Comma, token.Equal,
		token.Arrow, token.FatArrow, token.Colon,
		token.KwAs, token.KwImport, token.KwModule,
		token.RBrace, token.RBracket:
		return false
	default:
		return true
	}
}

func (p *parser) parens() (syntax.Term, *ParseError) {
	lp := p.next()

	inner, err := p.term()
	if err != nil {
		return nil, err
	}

	rp, err := p.expect(token.RParen)
	if err != nil {
		return nil, err
	}

	return &syntax.Parens{Sp: lp.Span.To(rp.Span), Inner: inner}, nil
}

// levelSuffix attaches an explicit level to a bare universe, as in
// "Type 2". The literal binds looser than application, so it attaches
// only when the application tier produced the universe keyword alone;
// in argument position the level must be parenthesized, "f (Type 1)".
// An out-of-range level is reported and an error node stands in for
// the universe while parsing continues.
func (p *parser) levelSuffix(t syntax.Term) syntax.Term {
	u, ok := t.(*syntax.Universe)
	if !ok {
		return t
	}

	lit, ok := p.eat(token.IntLiteral)
	if !ok {
		return t
	}

	level, err := universeLevel(lit)
	if err != nil {
		p.record(err)

		return &syntax.ErrorTerm{Sp: u.Sp.To(lit.Span)}
	}

	return &syntax.Universe{Sp: u.Sp.To(lit.Span), Level: &level}
}
