package parser

import (
	"strings"

	"github.com/teya-lang/teya/syntax"
	"github.com/teya-lang/teya/syntax/lexer"
	"github.com/teya-lang/teya/syntax/source"
	"github.com/teya-lang/teya/syntax/token"
)

// ParseModule parses a whole source file. The returned module is never
// nil. A non-empty error list means parts of the tree are Error* nodes.
func ParseModule(file *source.File) (syntax.Module, Errors) {
	p := newParser(file, lexer.Module)
	m := p.module()

	return m, p.errs
}

// ParseModuleString parses source text directly. The name is used in
// diagnostics only.
func ParseModuleString(name, src string) (syntax.Module, Errors) {
	return ParseModule(source.NewFile(name, src))
}

type parser struct {
	file *source.File
	toks []token.Token
	docs map[int][]string
	pos  int
	errs Errors
}

func newParser(file *source.File, mode lexer.Mode) *parser {
	p := &parser{
		file: file,
		docs: map[int][]string{},
	}

	// Doc comments are pulled out of the token stream and attached to
	// the token that follows them, so the grammar never sees them.
	var pending []string

	for _, t := range lexer.Scan(file, mode) {
		if t.Kind == token.DocComment {
			pending = append(pending, docText(t.Text))

			continue
		}

		if len(pending) > 0 {
			p.docs[len(p.toks)] = pending
			pending = nil
		}

		p.toks = append(p.toks, t)
	}

	return p
}

func docText(text string) string {
	text = strings.TrimPrefix(text, "|||")

	return strings.TrimPrefix(text, " ")
}

func (p *parser) peek() (token.Token, bool) {
	if p.pos >= len(p.toks) {
		return token.Token{}, false
	}

	return p.toks[p.pos], true
}

func (p *parser) at(k token.Kind) bool {
	t, ok := p.peek()

	return ok && t.Kind == k
}

// atAt reports whether the token n places ahead has the given kind.
func (p *parser) atAt(n int, k token.Kind) bool {
	if p.pos+n >= len(p.toks) {
		return false
	}

	return p.toks[p.pos+n].Kind == k
}

func (p *parser) next() token.Token {
	t := p.toks[p.pos]
	p.pos++

	return t
}

func (p *parser) eat(k token.Kind) (token.Token, bool) {
	if !p.at(k) {
		return token.Token{}, false
	}

	return p.next(), true
}

func (p *parser) expect(k token.Kind) (token.Token, *ParseError) {
	if t, ok := p.eat(k); ok {
		return t, nil
	}

	return token.Token{}, p.unexpected(k.String())
}

// unexpected builds an error for the current token, or for end of input
// when no tokens remain. Nothing is consumed.
func (p *parser) unexpected(expected ...string) *ParseError {
	e := &ParseError{
		Kind:     Unexpected,
		Span:     p.eofSpan(),
		Expected: expected,
	}

	if t, ok := p.peek(); ok {
		e.Span = t.Span
		e.Found = t.String()
	}

	return e
}

func (p *parser) eofSpan() token.Span {
	n := len(p.file.Content)

	return token.Make(n, n)
}

func (p *parser) record(e *ParseError) {
	p.errs = append(p.errs, e)
}

// inputSpan covers the whole source text.
func (p *parser) inputSpan() token.Span {
	return token.Make(0, len(p.file.Content))
}

// module parses "module name;" followed by declarations. A malformed
// header abandons the whole input since nothing after it can be trusted.
func (p *parser) module() syntax.Module {
	name, err := p.header()
	if err != nil {
		p.record(err)

		return &syntax.ErrorModule{Sp: p.inputSpan()}
	}

	m := &syntax.ModuleFile{Sp: p.inputSpan(), Name: name}

	for p.pos < len(p.toks) {
		m.Decls = append(m.Decls, p.declaration())
	}

	return m
}

func (p *parser) header() (syntax.Ident, *ParseError) {
	if _, err := p.expect(token.KwModule); err != nil {
		return syntax.Ident{}, err
	}

	name, err := p.expect(token.Ident)
	if err != nil {
		return syntax.Ident{}, err
	}

	if _, err := p.expect(token.Semi); err != nil {
		return syntax.Ident{}, err
	}

	return syntax.Ident{Sp: name.Span, Name: name.Text}, nil
}

// declaration parses one top-level item. On failure it records the error,
// skips ahead through the next ";", and substitutes an [syntax.ErrorDecl]
// so the declarations that follow still parse.
func (p *parser) declaration() syntax.Declaration {
	startPos := p.pos
	sp := p.toks[startPos].Span

	d, err := p.declarationInner()
	if err == nil {
		return d
	}

	p.record(err)

	if p.pos > startPos {
		sp = sp.To(p.toks[p.pos-1].Span)
	}

	for p.pos < len(p.toks) {
		t := p.next()

		sp = sp.To(t.Span)
		if t.Kind == token.Semi {
			break
		}
	}

	return &syntax.ErrorDecl{Sp: sp}
}

func (p *parser) declarationInner() (syntax.Declaration, *ParseError) {
	doc := p.docs[p.pos]

	if p.at(token.KwImport) {
		return p.importDecl()
	}

	name, err := p.expect(token.Ident)
	if err != nil {
		err.Expected = []string{"declaration"}

		return nil, err
	}

	ident := syntax.Ident{Sp: name.Span, Name: name.Text}

	if _, ok := p.eat(token.Colon); ok {
		return p.claim(doc, ident)
	}

	return p.definition(doc, ident)
}

func (p *parser) claim(doc []string, name syntax.Ident) (syntax.Declaration, *ParseError) {
	ann, err := p.term()
	if err != nil {
		return nil, err
	}

	semi, err := p.expect(token.Semi)
	if err != nil {
		return nil, err
	}

	return &syntax.Claim{
		Sp:   name.Sp.To(semi.Span),
		Doc:  doc,
		Name: name,
		Ann:  ann,
	}, nil
}

func (p *parser) definition(doc []string, name syntax.Ident) (syntax.Declaration, *ParseError) {
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

	if _, err := p.expect(token.Equal); err != nil {
		err.Expected = []string{`"="`, "parameter"}

		return nil, err
	}

	body, err := p.term()
	if err != nil {
		return nil, err
	}

	semi, err := p.expect(token.Semi)
	if err != nil {
		return nil, err
	}

	return &syntax.Definition{
		Sp:     name.Sp.To(semi.Span),
		Doc:    doc,
		Name:   name,
		Params: params,
		Body:   body,
	}, nil
}

func (p *parser) importDecl() (syntax.Declaration, *ParseError) {
	kw := p.next()

	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	d := &syntax.Import{
		Name: syntax.Ident{Sp: name.Span, Name: name.Text},
	}

	if _, ok := p.eat(token.KwAs); ok {
		rename, err := p.expect(token.Ident)
		if err != nil {
			return nil, err
		}

		d.Rename = &syntax.Ident{Sp: rename.Span, Name: rename.Text}
	}

	if p.at(token.LParen) {
		d.Exposing = p.exposing()
	}

	semi, err := p.expect(token.Semi)
	if err != nil {
		return nil, err
	}

	d.Sp = kw.Span.To(semi.Span)

	return d, nil
}

// exposing parses "(..)" or "(name, name as other, ...)". Recovery here
// is per entry: a bad entry is reported and skipped through the next ","
// so the remaining entries still parse. If the list structure itself is
// broken the whole clause becomes an [syntax.ErrorExposing].
func (p *parser) exposing() syntax.Exposing {
	lp := p.next()

	if _, ok := p.eat(token.DotDot); ok {
		rp, err := p.expect(token.RParen)
		if err != nil {
			p.record(err)

			return &syntax.ErrorExposing{Sp: lp.Span.To(p.lastSpan())}
		}

		return &syntax.ExposeAll{Sp: lp.Span.To(rp.Span)}
	}

	var items []syntax.ExposeItem

	for {
		item, err := p.exposeItem()
		if err != nil {
			p.record(err)

			if !p.syncExposeItem() {
				return &syntax.ErrorExposing{Sp: lp.Span.To(p.lastSpan())}
			}

			continue
		}

		items = append(items, item)

		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}

	rp, err := p.expect(token.RParen)
	if err != nil {
		p.record(err)

		return &syntax.ErrorExposing{Sp: lp.Span.To(p.lastSpan())}
	}

	return &syntax.ExposeExact{Sp: lp.Span.To(rp.Span), Items: items}
}

func (p *parser) exposeItem() (syntax.ExposeItem, *ParseError) {
	name, err := p.expect(token.Ident)
	if err != nil {
		err.Expected = []string{"exposed name", `".."`}

		return syntax.ExposeItem{}, err
	}

	item := syntax.ExposeItem{
		Name: syntax.Ident{Sp: name.Span, Name: name.Text},
	}

	if _, ok := p.eat(token.KwAs); ok {
		rename, err := p.expect(token.Ident)
		if err != nil {
			return syntax.ExposeItem{}, err
		}

		item.Rename = &syntax.Ident{Sp: rename.Span, Name: rename.Text}
	}

	return item, nil
}

// syncExposeItem skips to the start of the next exposing entry. It
// reports whether another entry follows. Stopping short of ";" keeps the
// enclosing import's terminator intact.
func (p *parser) syncExposeItem() bool {
	for {
		t, ok := p.peek()
		if !ok || t.Kind == token.Semi || t.Kind == token.RParen {
			return false
		}

		p.next()

		if t.Kind == token.Comma {
			return true
		}
	}
}

// lastSpan returns the span of the most recently consumed token.
func (p *parser) lastSpan() token.Span {
	if p.pos == 0 {
		return token.Make(0, 0)
	}

	return p.toks[p.pos-1].Span
}
