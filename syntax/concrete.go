// Package syntax defines the concrete syntax tree of the teya surface
// language.
//
// Every node records the half-open byte span [Start, End) of the source
// text it was parsed from, and a node's span always encloses the spans of
// its children. Nodes produced by error recovery are represented by the
// Error* variants so a tree exists for every input, however malformed.
package syntax

import "github.com/teya-lang/teya/syntax/token"

// Node is implemented by every syntax tree node.
type Node interface {
	// Span is the half-open byte range of source text this node covers.
	Span() token.Span
}

// Ident is a name together with its location.
type Ident struct {
	Sp   token.Span
	Name string
}

func (i Ident) Span() token.Span { return i.Sp }

// Module is a parsed source file.
type Module interface {
	Node
	isModule()
}

// ModuleFile is a well-formed module header followed by declarations.
type ModuleFile struct {
	Sp    token.Span
	Name  Ident
	Decls []Declaration
}

// ErrorModule replaces a module whose header could not be parsed.
type ErrorModule struct {
	Sp token.Span
}

func (m *ModuleFile) Span() token.Span  { return m.Sp }
func (m *ErrorModule) Span() token.Span { return m.Sp }

func (*ModuleFile) isModule()  {}
func (*ErrorModule) isModule() {}

// Declaration is a top-level item in a module.
type Declaration interface {
	Node
	isDeclaration()
}

// Import brings another module's declarations into scope, optionally
// renamed and optionally restricted to an exposing list.
type Import struct {
	Sp       token.Span
	Name     Ident
	Rename   *Ident   // nil unless "as new-name"
	Exposing Exposing // nil unless "(..)" or "(item, ...)"
}

// Claim ascribes a type to a name, as in "foo : Type".
type Claim struct {
	Sp   token.Span
	Doc  []string
	Name Ident
	Ann  Term
}

// Definition gives a name its value, as in "foo x = x".
type Definition struct {
	Sp     token.Span
	Doc    []string
	Name   Ident
	Params []LamParam
	Body   Term
}

// ErrorDecl replaces a declaration that could not be parsed.
type ErrorDecl struct {
	Sp token.Span
}

func (d *Import) Span() token.Span     { return d.Sp }
func (d *Claim) Span() token.Span      { return d.Sp }
func (d *Definition) Span() token.Span { return d.Sp }
func (d *ErrorDecl) Span() token.Span  { return d.Sp }

func (*Import) isDeclaration()     {}
func (*Claim) isDeclaration()      {}
func (*Definition) isDeclaration() {}
func (*ErrorDecl) isDeclaration()  {}

// Exposing restricts which names an import brings into scope.
type Exposing interface {
	Node
	isExposing()
}

// ExposeAll is the wildcard list "(..)".
type ExposeAll struct {
	Sp token.Span
}

// ExposeExact lists the imported names, as in "(unit, id as identity)".
type ExposeExact struct {
	Sp    token.Span
	Items []ExposeItem
}

// ErrorExposing replaces an exposing list that could not be parsed.
type ErrorExposing struct {
	Sp token.Span
}

// ExposeItem is one entry of an [ExposeExact] list.
type ExposeItem struct {
	Name   Ident
	Rename *Ident // nil unless "as new-name"
}

func (e *ExposeAll) Span() token.Span     { return e.Sp }
func (e *ExposeExact) Span() token.Span   { return e.Sp }
func (e *ErrorExposing) Span() token.Span { return e.Sp }

func (*ExposeAll) isExposing()     {}
func (*ExposeExact) isExposing()   {}
func (*ErrorExposing) isExposing() {}

// Span returns the byte range of the item including its rename.
func (e ExposeItem) Span() token.Span {
	if e.Rename != nil {
		return e.Name.Sp.To(e.Rename.Sp)
	}

	return e.Name.Sp
}

// Term is an expression of the surface language.
type Term interface {
	Node
	isTerm()
}

// Parens is an explicitly parenthesized term. Parentheses are kept in the
// tree so formatting can reproduce them exactly.
type Parens struct {
	Sp    token.Span
	Inner Term
}

// Ann ascribes a type to an expression, as in "x : Type".
type Ann struct {
	Expr Term
	Type Term
}

// Universe is the type of types, optionally at an explicit level.
type Universe struct {
	Sp    token.Span
	Level *uint32 // nil for "Type", set for "Type 1"
}

// Var is a reference to a name.
type Var struct {
	Name Ident
}

// Lam is a lambda abstraction, as in "\x (y : Type) => x".
type Lam struct {
	Sp     token.Span
	Params []LamParam
	Body   Term
}

// Pi is a dependent function type, as in "(x : Type) -> x".
type Pi struct {
	Sp    token.Span
	Names []Ident
	Ann   Term
	Body  Term
}

// Arrow is a non-dependent function type, as in "Type -> Type".
type Arrow struct {
	Domain   Term
	Codomain Term
}

// App applies a function to an argument. Application is left-associative,
// so "f x y" is App(App(f, x), y).
type App struct {
	Fn  Term
	Arg Term
}

// ErrorTerm replaces a term that could not be parsed.
type ErrorTerm struct {
	Sp token.Span
}

func (t *Parens) Span() token.Span    { return t.Sp }
func (t *Ann) Span() token.Span       { return t.Expr.Span().To(t.Type.Span()) }
func (t *Universe) Span() token.Span  { return t.Sp }
func (t *Var) Span() token.Span       { return t.Name.Sp }
func (t *Lam) Span() token.Span       { return t.Sp }
func (t *Pi) Span() token.Span        { return t.Sp }
func (t *Arrow) Span() token.Span     { return t.Domain.Span().To(t.Codomain.Span()) }
func (t *App) Span() token.Span       { return t.Fn.Span().To(t.Arg.Span()) }
func (t *ErrorTerm) Span() token.Span { return t.Sp }

func (*Parens) isTerm()    {}
func (*Ann) isTerm()       {}
func (*Universe) isTerm()  {}
func (*Var) isTerm()       {}
func (*Lam) isTerm()       {}
func (*Pi) isTerm()        {}
func (*Arrow) isTerm()     {}
func (*App) isTerm()       {}
func (*ErrorTerm) isTerm() {}

// LamParam is one parameter group of a [Lam]. A bare name has a nil Ann;
// an annotated group "(x y : Type)" shares one Ann among its names.
type LamParam struct {
	Names []Ident
	Ann   Term
}

// Span returns the byte range of the parameter group excluding any
// enclosing parentheses.
func (p LamParam) Span() token.Span {
	sp := p.Names[0].Sp

	for _, n := range p.Names[1:] {
		sp = sp.To(n.Sp)
	}

	if p.Ann != nil {
		sp = sp.To(p.Ann.Span())
	}

	return sp
}

// ReplCommand is one line of REPL input.
type ReplCommand interface {
	Node
	isReplCommand()
}

// ReplNoOp is blank input.
type ReplNoOp struct {
	Sp token.Span
}

// ReplHelp requests the command summary, via ":help", ":h", or ":?".
type ReplHelp struct {
	Sp token.Span
}

// ReplQuit ends the session, via ":quit" or ":q".
type ReplQuit struct {
	Sp token.Span
}

// ReplEval evaluates a term entered without a command.
type ReplEval struct {
	Term Term
}

// ReplTypeOf reports the type of a term, via ":type" or ":t".
type ReplTypeOf struct {
	Sp   token.Span
	Term Term
}

// ReplError replaces REPL input that could not be parsed.
type ReplError struct {
	Sp token.Span
}

func (c *ReplNoOp) Span() token.Span   { return c.Sp }
func (c *ReplHelp) Span() token.Span   { return c.Sp }
func (c *ReplQuit) Span() token.Span   { return c.Sp }
func (c *ReplEval) Span() token.Span   { return c.Term.Span() }
func (c *ReplTypeOf) Span() token.Span { return c.Sp }
func (c *ReplError) Span() token.Span  { return c.Sp }

func (*ReplNoOp) isReplCommand()   {}
func (*ReplHelp) isReplCommand()   {}
func (*ReplQuit) isReplCommand()   {}
func (*ReplEval) isReplCommand()   {}
func (*ReplTypeOf) isReplCommand() {}
func (*ReplError) isReplCommand()  {}
