package parser

import (
	"testing"

	"github.com/teya-lang/teya/syntax"
)

func parseTerm(t *testing.T, src string) syntax.Term {
	t.Helper()

	cmd, errs := ParseReplCommandString(src)
	if len(errs) > 0 {
		t.Fatalf("parse %q: %v", src, errs)
	}

	ev, ok := cmd.(*syntax.ReplEval)
	if !ok {
		t.Fatalf("parse %q: got %T, want eval", src, cmd)
	}

	return ev.Term
}

func TestArrow(t *testing.T) {
	term := parseTerm(t, "A -> B")

	arrow, ok := term.(*syntax.Arrow)
	if !ok {
		t.Fatalf("got %T, want arrow", term)
	}

	if v, ok := arrow.Domain.(*syntax.Var); !ok || v.Name.Name != "A" {
		t.Errorf("domain = %v", arrow.Domain)
	}

	if v, ok := arrow.Codomain.(*syntax.Var); !ok || v.Name.Name != "B" {
		t.Errorf("codomain = %v", arrow.Codomain)
	}
}

func TestArrowRightAssociative(t *testing.T) {
	term := parseTerm(t, "A -> B -> C")

	outer, ok := term.(*syntax.Arrow)
	if !ok {
		t.Fatalf("got %T, want arrow", term)
	}

	if _, ok := outer.Codomain.(*syntax.Arrow); !ok {
		t.Errorf("codomain = %T, want nested arrow", outer.Codomain)
	}
}

func TestPiSingleBinder(t *testing.T) {
	term := parseTerm(t, "(x : Type) -> x")

	pi, ok := term.(*syntax.Pi)
	if !ok {
		t.Fatalf("got %T, want pi", term)
	}

	if len(pi.Names) != 1 || pi.Names[0].Name != "x" {
		t.Errorf("binders = %v", pi.Names)
	}

	if u, ok := pi.Ann.(*syntax.Universe); !ok || u.Level != nil {
		t.Errorf("annotation = %v", pi.Ann)
	}

	if v, ok := pi.Body.(*syntax.Var); !ok || v.Name.Name != "x" {
		t.Errorf("body = %v", pi.Body)
	}
}

func TestPiMultipleBinders(t *testing.T) {
	term := parseTerm(t, "(x y : Type 0) -> x")

	pi, ok := term.(*syntax.Pi)
	if !ok {
		t.Fatalf("got %T, want pi", term)
	}

	if len(pi.Names) != 2 ||
		pi.Names[0].Name != "x" || pi.Names[1].Name != "y" {
		t.Errorf("binders = %v", pi.Names)
	}

	u, ok := pi.Ann.(*syntax.Universe)
	if !ok || u.Level == nil || *u.Level != 0 {
		t.Errorf("annotation = %v", pi.Ann)
	}
}

func TestPiNested(t *testing.T) {
	term := parseTerm(t, "(x : Type) -> (y : x) -> y")

	pi, ok := term.(*syntax.Pi)
	if !ok {
		t.Fatalf("got %T, want pi", term)
	}

	if _, ok := pi.Body.(*syntax.Pi); !ok {
		t.Errorf("body = %T, want nested pi", pi.Body)
	}
}

func TestParenthesizedAnnIsNotPiWithoutArrow(t *testing.T) {
	term := parseTerm(t, "(x : Type)")

	parens, ok := term.(*syntax.Parens)
	if !ok {
		t.Fatalf("got %T, want parens", term)
	}

	if _, ok := parens.Inner.(*syntax.Ann); !ok {
		t.Errorf("inner = %T, want annotation", parens.Inner)
	}
}

func TestArrowFromParenthesizedApp(t *testing.T) {
	term := parseTerm(t, "(A B) -> C")

	arrow, ok := term.(*syntax.Arrow)
	if !ok {
		t.Fatalf("got %T, want arrow", term)
	}

	parens, ok := arrow.Domain.(*syntax.Parens)
	if !ok {
		t.Fatalf("domain = %T, want parens", arrow.Domain)
	}

	if _, ok := parens.Inner.(*syntax.App); !ok {
		t.Errorf("inner = %T, want app", parens.Inner)
	}
}

func TestAmbiguousPiBinder(t *testing.T) {
	tests := []string{
		"((x) : Type) -> Type",
		"(Type : Type) -> Type",
		"(f (x y) : Type) -> Type",
	}

	for _, src := range tests {
		cmd, errs := ParseReplCommandString(src)

		if len(errs) != 1 || errs[0].Kind != AmbiguousPiBinder {
			t.Errorf("%q: errors = %v, want one ambiguous binder", src, errs)

			continue
		}

		ev, ok := cmd.(*syntax.ReplEval)
		if !ok {
			t.Fatalf("%q: got %T", src, cmd)
		}

		if _, ok := ev.Term.(*syntax.ErrorTerm); !ok {
			t.Errorf("%q: term = %T, want error term", src, ev.Term)
		}
	}
}

func TestAppLeftAssociative(t *testing.T) {
	term := parseTerm(t, "f x y")

	outer, ok := term.(*syntax.App)
	if !ok {
		t.Fatalf("got %T, want app", term)
	}

	inner, ok := outer.Fn.(*syntax.App)
	if !ok {
		t.Fatalf("fn = %T, want app", outer.Fn)
	}

	if v, ok := inner.Fn.(*syntax.Var); !ok || v.Name.Name != "f" {
		t.Errorf("head = %v", inner.Fn)
	}

	if v, ok := outer.Arg.(*syntax.Var); !ok || v.Name.Name != "y" {
		t.Errorf("last arg = %v", outer.Arg)
	}
}

func TestAnnRightAssociative(t *testing.T) {
	term := parseTerm(t, "a : b : c")

	outer, ok := term.(*syntax.Ann)
	if !ok {
		t.Fatalf("got %T, want ann", term)
	}

	if _, ok := outer.Type.(*syntax.Ann); !ok {
		t.Errorf("type = %T, want nested ann", outer.Type)
	}
}

func TestAnnBindsLambda(t *testing.T) {
	term := parseTerm(t, `\x => x : Type`)

	ann, ok := term.(*syntax.Ann)
	if !ok {
		t.Fatalf("got %T, want ann", term)
	}

	if _, ok := ann.Expr.(*syntax.Lam); !ok {
		t.Errorf("expr = %T, want lambda", ann.Expr)
	}
}

func TestLamBareParams(t *testing.T) {
	term := parseTerm(t, `\x y => x`)

	lam, ok := term.(*syntax.Lam)
	if !ok {
		t.Fatalf("got %T, want lambda", term)
	}

	if len(lam.Params) != 2 {
		t.Fatalf("params = %v", lam.Params)
	}

	for _, p := range lam.Params {
		if p.Ann != nil || len(p.Names) != 1 {
			t.Errorf("param = %v, want bare single name", p)
		}
	}
}

func TestLamAnnotatedSingle(t *testing.T) {
	term := parseTerm(t, `\x : Type => x`)

	lam, ok := term.(*syntax.Lam)
	if !ok {
		t.Fatalf("got %T, want lambda", term)
	}

	if len(lam.Params) != 1 || lam.Params[0].Ann == nil {
		t.Fatalf("params = %v, want one annotated", lam.Params)
	}
}

func TestLamGroupedParams(t *testing.T) {
	term := parseTerm(t, `\(x y : Type) z => x`)

	lam, ok := term.(*syntax.Lam)
	if !ok {
		t.Fatalf("got %T, want lambda", term)
	}

	if len(lam.Params) != 2 {
		t.Fatalf("params = %v", lam.Params)
	}

	if len(lam.Params[0].Names) != 2 || lam.Params[0].Ann == nil {
		t.Errorf("group = %v", lam.Params[0])
	}

	if len(lam.Params[1].Names) != 1 || lam.Params[1].Ann != nil {
		t.Errorf("bare = %v", lam.Params[1])
	}
}

func TestUniverseLevels(t *testing.T) {
	tests := []struct {
		src   string
		level uint32
		bare  bool
	}{
		{"Type", 0, true},
		{"Type 0", 0, false},
		{"Type 3", 3, false},
		{"Type 4294967295", 1<<32 - 1, false},
	}

	for _, tt := range tests {
		term := parseTerm(t, tt.src)

		u, ok := term.(*syntax.Universe)
		if !ok {
			t.Fatalf("%q: got %T, want universe", tt.src, term)
		}

		if tt.bare {
			if u.Level != nil {
				t.Errorf("%q: level = %v, want none", tt.src, *u.Level)
			}

			continue
		}

		if u.Level == nil || *u.Level != tt.level {
			t.Errorf("%q: level = %v, want %d", tt.src, u.Level, tt.level)
		}
	}
}

func TestUniverseLevelNotAnArgument(t *testing.T) {
	// The level literal binds looser than application, so it never
	// attaches to a universe in argument position.
	_, errs := ParseReplCommandString("f Type 1")

	if len(errs) != 1 || errs[0].Kind != Unexpected {
		t.Fatalf("errors = %v, want one unexpected", errs)
	}

	// Parenthesizing the leveled universe is the applicable form.
	term := parseTerm(t, "f (Type 1)")

	app, ok := term.(*syntax.App)
	if !ok {
		t.Fatalf("got %T, want app", term)
	}

	par, ok := app.Arg.(*syntax.Parens)
	if !ok {
		t.Fatalf("argument = %T, want parens", app.Arg)
	}

	u, ok := par.Inner.(*syntax.Universe)
	if !ok || u.Level == nil || *u.Level != 1 {
		t.Errorf("inner = %v, want universe level 1", par.Inner)
	}
}

func TestUniverseLevelOverflow(t *testing.T) {
	cmd, errs := ParseReplCommandString("Type 4294967296")

	if len(errs) != 1 || errs[0].Kind != LiteralOverflow {
		t.Fatalf("errors = %v, want one literal overflow", errs)
	}

	if errs[0].Text != "4294967296" {
		t.Errorf("error text = %q", errs[0].Text)
	}

	ev, ok := cmd.(*syntax.ReplEval)
	if !ok {
		t.Fatalf("got %T, want eval", cmd)
	}

	et, ok := ev.Term.(*syntax.ErrorTerm)
	if !ok {
		t.Fatalf("term = %T, want error term", ev.Term)
	}

	// The error node covers "Type 4294967296".
	if et.Sp.Start != 0 || et.Sp.End != 15 {
		t.Errorf("span = %v", et.Sp)
	}
}

func TestUniverseOverflowDoesNotStopParsing(t *testing.T) {
	cmd, errs := ParseReplCommandString("Type 4294967296 -> A")

	if len(errs) != 1 || errs[0].Kind != LiteralOverflow {
		t.Fatalf("errors = %v", errs)
	}

	ev := cmd.(*syntax.ReplEval)

	arrow, ok := ev.Term.(*syntax.Arrow)
	if !ok {
		t.Fatalf("term = %T, want arrow", ev.Term)
	}

	if _, ok := arrow.Domain.(*syntax.ErrorTerm); !ok {
		t.Errorf("domain = %T, want error term", arrow.Domain)
	}
}

func TestTermSpans(t *testing.T) {
	term := parseTerm(t, "f (x y : Type) -> z")

	// Spans cover the full extent of each node and enclose children.
	if sp := term.Span(); sp.Start != 0 || sp.End != 19 {
		t.Errorf("term span = %v", sp)
	}

	arrow := term.(*syntax.Arrow)

	if sp := arrow.Domain.Span(); !term.Span().Contains(sp) {
		t.Errorf("domain span %v escapes term span %v", sp, term.Span())
	}
}
