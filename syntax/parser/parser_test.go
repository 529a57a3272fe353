package parser

import (
	"strings"
	"testing"

	"github.com/teya-lang/teya/syntax"
)

func parseFile(t *testing.T, src string) *syntax.ModuleFile {
	t.Helper()

	m, errs := ParseModuleString("test.teya", src)
	if len(errs) > 0 {
		t.Fatalf("parse: %v", errs)
	}

	mf, ok := m.(*syntax.ModuleFile)
	if !ok {
		t.Fatalf("got %T, want module file", m)
	}

	return mf
}

func TestParseModule(t *testing.T) {
	src := strings.Join([]string{
		"module prelude;",
		"",
		"id : (a : Type) -> a -> a;",
		"id a x = x;",
	}, "\n")

	m := parseFile(t, src)

	if m.Name.Name != "prelude" {
		t.Errorf("module name = %q", m.Name.Name)
	}

	if len(m.Decls) != 2 {
		t.Fatalf("got %d declarations", len(m.Decls))
	}

	claim, ok := m.Decls[0].(*syntax.Claim)
	if !ok || claim.Name.Name != "id" {
		t.Fatalf("first declaration = %v", m.Decls[0])
	}

	if _, ok := claim.Ann.(*syntax.Pi); !ok {
		t.Errorf("claim annotation = %T, want pi", claim.Ann)
	}

	def, ok := m.Decls[1].(*syntax.Definition)
	if !ok || def.Name.Name != "id" {
		t.Fatalf("second declaration = %v", m.Decls[1])
	}

	if len(def.Params) != 2 {
		t.Errorf("definition params = %v", def.Params)
	}
}

func TestParseModuleSpansCoverInput(t *testing.T) {
	src := "module test;\nfoo : Type;\n"
	m := parseFile(t, src)

	if m.Sp.Start != 0 || m.Sp.End != len(src) {
		t.Errorf("module span = %v, want 0..%d", m.Sp, len(src))
	}

	decl := m.Decls[0]
	if !m.Sp.Contains(decl.Span()) {
		t.Errorf("declaration span %v escapes module span %v",
			decl.Span(), m.Sp)
	}

	// The claim span runs from its name through its terminator.
	if sp := decl.Span(); sp.Start != 13 || sp.End != 24 {
		t.Errorf("claim span = %v", sp)
	}
}

func TestParseModuleBadHeader(t *testing.T) {
	m, errs := ParseModuleString("test.teya", "foo : Type;\n")

	if len(errs) != 1 {
		t.Fatalf("errors = %v, want one", errs)
	}

	if _, ok := m.(*syntax.ErrorModule); !ok {
		t.Fatalf("got %T, want error module", m)
	}

	if sp := m.Span(); sp.Start != 0 || sp.End != 12 {
		t.Errorf("span = %v, want whole input", sp)
	}
}

func TestParseEmptyModule(t *testing.T) {
	m := parseFile(t, "module empty;")

	if len(m.Decls) != 0 {
		t.Errorf("declarations = %v, want none", m.Decls)
	}
}

func TestDefinitionWithGroupedParams(t *testing.T) {
	m := parseFile(t, "module test;\nconst (a b : Type) x = a;")

	def := m.Decls[0].(*syntax.Definition)

	if len(def.Params) != 2 {
		t.Fatalf("params = %v", def.Params)
	}

	if len(def.Params[0].Names) != 2 || def.Params[0].Ann == nil {
		t.Errorf("group = %v", def.Params[0])
	}
}

func TestImportForms(t *testing.T) {
	src := strings.Join([]string{
		"module test;",
		"import prelude;",
		"import prelude as p;",
		"import prelude (..);",
		"import prelude (unit, id as identity);",
		"import prelude as p (unit);",
	}, "\n")

	m := parseFile(t, src)

	if len(m.Decls) != 5 {
		t.Fatalf("got %d declarations", len(m.Decls))
	}

	plain := m.Decls[0].(*syntax.Import)
	if plain.Name.Name != "prelude" || plain.Rename != nil || plain.Exposing != nil {
		t.Errorf("plain import = %+v", plain)
	}

	renamed := m.Decls[1].(*syntax.Import)
	if renamed.Rename == nil || renamed.Rename.Name != "p" {
		t.Errorf("renamed import = %+v", renamed)
	}

	all := m.Decls[2].(*syntax.Import)
	if _, ok := all.Exposing.(*syntax.ExposeAll); !ok {
		t.Errorf("exposing = %T, want expose-all", all.Exposing)
	}

	exact := m.Decls[3].(*syntax.Import)

	list, ok := exact.Exposing.(*syntax.ExposeExact)
	if !ok || len(list.Items) != 2 {
		t.Fatalf("exposing = %v", exact.Exposing)
	}

	if list.Items[0].Name.Name != "unit" || list.Items[0].Rename != nil {
		t.Errorf("first item = %+v", list.Items[0])
	}

	if list.Items[1].Rename == nil || list.Items[1].Rename.Name != "identity" {
		t.Errorf("second item = %+v", list.Items[1])
	}

	both := m.Decls[4].(*syntax.Import)
	if both.Rename == nil || both.Exposing == nil {
		t.Errorf("combined import = %+v", both)
	}
}

func TestDocComments(t *testing.T) {
	src := strings.Join([]string{
		"module test;",
		"||| The identity function.",
		"||| It does nothing.",
		"id : Type;",
	}, "\n")

	m := parseFile(t, src)

	claim := m.Decls[0].(*syntax.Claim)
	if len(claim.Doc) != 2 || claim.Doc[0] != "The identity function." {
		t.Errorf("doc = %q", claim.Doc)
	}
}

func TestRecoveryMissingAnnotation(t *testing.T) {
	src := "module test;\nfoo : ;\nbar : Type;\n"

	m, errs := ParseModuleString("test.teya", src)

	if len(errs) != 1 {
		t.Fatalf("errors = %v, want one", errs)
	}

	// The error points at the ";" that appeared where a term was needed.
	if errs[0].Kind != Unexpected || errs[0].Span.Start != 19 || errs[0].Span.End != 20 {
		t.Errorf("error = %v at %v", errs[0], errs[0].Span)
	}

	mf := m.(*syntax.ModuleFile)
	if len(mf.Decls) != 2 {
		t.Fatalf("got %d declarations, want recovery to keep both", len(mf.Decls))
	}

	// "foo : ;" collapses into a single error declaration covering
	// "foo" through its terminating ";".
	foo, ok := mf.Decls[0].(*syntax.ErrorDecl)
	if !ok {
		t.Fatalf("first declaration = %T, want error", mf.Decls[0])
	}

	if foo.Sp.Start != 13 || foo.Sp.End != 20 {
		t.Errorf("error declaration span = %v", foo.Sp)
	}

	bar, ok := mf.Decls[1].(*syntax.Claim)
	if !ok || bar.Name.Name != "bar" {
		t.Errorf("bar = %v, want intact claim", mf.Decls[1])
	}
}

func TestRecoveryBadDeclaration(t *testing.T) {
	src := "module test;\n( nonsense;\nbar : Type;\n"

	m, errs := ParseModuleString("test.teya", src)

	if len(errs) == 0 {
		t.Fatal("expected errors")
	}

	mf := m.(*syntax.ModuleFile)
	if len(mf.Decls) != 2 {
		t.Fatalf("got %d declarations", len(mf.Decls))
	}

	if _, ok := mf.Decls[0].(*syntax.ErrorDecl); !ok {
		t.Errorf("first declaration = %T, want error", mf.Decls[0])
	}

	if bar, ok := mf.Decls[1].(*syntax.Claim); !ok || bar.Name.Name != "bar" {
		t.Errorf("second declaration = %v, want intact claim", mf.Decls[1])
	}
}

func TestRecoveryErrorDeclSpanIncludesTerminator(t *testing.T) {
	src := "module test;\n( nonsense;\n"

	m, _ := ParseModuleString("test.teya", src)

	decl := m.(*syntax.ModuleFile).Decls[0]

	// "( nonsense;" spans bytes 13..24.
	if sp := decl.Span(); sp.Start != 13 || sp.End != 24 {
		t.Errorf("error declaration span = %v", sp)
	}
}

func TestRecoveryExposingEntry(t *testing.T) {
	src := "module test;\nimport prelude (unit, 5, id);\n"

	m, errs := ParseModuleString("test.teya", src)

	if len(errs) != 1 || errs[0].Kind != Unexpected {
		t.Fatalf("errors = %v, want one unexpected", errs)
	}

	imp := m.(*syntax.ModuleFile).Decls[0].(*syntax.Import)

	list, ok := imp.Exposing.(*syntax.ExposeExact)
	if !ok {
		t.Fatalf("exposing = %T", imp.Exposing)
	}

	if len(list.Items) != 2 ||
		list.Items[0].Name.Name != "unit" ||
		list.Items[1].Name.Name != "id" {
		t.Errorf("items = %v, want unit and id", list.Items)
	}
}

func TestRecoveryExposingUnclosed(t *testing.T) {
	src := "module test;\nimport prelude (unit;\nbar : Type;\n"

	m, errs := ParseModuleString("test.teya", src)

	if len(errs) == 0 {
		t.Fatal("expected errors")
	}

	mf := m.(*syntax.ModuleFile)

	imp, ok := mf.Decls[0].(*syntax.Import)
	if !ok {
		t.Fatalf("first declaration = %T", mf.Decls[0])
	}

	if _, ok := imp.Exposing.(*syntax.ErrorExposing); !ok {
		t.Errorf("exposing = %T, want error", imp.Exposing)
	}

	if bar, ok := mf.Decls[1].(*syntax.Claim); !ok || bar.Name.Name != "bar" {
		t.Errorf("second declaration = %v, want intact claim", mf.Decls[1])
	}
}

func TestMultipleErrorsAccumulate(t *testing.T) {
	src := "module test;\nfoo : ;\nbar = ;\nbaz : Type;\n"

	m, errs := ParseModuleString("test.teya", src)

	if len(errs) != 2 {
		t.Fatalf("errors = %v, want two", errs)
	}

	mf := m.(*syntax.ModuleFile)
	if len(mf.Decls) != 3 {
		t.Fatalf("got %d declarations", len(mf.Decls))
	}

	for i := 0; i < 2; i++ {
		if _, ok := mf.Decls[i].(*syntax.ErrorDecl); !ok {
			t.Errorf("declaration %d = %T, want error", i, mf.Decls[i])
		}
	}

	if baz, ok := mf.Decls[2].(*syntax.Claim); !ok || baz.Name.Name != "baz" {
		t.Errorf("last declaration = %v, want intact claim", mf.Decls[2])
	}
}

func TestRecoveryAtomKeepsDeclaration(t *testing.T) {
	// A stray literal in term position recovers at the atomic grain:
	// the claim itself survives with an error node as its annotation.
	src := "module test;\nfoo : 5;\nbar : Type;\n"

	m, errs := ParseModuleString("test.teya", src)

	if len(errs) != 1 || errs[0].Kind != Unexpected {
		t.Fatalf("errors = %v, want one unexpected", errs)
	}

	mf := m.(*syntax.ModuleFile)
	if len(mf.Decls) != 2 {
		t.Fatalf("got %d declarations", len(mf.Decls))
	}

	foo, ok := mf.Decls[0].(*syntax.Claim)
	if !ok {
		t.Fatalf("first declaration = %T, want claim", mf.Decls[0])
	}

	if _, ok := foo.Ann.(*syntax.ErrorTerm); !ok {
		t.Errorf("foo annotation = %T, want error term", foo.Ann)
	}

	if bar, ok := mf.Decls[1].(*syntax.Claim); !ok || bar.Name.Name != "bar" {
		t.Errorf("second declaration = %v, want intact claim", mf.Decls[1])
	}
}
