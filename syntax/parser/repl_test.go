package parser

import (
	"testing"

	"github.com/teya-lang/teya/syntax"
)

func TestReplNoOp(t *testing.T) {
	for _, src := range []string{"", "   ", "-- just a comment"} {
		cmd, errs := ParseReplCommandString(src)

		if len(errs) > 0 {
			t.Errorf("%q: errors = %v", src, errs)
		}

		if _, ok := cmd.(*syntax.ReplNoOp); !ok {
			t.Errorf("%q: got %T, want no-op", src, cmd)
		}
	}
}

func TestReplHelp(t *testing.T) {
	for _, src := range []string{":?", ":h", ":help"} {
		cmd, errs := ParseReplCommandString(src)

		if len(errs) > 0 {
			t.Errorf("%q: errors = %v", src, errs)
		}

		if _, ok := cmd.(*syntax.ReplHelp); !ok {
			t.Errorf("%q: got %T, want help", src, cmd)
		}
	}
}

func TestReplQuit(t *testing.T) {
	for _, src := range []string{":q", ":quit"} {
		cmd, errs := ParseReplCommandString(src)

		if len(errs) > 0 {
			t.Errorf("%q: errors = %v", src, errs)
		}

		if _, ok := cmd.(*syntax.ReplQuit); !ok {
			t.Errorf("%q: got %T, want quit", src, cmd)
		}
	}
}

func TestReplTypeOf(t *testing.T) {
	cmd, errs := ParseReplCommandString(`:t \x : Type => x`)

	if len(errs) > 0 {
		t.Fatalf("errors = %v", errs)
	}

	typeOf, ok := cmd.(*syntax.ReplTypeOf)
	if !ok {
		t.Fatalf("got %T, want type-of", cmd)
	}

	if _, ok := typeOf.Term.(*syntax.Lam); !ok {
		t.Errorf("term = %T, want lambda", typeOf.Term)
	}

	if sp := typeOf.Span(); sp.Start != 0 || sp.End != 17 {
		t.Errorf("span = %v", sp)
	}
}

func TestReplTypeOfMissingTerm(t *testing.T) {
	cmd, errs := ParseReplCommandString(":t")

	if len(errs) != 1 || errs[0].Kind != Unexpected {
		t.Fatalf("errors = %v, want one unexpected", errs)
	}

	if _, ok := cmd.(*syntax.ReplError); !ok {
		t.Errorf("got %T, want repl error", cmd)
	}
}

func TestReplEval(t *testing.T) {
	cmd, errs := ParseReplCommandString("f x")

	if len(errs) > 0 {
		t.Fatalf("errors = %v", errs)
	}

	ev, ok := cmd.(*syntax.ReplEval)
	if !ok {
		t.Fatalf("got %T, want eval", cmd)
	}

	if _, ok := ev.Term.(*syntax.App); !ok {
		t.Errorf("term = %T, want app", ev.Term)
	}
}

func TestReplUnknownCommand(t *testing.T) {
	cmd, errs := ParseReplCommandString(":bogus")

	if len(errs) != 1 || errs[0].Kind != UnknownReplCommand {
		t.Fatalf("errors = %v, want one unknown command", errs)
	}

	if errs[0].Text != "bogus" {
		t.Errorf("error text = %q", errs[0].Text)
	}

	if _, ok := cmd.(*syntax.ReplError); !ok {
		t.Errorf("got %T, want repl error", cmd)
	}
}

func TestReplTrailingInput(t *testing.T) {
	_, errs := ParseReplCommandString(":quit now")

	if len(errs) != 1 || errs[0].Kind != Unexpected {
		t.Errorf("errors = %v, want one unexpected", errs)
	}
}

func TestReplColonMidInputIsAnnotation(t *testing.T) {
	cmd, errs := ParseReplCommandString("x : Type")

	if len(errs) > 0 {
		t.Fatalf("errors = %v", errs)
	}

	ev := cmd.(*syntax.ReplEval)

	if _, ok := ev.Term.(*syntax.Ann); !ok {
		t.Errorf("term = %T, want annotation", ev.Term)
	}
}
