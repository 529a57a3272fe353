package syntax

import (
	"io"
	"strconv"
	"strings"
)

// FormatModule renders a module as canonical source text.
//
// The formatter emits parentheses only where the tree contains [Parens]
// nodes, so parsing the output of a parsed tree yields an [Equal] tree.
// Error recovery nodes render as "?", which never reparses to a valid
// term.
func FormatModule(m Module) string {
	var f formatter

	f.module(m)

	return f.b.String()
}

// FormatDecl renders a single declaration as source text.
func FormatDecl(d Declaration) string {
	var f formatter

	f.decl(d)

	return f.b.String()
}

// FormatTerm renders a term as source text.
func FormatTerm(t Term) string {
	var f formatter

	f.term(t)

	return f.b.String()
}

// WriteModule writes the canonical source text of m to w.
func WriteModule(w io.Writer, m Module) error {
	_, err := io.WriteString(w, FormatModule(m))

	return err
}

type formatter struct {
	b strings.Builder
}

func (f *formatter) module(m Module) {
	switch m := m.(type) {
	case *ModuleFile:
		f.b.WriteString("module ")
		f.b.WriteString(m.Name.Name)
		f.b.WriteString(";\n")

		for _, d := range m.Decls {
			f.b.WriteByte('\n')
			f.decl(d)
			f.b.WriteByte('\n')
		}

	case *ErrorModule:
		f.b.WriteString("?\n")
	}
}

func (f *formatter) decl(d Declaration) {
	switch d := d.(type) {
	case *Import:
		f.b.WriteString("import ")
		f.b.WriteString(d.Name.Name)

		if d.Rename != nil {
			f.b.WriteString(" as ")
			f.b.WriteString(d.Rename.Name)
		}

		if d.Exposing != nil {
			f.b.WriteByte(' ')
			f.exposing(d.Exposing)
		}

		f.b.WriteByte(';')

	case *Claim:
		f.doc(d.Doc)
		f.b.WriteString(d.Name.Name)
		f.b.WriteString(" : ")
		f.term(d.Ann)
		f.b.WriteByte(';')

	case *Definition:
		f.doc(d.Doc)
		f.b.WriteString(d.Name.Name)

		for _, p := range d.Params {
			f.b.WriteByte(' ')
			f.param(p)
		}

		f.b.WriteString(" = ")
		f.term(d.Body)
		f.b.WriteByte(';')

	case *ErrorDecl:
		f.b.WriteString("?;")
	}
}

func (f *formatter) doc(lines []string) {
	for _, line := range lines {
		f.b.WriteString("||| ")
		f.b.WriteString(line)
		f.b.WriteByte('\n')
	}
}

func (f *formatter) exposing(e Exposing) {
	switch e := e.(type) {
	case *ExposeAll:
		f.b.WriteString("(..)")

	case *ExposeExact:
		f.b.WriteByte('(')

		for i, item := range e.Items {
			if i > 0 {
				f.b.WriteString(", ")
			}

			f.b.WriteString(item.Name.Name)

			if item.Rename != nil {
				f.b.WriteString(" as ")
				f.b.WriteString(item.Rename.Name)
			}
		}

		f.b.WriteByte(')')

	case *ErrorExposing:
		f.b.WriteString("(?)")
	}
}

func (f *formatter) term(t Term) {
	switch t := t.(type) {
	case *Parens:
		f.b.WriteByte('(')
		f.term(t.Inner)
		f.b.WriteByte(')')

	case *Ann:
		f.term(t.Expr)
		f.b.WriteString(" : ")
		f.term(t.Type)

	case *Universe:
		f.b.WriteString("Type")

		if t.Level != nil {
			f.b.WriteByte(' ')
			f.b.WriteString(strconv.FormatUint(uint64(*t.Level), 10))
		}

	case *Var:
		f.b.WriteString(t.Name.Name)

	case *Lam:
		f.lam(t)

	case *Pi:
		f.b.WriteByte('(')
		f.names(t.Names)
		f.b.WriteString(" : ")
		f.term(t.Ann)
		f.b.WriteString(") -> ")
		f.term(t.Body)

	case *Arrow:
		f.term(t.Domain)
		f.b.WriteString(" -> ")
		f.term(t.Codomain)

	case *App:
		f.term(t.Fn)
		f.b.WriteByte(' ')
		f.term(t.Arg)

	case *ErrorTerm:
		f.b.WriteByte('?')
	}
}

// lam renders "\x : T => b" for a single annotated name and the grouped
// form "\(x y : T) z => b" otherwise.
func (f *formatter) lam(t *Lam) {
	f.b.WriteByte('\\')

	if len(t.Params) == 1 &&
		len(t.Params[0].Names) == 1 &&
		t.Params[0].Ann != nil {
		f.b.WriteString(t.Params[0].Names[0].Name)
		f.b.WriteString(" : ")
		f.term(t.Params[0].Ann)
	} else {
		for i, p := range t.Params {
			if i > 0 {
				f.b.WriteByte(' ')
			}

			f.param(p)
		}
	}

	f.b.WriteString(" => ")
	f.term(t.Body)
}

func (f *formatter) param(p LamParam) {
	if p.Ann == nil {
		f.names(p.Names)

		return
	}

	f.b.WriteByte('(')
	f.names(p.Names)
	f.b.WriteString(" : ")
	f.term(p.Ann)
	f.b.WriteByte(')')
}

func (f *formatter) names(names []Ident) {
	for i, n := range names {
		if i > 0 {
			f.b.WriteByte(' ')
		}

		f.b.WriteString(n.Name)
	}
}
