package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteTree writes an indented dump of the syntax tree to w, one node per
// line with its byte span. Useful for inspecting how input was parsed.
func WriteTree(w io.Writer, n Node) error {
	var b strings.Builder

	tree(&b, n, 0)

	_, err := io.WriteString(w, b.String())

	return err
}

// Tree returns the indented dump of the syntax tree as a string.
func Tree(n Node) string {
	var b strings.Builder

	tree(&b, n, 0)

	return b.String()
}

func treeLine(b *strings.Builder, depth int, label string, n Node) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(label)
	b.WriteString(" [")
	b.WriteString(n.Span().String())
	b.WriteString("]\n")
}

//nolint:cyclop,funlen
func tree(b *strings.Builder, n Node, depth int) {
	switch n := n.(type) {
	case *ModuleFile:
		treeLine(b, depth, "module "+n.Name.Name, n)

		for _, d := range n.Decls {
			tree(b, d, depth+1)
		}

	case *ErrorModule:
		treeLine(b, depth, "error-module", n)

	case *Import:
		label := "import " + n.Name.Name
		if n.Rename != nil {
			label += " as " + n.Rename.Name
		}

		treeLine(b, depth, label, n)

		if n.Exposing != nil {
			tree(b, n.Exposing, depth+1)
		}

	case *Claim:
		treeLine(b, depth, "claim "+n.Name.Name, n)
		tree(b, n.Ann, depth+1)

	case *Definition:
		treeLine(b, depth, "definition "+n.Name.Name, n)

		for _, p := range n.Params {
			treeParam(b, p, depth+1)
		}

		tree(b, n.Body, depth+1)

	case *ErrorDecl:
		treeLine(b, depth, "error-declaration", n)

	case *ExposeAll:
		treeLine(b, depth, "expose-all", n)

	case *ExposeExact:
		labels := make([]string, len(n.Items))

		for i, item := range n.Items {
			labels[i] = item.Name.Name
			if item.Rename != nil {
				labels[i] += " as " + item.Rename.Name
			}
		}

		treeLine(b, depth, "expose "+strings.Join(labels, ", "), n)

	case *ErrorExposing:
		treeLine(b, depth, "error-exposing", n)

	case *Parens:
		treeLine(b, depth, "parens", n)
		tree(b, n.Inner, depth+1)

	case *Ann:
		treeLine(b, depth, "ann", n)
		tree(b, n.Expr, depth+1)
		tree(b, n.Type, depth+1)

	case *Universe:
		label := "universe"
		if n.Level != nil {
			label += " " + strconv.FormatUint(uint64(*n.Level), 10)
		}

		treeLine(b, depth, label, n)

	case *Var:
		treeLine(b, depth, "var "+n.Name.Name, n)

	case *Lam:
		treeLine(b, depth, "lambda", n)

		for _, p := range n.Params {
			treeParam(b, p, depth+1)
		}

		tree(b, n.Body, depth+1)

	case *Pi:
		names := make([]string, len(n.Names))
		for i, name := range n.Names {
			names[i] = name.Name
		}

		treeLine(b, depth, "pi "+strings.Join(names, " "), n)
		tree(b, n.Ann, depth+1)
		tree(b, n.Body, depth+1)

	case *Arrow:
		treeLine(b, depth, "arrow", n)
		tree(b, n.Domain, depth+1)
		tree(b, n.Codomain, depth+1)

	case *App:
		treeLine(b, depth, "app", n)
		tree(b, n.Fn, depth+1)
		tree(b, n.Arg, depth+1)

	case *ErrorTerm:
		treeLine(b, depth, "error-term", n)

	case *ReplNoOp:
		treeLine(b, depth, "repl-noop", n)

	case *ReplHelp:
		treeLine(b, depth, "repl-help", n)

	case *ReplQuit:
		treeLine(b, depth, "repl-quit", n)

	case *ReplEval:
		treeLine(b, depth, "repl-eval", n)
		tree(b, n.Term, depth+1)

	case *ReplTypeOf:
		treeLine(b, depth, "repl-type-of", n)
		tree(b, n.Term, depth+1)

	case *ReplError:
		treeLine(b, depth, "repl-error", n)

	default:
		fmt.Fprintf(b, "%s%T\n", strings.Repeat("  ", depth), n)
	}
}

func treeParam(b *strings.Builder, p LamParam, depth int) {
	names := make([]string, len(p.Names))
	for i, n := range p.Names {
		names[i] = n.Name
	}

	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("param ")
	b.WriteString(strings.Join(names, " "))
	b.WriteString(" [")
	b.WriteString(p.Span().String())
	b.WriteString("]\n")

	if p.Ann != nil {
		tree(b, p.Ann, depth+1)
	}
}
