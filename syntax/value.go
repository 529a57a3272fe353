package syntax

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/teya-lang/teya/syntax/token"
)

// MarshalJSON renders a node as indented JSON for machine consumption.
func MarshalJSON(n Node) ([]byte, error) {
	out, err := json.MarshalIndent(Value(n), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode syntax tree: %w", err)
	}

	return append(out, '\n'), nil
}

// MarshalYAML renders a node as YAML for machine consumption.
func MarshalYAML(n Node) ([]byte, error) {
	out, err := yaml.Marshal(Value(n))
	if err != nil {
		return nil, fmt.Errorf("encode syntax tree: %w", err)
	}

	return out, nil
}

// Value converts a node into a tree of maps and slices suitable for
// generic encoders. Every node becomes a map with at least "node" and
// "span" keys.
func Value(n Node) map[string]any {
	v := valueOf(n)
	v["span"] = spanValue(n.Span())

	return v
}

func spanValue(sp token.Span) map[string]any {
	return map[string]any{"start": sp.Start, "end": sp.End}
}

func identValue(i Ident) map[string]any {
	return map[string]any{"name": i.Name, "span": spanValue(i.Sp)}
}

//nolint:cyclop,funlen
func valueOf(n Node) map[string]any {
	switch n := n.(type) {
	case *ModuleFile:
		decls := make([]any, len(n.Decls))
		for i, d := range n.Decls {
			decls[i] = Value(d)
		}

		return map[string]any{
			"node":         "module",
			"name":         identValue(n.Name),
			"declarations": decls,
		}

	case *ErrorModule:
		return map[string]any{"node": "error-module"}

	case *Import:
		v := map[string]any{
			"node": "import",
			"name": identValue(n.Name),
		}

		if n.Rename != nil {
			v["rename"] = identValue(*n.Rename)
		}

		if n.Exposing != nil {
			v["exposing"] = Value(n.Exposing)
		}

		return v

	case *Claim:
		v := map[string]any{
			"node": "claim",
			"name": identValue(n.Name),
			"type": Value(n.Ann),
		}

		if len(n.Doc) > 0 {
			v["doc"] = n.Doc
		}

		return v

	case *Definition:
		params := make([]any, len(n.Params))
		for i, p := range n.Params {
			params[i] = paramValue(p)
		}

		v := map[string]any{
			"node":   "definition",
			"name":   identValue(n.Name),
			"params": params,
			"body":   Value(n.Body),
		}

		if len(n.Doc) > 0 {
			v["doc"] = n.Doc
		}

		return v

	case *ErrorDecl:
		return map[string]any{"node": "error-declaration"}

	case *ExposeAll:
		return map[string]any{"node": "expose-all"}

	case *ExposeExact:
		items := make([]any, len(n.Items))

		for i, item := range n.Items {
			iv := map[string]any{"name": identValue(item.Name)}
			if item.Rename != nil {
				iv["rename"] = identValue(*item.Rename)
			}

			items[i] = iv
		}

		return map[string]any{"node": "expose-exact", "items": items}

	case *ErrorExposing:
		return map[string]any{"node": "error-exposing"}

	case *Parens:
		return map[string]any{"node": "parens", "inner": Value(n.Inner)}

	case *Ann:
		return map[string]any{
			"node": "ann",
			"expr": Value(n.Expr),
			"type": Value(n.Type),
		}

	case *Universe:
		v := map[string]any{"node": "universe"}
		if n.Level != nil {
			v["level"] = *n.Level
		}

		return v

	case *Var:
		return map[string]any{"node": "var", "name": identValue(n.Name)}

	case *Lam:
		params := make([]any, len(n.Params))
		for i, p := range n.Params {
			params[i] = paramValue(p)
		}

		return map[string]any{
			"node":   "lambda",
			"params": params,
			"body":   Value(n.Body),
		}

	case *Pi:
		names := make([]any, len(n.Names))
		for i, name := range n.Names {
			names[i] = identValue(name)
		}

		return map[string]any{
			"node":  "pi",
			"names": names,
			"ann":   Value(n.Ann),
			"body":  Value(n.Body),
		}

	case *Arrow:
		return map[string]any{
			"node":     "arrow",
			"domain":   Value(n.Domain),
			"codomain": Value(n.Codomain),
		}

	case *App:
		return map[string]any{
			"node": "app",
			"fn":   Value(n.Fn),
			"arg":  Value(n.Arg),
		}

	case *ErrorTerm:
		return map[string]any{"node": "error-term"}

	case *ReplNoOp:
		return map[string]any{"node": "repl-noop"}

	case *ReplHelp:
		return map[string]any{"node": "repl-help"}

	case *ReplQuit:
		return map[string]any{"node": "repl-quit"}

	case *ReplEval:
		return map[string]any{"node": "repl-eval", "term": Value(n.Term)}

	case *ReplTypeOf:
		return map[string]any{"node": "repl-type-of", "term": Value(n.Term)}

	case *ReplError:
		return map[string]any{"node": "repl-error"}

	default:
		return map[string]any{"node": "unknown"}
	}
}

func paramValue(p LamParam) map[string]any {
	names := make([]any, len(p.Names))
	for i, n := range p.Names {
		names[i] = identValue(n)
	}

	v := map[string]any{"names": names}
	if p.Ann != nil {
		v["ann"] = Value(p.Ann)
	}

	return v
}
