package syntax

// Equal reports whether two nodes are structurally identical, ignoring
// spans and doc comments. Nodes of different dynamic types are never
// equal.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case Term:
		b, ok := b.(Term)

		return ok && equalTerm(a, b)

	case Declaration:
		b, ok := b.(Declaration)

		return ok && equalDecl(a, b)

	case Module:
		b, ok := b.(Module)

		return ok && equalModule(a, b)

	case Exposing:
		b, ok := b.(Exposing)

		return ok && equalExposing(a, b)

	case ReplCommand:
		b, ok := b.(ReplCommand)

		return ok && equalRepl(a, b)

	case Ident:
		b, ok := b.(Ident)

		return ok && a.Name == b.Name

	default:
		return false
	}
}

func equalModule(a, b Module) bool {
	switch a := a.(type) {
	case *ModuleFile:
		b, ok := b.(*ModuleFile)
		if !ok || a.Name.Name != b.Name.Name || len(a.Decls) != len(b.Decls) {
			return false
		}

		for i := range a.Decls {
			if !equalDecl(a.Decls[i], b.Decls[i]) {
				return false
			}
		}

		return true

	case *ErrorModule:
		_, ok := b.(*ErrorModule)

		return ok

	default:
		return false
	}
}

func equalDecl(a, b Declaration) bool {
	switch a := a.(type) {
	case *Import:
		b, ok := b.(*Import)

		return ok &&
			a.Name.Name == b.Name.Name &&
			equalRename(a.Rename, b.Rename) &&
			equalExposingOpt(a.Exposing, b.Exposing)

	case *Claim:
		b, ok := b.(*Claim)

		return ok && a.Name.Name == b.Name.Name && equalTerm(a.Ann, b.Ann)

	case *Definition:
		b, ok := b.(*Definition)

		return ok &&
			a.Name.Name == b.Name.Name &&
			equalParams(a.Params, b.Params) &&
			equalTerm(a.Body, b.Body)

	case *ErrorDecl:
		_, ok := b.(*ErrorDecl)

		return ok

	default:
		return false
	}
}

func equalExposingOpt(a, b Exposing) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return equalExposing(a, b)
}

func equalExposing(a, b Exposing) bool {
	switch a := a.(type) {
	case *ExposeAll:
		_, ok := b.(*ExposeAll)

		return ok

	case *ExposeExact:
		b, ok := b.(*ExposeExact)
		if !ok || len(a.Items) != len(b.Items) {
			return false
		}

		for i := range a.Items {
			if a.Items[i].Name.Name != b.Items[i].Name.Name ||
				!equalRename(a.Items[i].Rename, b.Items[i].Rename) {
				return false
			}
		}

		return true

	case *ErrorExposing:
		_, ok := b.(*ErrorExposing)

		return ok

	default:
		return false
	}
}

func equalRename(a, b *Ident) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Name == b.Name
}

func equalTerm(a, b Term) bool {
	switch a := a.(type) {
	case *Parens:
		b, ok := b.(*Parens)

		return ok && equalTerm(a.Inner, b.Inner)

	case *Ann:
		b, ok := b.(*Ann)

		return ok && equalTerm(a.Expr, b.Expr) && equalTerm(a.Type, b.Type)

	case *Universe:
		b, ok := b.(*Universe)
		if !ok {
			return false
		}

		if a.Level == nil || b.Level == nil {
			return a.Level == nil && b.Level == nil
		}

		return *a.Level == *b.Level

	case *Var:
		b, ok := b.(*Var)

		return ok && a.Name.Name == b.Name.Name

	case *Lam:
		b, ok := b.(*Lam)

		return ok && equalParams(a.Params, b.Params) && equalTerm(a.Body, b.Body)

	case *Pi:
		b, ok := b.(*Pi)
		if !ok || len(a.Names) != len(b.Names) {
			return false
		}

		for i := range a.Names {
			if a.Names[i].Name != b.Names[i].Name {
				return false
			}
		}

		return equalTerm(a.Ann, b.Ann) && equalTerm(a.Body, b.Body)

	case *Arrow:
		b, ok := b.(*Arrow)

		return ok &&
			equalTerm(a.Domain, b.Domain) &&
			equalTerm(a.Codomain, b.Codomain)

	case *App:
		b, ok := b.(*App)

		return ok && equalTerm(a.Fn, b.Fn) && equalTerm(a.Arg, b.Arg)

	case *ErrorTerm:
		_, ok := b.(*ErrorTerm)

		return ok

	default:
		return false
	}
}

func equalParams(a, b []LamParam) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if len(a[i].Names) != len(b[i].Names) {
			return false
		}

		for j := range a[i].Names {
			if a[i].Names[j].Name != b[i].Names[j].Name {
				return false
			}
		}

		if a[i].Ann == nil || b[i].Ann == nil {
			if a[i].Ann != nil || b[i].Ann != nil {
				return false
			}

			continue
		}

		if !equalTerm(a[i].Ann, b[i].Ann) {
			return false
		}
	}

	return true
}

func equalRepl(a, b ReplCommand) bool {
	switch a := a.(type) {
	case *ReplNoOp:
		_, ok := b.(*ReplNoOp)

		return ok

	case *ReplHelp:
		_, ok := b.(*ReplHelp)

		return ok

	case *ReplQuit:
		_, ok := b.(*ReplQuit)

		return ok

	case *ReplEval:
		b, ok := b.(*ReplEval)

		return ok && equalTerm(a.Term, b.Term)

	case *ReplTypeOf:
		b, ok := b.(*ReplTypeOf)

		return ok && equalTerm(a.Term, b.Term)

	case *ReplError:
		_, ok := b.(*ReplError)

		return ok

	default:
		return false
	}
}
