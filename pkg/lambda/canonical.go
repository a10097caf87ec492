package lambda

import "fmt"

// Canonical returns a copy of t with bound variables renamed to x0, x1, ...
// in the order their binders appear. Free names are kept, so two terms are
// alpha-equivalent exactly when their canonical forms print the same.
func Canonical(t *Term) *Term {
	c := t.Copy()
	idx := 0
	var walk func(t *Term, bindings map[string]string)
	walk = func(t *Term, bindings map[string]string) {
		for ; t != nil; t = t.Next {
			switch t.Kind {
			case KindAbstraction:
				canon := fmt.Sprintf("x%d", idx)
				idx++
				// shadowing: restore the outer binding afterwards
				old, had := bindings[t.Name]
				bindings[t.Name] = canon
				orig := t.Name
				t.Name = canon
				walk(t.Body, bindings)
				if had {
					bindings[orig] = old
				} else {
					delete(bindings, orig)
				}
			case KindApplication:
				walk(t.Head, bindings)
			case KindPrimary:
				if name, ok := bindings[t.Name]; ok {
					t.Name = name
				}
			}
		}
	}
	walk(c, make(map[string]string))
	return c
}

// AlphaEqual reports whether a and b differ only in bound variable names.
func AlphaEqual(a, b *Term) bool {
	return Canonical(a).String() == Canonical(b).String()
}
