package reduce

import (
	"github.com/samber/lo"

	"github.com/vic/golam/pkg/lambda"
)

// alphaRename gives a fresh name to every binder in t that would capture one
// of the free names, and rewrites the occurrences it binds. renames maps old
// names to their replacements in the current scope; it is never modified,
// a binder that adds a rename works on a clone so siblings stay unaffected.
func (r *Reducer) alphaRename(t *lambda.Term, free map[string]struct{}, renames map[string]string) {
	for ; t != nil; t = t.Next {
		switch t.Kind {
		case lambda.KindAbstraction:
			scope := renames
			if _, clash := free[t.Name]; clash {
				fresh := r.names.Fresh()
				r.renames++
				r.recordTrace(RuleAlpha, t.Name)
				r.log.Debug("alpha", "binder", t.Name, "fresh", fresh)
				scope = lo.Assign(renames, map[string]string{t.Name: fresh})
				t.Name = fresh
			}
			r.alphaRename(t.Body, free, scope)
		case lambda.KindApplication:
			r.alphaRename(t.Head, free, renames)
		case lambda.KindPrimary:
			if fresh, ok := renames[t.Name]; ok {
				t.Name = fresh
			}
		}
	}
}

// substitute replaces the free occurrences of name in t with copies of
// value. An occurrence keeps its continuation: `name rest` becomes
// `(value) rest`.
func substitute(t *lambda.Term, name string, value *lambda.Term) {
	for ; t != nil; t = t.Next {
		switch t.Kind {
		case lambda.KindAbstraction:
			if t.Name == name {
				return
			}
			substitute(t.Body, name, value)
		case lambda.KindApplication:
			substitute(t.Head, name, value)
		case lambda.KindPrimary:
			if t.Name == name {
				t.Graft(value.Copy())
			}
		}
	}
}
