package reduce

import "github.com/vic/golam/pkg/lambda"

// inline replaces every primary naming a definition with an application of
// a fresh copy of that definition, keeping the primary's continuation. The
// copy itself is not searched; the next pass reaches it.
func (r *Reducer) inline(t *lambda.Term) bool {
	if t == nil {
		return false
	}
	changed := false

	switch t.Kind {
	case lambda.KindAbstraction:
		changed = r.inline(t.Body)
	case lambda.KindApplication:
		changed = r.inline(t.Head)
		changed = r.inline(t.Next) || changed
	case lambda.KindPrimary:
		if def, ok := r.defs[t.Name]; ok {
			r.inlines++
			r.recordTrace(RuleInline, t.Name)
			t.Graft(def.Copy())
			changed = true
		}
		changed = r.inline(t.Next) || changed
	}

	return changed
}
