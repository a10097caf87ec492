package reduce

import "github.com/vic/golam/pkg/lambda"

// collapseRoot collapses t and then treats the root like any other slot,
// so a normal form never carries a wrapper with nothing after it. It
// returns the new root.
func (r *Reducer) collapseRoot(t *lambda.Term) (*lambda.Term, bool) {
	changed := r.collapse(t)
	for {
		flat, ok := r.flatten(t)
		if !ok {
			return t, changed
		}
		t = flat
		changed = true
	}
}

// collapse removes parentheses that carry no meaning from the head of
// applications and the body of abstractions:
//
//	((H)) C  =>  (H) C
//	((x) C)  =>  (x C)
func (r *Reducer) collapse(t *lambda.Term) bool {
	if t == nil {
		return false
	}
	changed := false

	switch t.Kind {
	case lambda.KindApplication:
		if flat, ok := r.flatten(t.Head); ok {
			t.Head = flat
			changed = true
		}
		changed = r.collapse(t.Head) || changed
		changed = r.collapse(t.Next) || changed
	case lambda.KindPrimary:
		changed = r.collapse(t.Next)
	case lambda.KindAbstraction:
		if flat, ok := r.flatten(t.Body); ok {
			t.Body = flat
			changed = true
		}
		changed = r.collapse(t.Body) || changed
	}

	return changed
}

// flatten returns the replacement for a slot holding t, if t is redundant
// parenthesization.
func (r *Reducer) flatten(t *lambda.Term) (*lambda.Term, bool) {
	if t == nil || t.Kind != lambda.KindApplication || t.Head == nil {
		return nil, false
	}
	if t.Next == nil {
		r.collapses++
		r.recordTrace(RuleCollapse, "")
		return t.Head, true
	}
	if p := t.Head; p.Kind == lambda.KindPrimary && p.Next == nil {
		r.collapses++
		r.recordTrace(RuleCollapse, p.Name)
		p.Next = t.Next
		return p, true
	}
	return nil, false
}
