package lambda

// EncodeNumeral builds the Church numeral for n:
//
//	!outer.!inner.outer (outer (... (inner)))
//
// with outer applied n times. Binder names come from names.
func EncodeNumeral(n int, names *Names) *Term {
	outer := names.Fresh()
	inner := names.Fresh()

	body := Prim(inner, nil)
	for ; n > 0; n-- {
		body = Prim(outer, App(body, nil))
	}
	return Abs(outer, Abs(inner, body))
}

// DecodeNumeral recovers n from a normalized Church numeral. The check is
// strict: anything not shaped exactly like a numeral is a runtime error.
func DecodeNumeral(t *Term) (int, error) {
	outer, inner, body, err := binders(t, "number")
	if err != nil {
		return 0, err
	}
	if outer.Name == inner.Name {
		return 0, Runtimef("Unable to convert term to number")
	}

	n := 0
	for body.Name == outer.Name {
		n++
		body = body.Next
		if body == nil {
			return 0, Runtimef("Unable to convert term to number")
		}
		switch body.Kind {
		case KindPrimary:
			if body.Name != inner.Name {
				return 0, Runtimef("Unable to convert term to number")
			}
		case KindApplication:
			if body.Next != nil || body.Head == nil || body.Head.Kind != KindPrimary {
				return 0, Runtimef("Unable to convert term to number")
			}
			body = body.Head
		default:
			return 0, Runtimef("Unable to convert term to number")
		}
	}

	if body.Name != inner.Name || body.Next != nil {
		return 0, Runtimef("Unable to convert term to number")
	}
	return n, nil
}

// EncodeBool builds !a.!b.a for true and !a.!b.b for false.
func EncodeBool(b bool, names *Names) *Term {
	a, c := names.Fresh(), names.Fresh()
	if b {
		return Abs(a, Abs(c, Prim(a, nil)))
	}
	return Abs(a, Abs(c, Prim(c, nil)))
}

// DecodeBool recovers a boolean from a normalized Church boolean.
func DecodeBool(t *Term) (bool, error) {
	outer, inner, body, err := binders(t, "bool")
	if err != nil {
		return false, err
	}
	if body.Next != nil {
		return false, Runtimef("Unable to convert term to bool")
	}
	switch body.Name {
	case outer.Name:
		return true, nil
	case inner.Name:
		return false, nil
	}
	return false, Runtimef("Unable to convert term to bool")
}

// binders checks for !outer.!inner.<primary ...> and returns the pieces.
func binders(t *Term, what string) (outer, inner, body *Term, err error) {
	if t == nil {
		return nil, nil, nil, Runtimef("Unable to convert term to %s", what)
	}
	if t.Kind == KindPrimary {
		return nil, nil, nil, Runtimef("A primary cannot be a %s", what)
	}
	if t.Kind != KindAbstraction ||
		t.Body == nil || t.Body.Kind != KindAbstraction ||
		t.Body.Body == nil || t.Body.Body.Kind != KindPrimary {
		return nil, nil, nil, Runtimef("Unable to convert term to %s", what)
	}
	return t, t.Body, t.Body.Body, nil
}
