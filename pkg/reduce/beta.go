package reduce

import (
	"log/slog"

	"github.com/vic/golam/pkg/lambda"
)

// beta reduces the redexes it finds in t and reports whether it reduced any.
//
// A redex is an application whose head is an abstraction and which has a
// continuation. For (!v.M) ARG REST the first chain element ARG is the value
// substituted for v and REST stays as the continuation of the result. A
// reduced node is not searched again in the same call.
func (r *Reducer) beta(t *lambda.Term) (bool, error) {
	if t == nil {
		return false, nil
	}

	switch t.Kind {
	case lambda.KindAbstraction:
		return r.beta(t.Body)

	case lambda.KindPrimary:
		return r.beta(t.Next)

	case lambda.KindApplication:
		if t.Next == nil {
			return r.beta(t.Head)
		}
		if t.Head.Kind != lambda.KindAbstraction {
			headChanged, err := r.beta(t.Head)
			if err != nil {
				return false, err
			}
			nextChanged, err := r.beta(t.Next)
			return headChanged || nextChanged, err
		}
		return true, r.reduceRedex(t)
	}

	return false, lambda.Runtimef("Unknown term type %v", t.Kind)
}

func (r *Reducer) reduceRedex(app *lambda.Term) error {
	abs := app.Head
	arg := app.Next

	var value *lambda.Term
	switch arg.Kind {
	case lambda.KindAbstraction:
		// an abstraction swallows the rest of the chain
		value = arg
		app.Next = nil
	case lambda.KindApplication:
		value = arg.Head
		app.Next = arg.Next
	case lambda.KindPrimary:
		value = lambda.Prim(arg.Name, nil)
		app.Next = arg.Next
	default:
		return lambda.Runtimef("Unable to reduce argument of type %v", arg.Kind)
	}
	if value == nil || abs.Body == nil {
		return lambda.Runtimef("Unable to reduce ill-formed application")
	}

	r.alphaRename(abs, lambda.FreeVars(value), nil)
	substitute(abs.Body, abs.Name, value)

	r.betas++
	r.recordTrace(RuleBeta, abs.Name)
	r.log.Debug("beta", slog.String("binder", abs.Name), slog.Any("value", value))

	app.Head = abs.Body
	return nil
}
