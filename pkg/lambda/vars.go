package lambda

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// FreeVars returns the set of names occurring in t that are not bound by an
// enclosing abstraction of t.
func FreeVars(t *Term) map[string]struct{} {
	free := make(map[string]struct{})
	collectFree(t, make(map[string]int), free)
	return free
}

// SortedFreeVars is FreeVars as a sorted slice.
func SortedFreeVars(t *Term) []string {
	names := lo.Keys(FreeVars(t))
	slices.Sort(names)
	return names
}

func collectFree(t *Term, bound map[string]int, free map[string]struct{}) {
	for ; t != nil; t = t.Next {
		switch t.Kind {
		case KindAbstraction:
			bound[t.Name]++
			collectFree(t.Body, bound, free)
			if bound[t.Name]--; bound[t.Name] == 0 {
				delete(bound, t.Name)
			}
		case KindApplication:
			collectFree(t.Head, bound, free)
		case KindPrimary:
			if bound[t.Name] == 0 {
				free[t.Name] = struct{}{}
			}
		}
	}
}
