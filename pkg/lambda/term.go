package lambda

import "strings"

// Kind tags the shape of a Term node.
type Kind int

const (
	KindAbstraction Kind = iota
	KindApplication
	KindPrimary
)

func (k Kind) String() string {
	switch k {
	case KindAbstraction:
		return "Abstraction"
	case KindApplication:
		return "Application"
	case KindPrimary:
		return "Primary"
	default:
		return "Unknown"
	}
}

// Term is a node of a lambda term tree.
//
// Juxtaposition is encoded as a chain through Next rather than as a binary
// application tree: `f a b` is Primary(f) -> Primary(a) -> Primary(b). An
// Application node is a parenthesized element of such a chain; its Head is
// the parenthesized term and its Next is the rest of the chain. An
// Abstraction extends as far right as possible and never has a Next.
//
// Every node is owned by exactly one slot. Reduction rewrites nodes in place,
// so a Term that must appear in more than one place is copied with Copy.
type Term struct {
	Kind Kind
	Name string // binder for abstractions, identifier for primaries
	Body *Term  // abstraction body
	Head *Term  // application head
	Next *Term  // continuation of the chain
}

// Abs builds an abstraction.
func Abs(name string, body *Term) *Term {
	return &Term{Kind: KindAbstraction, Name: name, Body: body}
}

// App builds an application with an optional continuation.
func App(head, next *Term) *Term {
	return &Term{Kind: KindApplication, Head: head, Next: next}
}

// Prim builds a primary with an optional continuation.
func Prim(name string, next *Term) *Term {
	return &Term{Kind: KindPrimary, Name: name, Next: next}
}

// Copy returns a deep copy of t.
func (t *Term) Copy() *Term {
	if t == nil {
		return nil
	}
	return &Term{
		Kind: t.Kind,
		Name: t.Name,
		Body: t.Body.Copy(),
		Head: t.Head.Copy(),
		Next: t.Next.Copy(),
	}
}

// Graft turns t into an application of head, keeping t's continuation.
func (t *Term) Graft(head *Term) {
	t.Kind = KindApplication
	t.Name = ""
	t.Body = nil
	t.Head = head
}

// Size counts the nodes of t.
func (t *Term) Size() int {
	if t == nil {
		return 0
	}
	return 1 + t.Body.Size() + t.Head.Size() + t.Next.Size()
}

func (t *Term) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *Term) write(sb *strings.Builder) {
	if t == nil {
		return
	}
	switch t.Kind {
	case KindAbstraction:
		sb.WriteByte('!')
		sb.WriteString(t.Name)
		sb.WriteByte('.')
		t.Body.write(sb)
	case KindApplication:
		sb.WriteByte('(')
		t.Head.write(sb)
		sb.WriteByte(')')
		t.Next.write(sb)
	case KindPrimary:
		sb.WriteString(t.Name)
		if t.Next != nil {
			sb.WriteByte(' ')
			t.Next.write(sb)
		}
	}
}
