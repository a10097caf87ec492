package lambda

import "strconv"

// Names hands out fresh binder names a0, a1, a2, ...
//
// One allocator is shared by everything that invents names during a run
// (numeral literals and alpha-renaming), so generated names never collide
// with each other. It is never reset.
type Names struct {
	next int
}

// NewNames returns an allocator starting at a0.
func NewNames() *Names {
	return &Names{}
}

// Fresh returns the next unused name.
func (n *Names) Fresh() string {
	name := "a" + strconv.Itoa(n.next)
	n.next++
	return name
}
