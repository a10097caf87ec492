package lambda

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFreeVars(t *testing.T) {
	tests := []struct {
		name string
		term *Term
		want []string
	}{
		{"closed", Abs("x", Prim("x", nil)), []string{}},
		{"open", Abs("x", Prim("y", Prim("x", nil))), []string{"y"}},
		{"continuation", Prim("f", App(Prim("a", nil), Prim("b", nil))), []string{"a", "b", "f"}},
		{"shadowed", Abs("x", Abs("x", Prim("x", nil))), []string{}},
		{"after abstraction", App(Abs("x", Prim("x", nil)), Prim("x", nil)), []string{"x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SortedFreeVars(tt.term)); diff != "" {
				t.Errorf("free vars mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	term := Abs("f", Abs("x", Prim("f", App(Abs("f", Prim("f", nil)), Prim("x", Prim("z", nil))))))
	assert.Equal(t, "!x0.!x1.x0 (!x2.x2)x1 z", Canonical(term).String())
	// the input is left alone
	assert.Equal(t, "!f.!x.f (!f.f)x z", term.String())
}

func TestAlphaEqual(t *testing.T) {
	assert.True(t, AlphaEqual(Abs("a", Prim("a", nil)), Abs("b", Prim("b", nil))))
	assert.False(t, AlphaEqual(Abs("a", Prim("c", nil)), Abs("b", Prim("d", nil))))
	assert.False(t, AlphaEqual(
		Abs("a", Abs("b", Prim("a", nil))),
		Abs("a", Abs("b", Prim("b", nil)))))
}
