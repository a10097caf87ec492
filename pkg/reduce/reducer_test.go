package reduce

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vic/golam/pkg/lambda"
	"github.com/vic/golam/pkg/library"
	"github.com/vic/golam/pkg/syntax"
)

// normalize parses src and normalizes its first statement.
func normalize(t *testing.T, src string, opts Options) (*lambda.Term, *Reducer, error) {
	t.Helper()
	names := lambda.NewNames()
	prog, err := syntax.NewParser("test.lc", src, library.NewResolver(nil), names).Parse()
	require.NoError(t, err)
	r := New(prog.Definitions, names, opts)
	term, err := r.Normalize(prog.Reductions[0].Term)
	return term, r, err
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"identity", "print !x.x;", "!x.x"},
		{"identity applied to itself", "let id = !x.x; print (id id);", "!x.x"},
		{"k combinator", "print (!x.!y.x) a b;", "a"},
		{"flipped application", "print (!x.!y.y x) a b;", "b (a)"},
		{"free primary", "print a;", "a"},
		{"unknown name stays", "let id = !x.x; print id z;", "z"},
		{"successor of zero", "import math; print succ 0;", "!a.!b.a (b)"},
		{"capture avoided", "print (!x.!y.x y) y;", "!a0.y a0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := normalize(t, tt.src, Options{MaxPasses: 1000})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNormalizeNumerals(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"print 0;", 0},
		{"print 4;", 4},
		{"import math; print succ 0;", 1},
		{"import math; print succ 1;", 2},
		{"import math; print add 2 3;", 5},
		{"import math; print add 0 2;", 2},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, _, err := normalize(t, tt.src, Options{MaxPasses: 1000})
			require.NoError(t, err)
			n, err := lambda.DecodeNumeral(got)
			require.NoError(t, err, got.String())
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestNormalizeBooleans(t *testing.T) {
	for src, want := range map[string]bool{
		"import bool; print true;":   true,
		"import bool; print false;":  false,
		"import stdlib; print true;": true,
	} {
		got, _, err := normalize(t, src, Options{})
		require.NoError(t, err)
		b, err := lambda.DecodeBool(got)
		require.NoError(t, err)
		assert.Equal(t, want, b, src)
	}
}

func TestCaptureAvoidance(t *testing.T) {
	got, r, err := normalize(t, "print (!x.!y.x y) y;", Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"y"}, lambda.SortedFreeVars(got))
	assert.True(t, lambda.AlphaEqual(got, lambda.Abs("z", lambda.Prim("y", lambda.Prim("z", nil)))))
	assert.EqualValues(t, 1, r.GetStats().AlphaSteps)
}

func TestCaptureAvoidanceInContinuation(t *testing.T) {
	// the binder sits after the first element of the body's chain
	got, _, err := normalize(t, "print (!x.f (!y.x y)) y;", Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"f", "y"}, lambda.SortedFreeVars(got))
	want := lambda.Prim("f", lambda.App(lambda.Abs("z", lambda.Prim("y", lambda.Prim("z", nil))), nil))
	assert.True(t, lambda.AlphaEqual(got, want), got.String())
}

func TestDefinitionsAreCopied(t *testing.T) {
	got, r, err := normalize(t, "let k = !x.!y.x; print k a (k b) c;", Options{})
	require.NoError(t, err)
	assert.Equal(t, "a c", got.String())

	require.Contains(t, r.defs, "k")
	assert.Equal(t, "!x.!y.x", r.defs["k"].String())
}

func TestStats(t *testing.T) {
	_, r, err := normalize(t, "let id = !x.x; print (id id);", Options{})
	require.NoError(t, err)

	stats := r.GetStats()
	assert.EqualValues(t, 2, stats.Passes)
	assert.EqualValues(t, 2, stats.Inlines)
	assert.EqualValues(t, 1, stats.BetaSteps)
	assert.EqualValues(t, 0, stats.AlphaSteps)
	assert.Positive(t, stats.Collapses)
	assert.Equal(t, stats.Inlines+stats.BetaSteps+stats.Collapses, stats.Total())
}

func TestPassLimit(t *testing.T) {
	_, r, err := normalize(t, "print (!x.x x)(!x.x x);", Options{MaxPasses: 50})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPassLimit))

	var lerr *lambda.Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, lambda.RuntimeError, lerr.Kind)
	assert.Equal(t, "RUNTIME ERROR: pass limit exceeded after 50 passes", err.Error())
	assert.EqualValues(t, 50, r.GetStats().Passes)
}

func TestTrace(t *testing.T) {
	names := lambda.NewNames()
	defs := map[string]*lambda.Term{"id": lambda.Abs("x", lambda.Prim("x", nil))}
	r := New(defs, names, Options{})
	assert.Nil(t, r.TraceSnapshot())

	r.EnableTrace(2)
	_, err := r.Normalize(lambda.App(lambda.Prim("id", lambda.Prim("id", nil)), nil))
	require.NoError(t, err)

	events := r.TraceSnapshot()
	require.Len(t, events, 2)
	for i, ev := range events {
		assert.EqualValues(t, i, ev.Step)
		assert.EqualValues(t, 1, ev.Pass)
		assert.Equal(t, RuleInline, ev.Rule)
		assert.Equal(t, "id", ev.Name)
	}

	r.DisableTrace()
	assert.Nil(t, r.TraceSnapshot())
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _, err := normalize(t, "print (!x.!y.x y) y;", Options{Logger: logger})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=pass")
	assert.Contains(t, out, "msg=beta")
	assert.Contains(t, out, "msg=alpha")
}

func TestRuleKindString(t *testing.T) {
	assert.Equal(t, "inline", RuleInline.String())
	assert.Equal(t, "beta", RuleBeta.String())
	assert.Equal(t, "alpha", RuleAlpha.String())
	assert.Equal(t, "collapse", RuleCollapse.String())
	assert.Equal(t, "unknown", RuleUnknown.String())
}
