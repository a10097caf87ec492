// Package reduce normalizes lambda terms: it inlines let-bound definitions,
// performs capture-avoiding beta reduction and collapses redundant
// parentheses, repeating until nothing changes.
package reduce

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"

	"github.com/vic/golam/pkg/lambda"
)

// ErrPassLimit is wrapped by the error Normalize returns when Options.MaxPasses
// is exhausted before a normal form is reached.
var ErrPassLimit = errors.New("pass limit exceeded")

// Options configures a Reducer. The zero value is usable.
type Options struct {
	// MaxPasses bounds the fixpoint loop. Zero means no bound: a term
	// without a normal form then reduces forever.
	MaxPasses int
	// Logger receives debug records for every pass. Nil discards them.
	Logger *slog.Logger
}

// Reducer owns the definitions table and the fresh-name allocator shared by
// every reduction of a run.
type Reducer struct {
	defs  map[string]*lambda.Term
	names *lambda.Names
	opts  Options
	log   *slog.Logger

	// Stats
	passes    uint64
	inlines   uint64
	betas     uint64
	renames   uint64
	collapses uint64

	trace traceRing
}

// Stats holds reduction statistics accumulated over a Reducer's lifetime.
type Stats struct {
	Passes     uint64
	Inlines    uint64
	BetaSteps  uint64
	AlphaSteps uint64
	Collapses  uint64
}

// Total is the number of rewrites of any kind.
func (s Stats) Total() uint64 {
	return s.Inlines + s.BetaSteps + s.AlphaSteps + s.Collapses
}

// New returns a Reducer over defs. The table is copied; its terms are never
// modified, every use gets its own copy.
func New(defs map[string]*lambda.Term, names *lambda.Names, opts Options) *Reducer {
	if names == nil {
		names = lambda.NewNames()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reducer{
		defs:  maps.Clone(defs),
		names: names,
		opts:  opts,
		log:   logger,
	}
}

func (r *Reducer) GetStats() Stats {
	return Stats{
		Passes:     r.passes,
		Inlines:    r.inlines,
		BetaSteps:  r.betas,
		AlphaSteps: r.renames,
		Collapses:  r.collapses,
	}
}

// Normalize reduces t in place to its normal form and returns the new root.
// Each pass inlines definitions, beta-reduces and collapses; the loop stops
// after the first pass in which none of the three changed anything.
func (r *Reducer) Normalize(t *lambda.Term) (*lambda.Term, error) {
	root := t
	for pass := 1; ; pass++ {
		if r.opts.MaxPasses > 0 && pass > r.opts.MaxPasses {
			return root, lambda.Runtimef("%v after %d passes", ErrPassLimit, r.opts.MaxPasses).Wrap(ErrPassLimit)
		}
		r.passes++

		inlined := r.inline(root)
		reduced, err := r.beta(root)
		if err != nil {
			return root, err
		}
		var collapsed bool
		root, collapsed = r.collapseRoot(root)

		if r.log.Enabled(context.Background(), slog.LevelDebug) {
			r.log.Debug("pass",
				slog.Int("pass", pass),
				slog.Bool("inlined", inlined),
				slog.Bool("reduced", reduced),
				slog.Bool("collapsed", collapsed),
				slog.Int("size", root.Size()))
		}

		if !inlined && !reduced && !collapsed {
			return root, nil
		}
	}
}
