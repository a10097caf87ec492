// Package interp runs programs: it parses the source, normalizes every
// statement in order and prints each result as its print keyword asks.
package interp

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vic/golam/pkg/lambda"
	"github.com/vic/golam/pkg/library"
	"github.com/vic/golam/pkg/reduce"
	"github.com/vic/golam/pkg/syntax"
)

// ExitFailure is the process exit code for every kind of error.
const ExitFailure = 1

type Interpreter struct {
	Out      io.Writer
	Importer syntax.Importer
	Options  reduce.Options
	// Trace keeps that many rewrite events for the last statement run.
	Trace int

	reducer *reduce.Reducer
}

// New returns an interpreter printing to out and importing files from path.
func New(out io.Writer, path []string, opts reduce.Options) *Interpreter {
	return &Interpreter{
		Out:      out,
		Importer: library.NewResolver(path),
		Options:  opts,
	}
}

// Parse reads a program without running it. names receives the binder
// names of numeric literals.
func (in *Interpreter) Parse(name, src string, names *lambda.Names) (*syntax.Program, error) {
	importer := in.Importer
	if importer == nil {
		importer = library.NewResolver(nil)
	}
	return syntax.NewParser(name, src, importer, names).Parse()
}

// Run parses src and prints one line per statement. Output already written
// stays written when a later statement fails.
func (in *Interpreter) Run(name, src string) error {
	names := lambda.NewNames()
	prog, err := in.Parse(name, src, names)
	if err != nil {
		return err
	}

	in.reducer = reduce.New(prog.Definitions, names, in.Options)
	for i, red := range prog.Reductions {
		if in.Trace > 0 {
			in.reducer.EnableTrace(in.Trace)
		}
		line, err := in.Eval(red)
		if err != nil {
			return err
		}
		if in.Options.Logger != nil {
			in.Options.Logger.Debug("statement",
				slog.Int("index", i),
				slog.Int("line", red.Line),
				slog.String("kind", red.Kind.String()))
		}
		if _, err := fmt.Fprintln(in.Out, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// Eval normalizes one statement and renders the result.
func (in *Interpreter) Eval(red syntax.Reduction) (string, error) {
	if in.reducer == nil {
		in.reducer = reduce.New(nil, nil, in.Options)
	}
	term, err := in.reducer.Normalize(red.Term)
	if err != nil {
		return "", err
	}
	return Format(term, red.Kind)
}

// Format renders a normalized term as kind asks.
func Format(term *lambda.Term, kind syntax.PrintKind) (string, error) {
	switch kind {
	case syntax.PrintBool:
		b, err := lambda.DecodeBool(term)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(b), nil
	case syntax.PrintNumber:
		n, err := lambda.DecodeNumeral(term)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(n), nil
	default:
		return term.String(), nil
	}
}

// Stats returns the statistics of the last Run, if any.
func (in *Interpreter) Stats() reduce.Stats {
	if in.reducer == nil {
		return reduce.Stats{}
	}
	return in.reducer.GetStats()
}

// TraceEvents returns the rewrite events recorded for the last statement.
func (in *Interpreter) TraceEvents() []reduce.TraceEvent {
	if in.reducer == nil {
		return nil
	}
	return in.reducer.TraceSnapshot()
}

// Report writes the message for err to w and returns the exit code.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var lerr *lambda.Error
	if errors.As(err, &lerr) {
		fmt.Fprintln(w, lerr.Error())
	} else {
		fmt.Fprintf(w, "ERROR: %v\n", err)
	}
	return ExitFailure
}
