package syntax

import "github.com/vic/golam/pkg/lambda"

// PrintKind selects how a reduced term is shown.
type PrintKind int

const (
	PrintFunction PrintKind = iota
	PrintNumber
	PrintBool
)

func (k PrintKind) String() string {
	switch k {
	case PrintFunction:
		return "print"
	case PrintNumber:
		return "printnum"
	case PrintBool:
		return "printbool"
	default:
		return "unknown"
	}
}

var printKinds = map[string]PrintKind{
	"print":     PrintFunction,
	"printnum":  PrintNumber,
	"printbool": PrintBool,
}

// Reduction is one top-level statement to normalize and print.
type Reduction struct {
	Term *lambda.Term
	Kind PrintKind
	Line int
}

// Program is the result of parsing: the let-bound definitions and the
// statements to evaluate, in source order.
type Program struct {
	Definitions map[string]*lambda.Term
	Reductions  []Reduction
}
