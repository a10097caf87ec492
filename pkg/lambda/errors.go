package lambda

import "fmt"

// ErrorKind classifies interpreter failures. Every kind is fatal.
type ErrorKind int

const (
	SyntaxError ErrorKind = iota
	ImportError
	RuntimeError
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SYNTAX ERROR"
	case ImportError:
		return "IMPORT ERROR"
	case RuntimeError:
		return "RUNTIME ERROR"
	default:
		return "ERROR"
	}
}

// Error is a failure raised anywhere in the pipeline. Line is only
// meaningful for syntax errors.
type Error struct {
	Kind ErrorKind
	Line int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == SyntaxError {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Syntaxf reports an unexpected token at line.
func Syntaxf(line int, format string, args ...any) *Error {
	return &Error{Kind: SyntaxError, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Importf reports a library or file that cannot be imported.
func Importf(format string, args ...any) *Error {
	return &Error{Kind: ImportError, Msg: fmt.Sprintf(format, args...)}
}

// Runtimef reports a failure during reduction or decoding.
func Runtimef(format string, args ...any) *Error {
	return &Error{Kind: RuntimeError, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to e and returns it.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}
