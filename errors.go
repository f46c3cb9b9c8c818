// errors.go: the single diagnostic family shared by lexer, parser and
// evaluator.
//
// Every failure the core can produce is an *Error carrying one of the
// ErrKind values below. Internally the evaluator raises errors by panicking
// with an *Error (see failf); the public entry points in interpreter.go
// recover and hand the *Error back as an ordinary Go error. Callers (the
// REPL, the script runner) print the message and keep their session alive.
package lispy

import "fmt"

// ErrKind discriminates the error family. The set is closed: a failed
// execute call always reports exactly one of these.
type ErrKind int

const (
	// ErrInvalidValue: a value constructed with a mismatched underlying
	// representation, or a malformed special-form/builtin invocation.
	ErrInvalidValue ErrKind = iota
	// ErrUnbalancedParentheses: the lexer consumed all input before
	// finding a matching ')'.
	ErrUnbalancedParentheses
	// ErrUndefinedSymbol: a bare atom was evaluated outside call or
	// variable-reference position.
	ErrUndefinedSymbol
	// ErrUndefinedVariable: a symbol resolves in neither local nor
	// global scope.
	ErrUndefinedVariable
	// ErrUndefinedFunction: a call head names neither a special form
	// nor a registered function.
	ErrUndefinedFunction
)

func (k ErrKind) String() string {
	switch k {
	case ErrInvalidValue:
		return "InvalidValue"
	case ErrUnbalancedParentheses:
		return "UnbalancedParentheses"
	case ErrUndefinedSymbol:
		return "UndefinedSymbol"
	case ErrUndefinedVariable:
		return "UndefinedVariable"
	case ErrUndefinedFunction:
		return "UndefinedFunction"
	default:
		return "Unknown"
	}
}

// Error is the diagnostic type surfaced by Tokenize, Parse and Execute.
type Error struct {
	Kind ErrKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// failf aborts the in-progress execute call by panicking with an *Error.
// The panic is recovered at the public API surface only.
func failf(kind ErrKind, format string, args ...interface{}) {
	panic(&Error{Kind: kind, Msg: fmt.Sprintf(format, args...)})
}
