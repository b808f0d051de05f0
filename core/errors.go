package core

import "errors"

// Sentinel errors for symbolic evaluation.
var (
	// ErrUnboundSymbol indicates Eval reached a symbol with no value in the Env.
	ErrUnboundSymbol = errors.New("core: symbol has no value in environment")

	// ErrUnboundField indicates Eval reached a field access whose field has no
	// loader registered in the Env.
	ErrUnboundField = errors.New("core: field has no loader in environment")

	// ErrDivideByZero indicates Eval reached a quotient with a zero denominator.
	ErrDivideByZero = errors.New("core: division by zero during evaluation")
)

// Internal panic messages (no magic strings).
const (
	panicIndexArity  = "core: Field.At: index count must match field rank"
	panicEmptyName   = "core: name must be non-empty"
	panicNilOperand  = "core: expression operand must be non-nil"
	panicNilCondExpr = "core: condition operand must be non-nil"
)
