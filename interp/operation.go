package interp

import "github.com/stencilkit/sparsegen/core"

// Operation is a deferred producer of an ordered equation list. The
// downstream compiler forces it exactly once, synchronously; forcing is
// all-or-nothing and has no side effects beyond producing the list.
type Operation interface {
	// Force produces the ordered equation list. Callbacks are pure: forcing
	// the same operation twice yields structurally identical lists.
	Force() ([]core.Equation, error)
}

// deferredOp wraps the zero-argument callback shared by Interpolation and
// Injection. Equality of deferred operations is identity, not structure.
type deferredOp struct {
	callback func() ([]core.Equation, error)
}

// Force invokes the callback and checks structural consistency of the
// result. A malformed list (nil equation sides) is ErrBadCallback: an
// internal assertion, always fatal, never recovered.
func (d *deferredOp) Force() ([]core.Equation, error) {
	eqs, err := d.callback()
	if err != nil {
		return nil, err
	}
	for _, eq := range eqs {
		if eq.LHS == nil || eq.RHS == nil {
			return nil, ErrBadCallback
		}
	}

	return eqs, nil
}

// Interpolation is the deferred "gather" operation: point ← weighted sum of
// a field expression at guarded neighbor locations.
type Interpolation struct {
	deferredOp

	// Expr is the interpolated expression, as passed by the caller.
	Expr core.Expr

	// Offset is the extra boundary offset applied to the guards.
	Offset int

	// Increment selects accumulation (+=) over assignment for the final
	// write into the point set's storage.
	Increment bool

	// SelfSubs are caller substitutions applied to the storage target.
	SelfSubs core.SubsMap
}

// Injection is the deferred "scatter" operation: field at guarded neighbor
// locations += weighted point contribution.
type Injection struct {
	deferredOp

	// Field is the scatter target.
	Field *core.Field

	// Expr is the injected expression.
	Expr core.Expr

	// Offset is the extra boundary offset applied to the guards.
	Offset int
}

// Equations adapts a raw equation list to the Operation interface, so plain
// lists combine with deferred operations.
type Equations []core.Equation

// Force returns the list unchanged.
func (e Equations) Force() ([]core.Equation, error) { return e, nil }

// Combine forces every operation left to right and flattens the results
// into one ordered equation list: combine(a, b) = flatten([a, b]).
// Order-preserving and associative; the first failure aborts with no
// partial list. Returns ErrNilOperation on a nil element.
func Combine(ops ...Operation) ([]core.Equation, error) {
	var out []core.Equation
	for _, op := range ops {
		if op == nil {
			return nil, ErrNilOperation
		}
		eqs, err := op.Force()
		if err != nil {
			return nil, err
		}
		out = append(out, eqs...)
	}

	return out, nil
}
