package core

// Equation is one ordered scalar update: an assignment (lhs = rhs) or a
// reduction-tagged increment (lhs += rhs). Equations are created once,
// consumed once by the downstream compiler and never mutated.
//
// ImplicitDims lists dimensions that do not appear textually in the equation
// but must still be honored as loop dimensions when the compiler builds the
// surrounding loop nest (typically the sparse point dimension).
type Equation struct {
	// LHS is the assignment or accumulation target.
	LHS Expr

	// RHS is the value expression.
	RHS Expr

	// Reduction marks the equation as an accumulation (lhs += rhs). Reduction
	// equations may collide on the same memory location across loop
	// iterations; the downstream compiler must combine them atomically or via
	// a reduction clause, never as plain overwrites.
	Reduction bool

	// ImplicitDims are loop dimensions required but not referenced.
	ImplicitDims []Expr
}

// Assign builds the plain assignment lhs = rhs. Panics on nil sides.
func Assign(lhs, rhs Expr, implicit ...Expr) Equation {
	checkOperands([]Expr{lhs, rhs})

	return Equation{LHS: lhs, RHS: rhs, ImplicitDims: implicit}
}

// Increment builds the reduction lhs += rhs. Panics on nil sides.
func Increment(lhs, rhs Expr, implicit ...Expr) Equation {
	checkOperands([]Expr{lhs, rhs})

	return Equation{LHS: lhs, RHS: rhs, Reduction: true, ImplicitDims: implicit}
}

// Conditionals returns every conditional dimension referenced on either side
// of the equation, in first-appearance order. The equation is valid only
// where all of their guards hold.
func (e Equation) Conditionals() []*ConditionalDimension {
	seen := make(map[*ConditionalDimension]bool)
	var out []*ConditionalDimension
	collect := func(x Expr) {
		for _, cd := range ConditionalDims(x) {
			if !seen[cd] {
				seen[cd] = true
				out = append(out, cd)
			}
		}
	}
	collect(e.LHS)
	collect(e.RHS)

	return out
}

// String renders "lhs = rhs" or "lhs += rhs".
func (e Equation) String() string {
	op := " = "
	if e.Reduction {
		op = " += "
	}

	return e.LHS.String() + op + e.RHS.String()
}

// RenderAll renders each equation on its own line, preserving order. Handy
// for structural-identity assertions and examples.
func RenderAll(eqs []Equation) string {
	s := ""
	for i, e := range eqs {
		if i > 0 {
			s += "\n"
		}
		s += e.String()
	}

	return s
}
