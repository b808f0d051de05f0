package core

import "strings"

// Condition is a boolean guard over symbolic expressions. Conditions are
// attached to conditional dimensions and evaluated by the downstream
// compiler, not at construction time.
type Condition interface {
	// Holds evaluates the condition under env.
	Holds(env *Env) (bool, error)

	// String renders a stable textual form.
	String() string
}

// compareOp selects the comparison flavor of a compare node.
type compareOp int

const (
	opGe compareOp = iota // lhs >= rhs
	opLe                  // lhs <= rhs
)

// compare is a binary comparison condition.
type compare struct {
	op       compareOp
	lhs, rhs Expr
}

// Ge builds the condition lhs >= rhs.
func Ge(lhs, rhs Expr) Condition {
	if lhs == nil || rhs == nil {
		panic(panicNilCondExpr)
	}

	return &compare{op: opGe, lhs: lhs, rhs: rhs}
}

// Le builds the condition lhs <= rhs.
func Le(lhs, rhs Expr) Condition {
	if lhs == nil || rhs == nil {
		panic(panicNilCondExpr)
	}

	return &compare{op: opLe, lhs: lhs, rhs: rhs}
}

// Holds evaluates both sides and applies the comparison.
func (c *compare) Holds(env *Env) (bool, error) {
	l, err := c.lhs.Eval(env)
	if err != nil {
		return false, err
	}
	r, err := c.rhs.Eval(env)
	if err != nil {
		return false, err
	}
	if c.op == opGe {
		return l >= r, nil
	}

	return l <= r, nil
}

// String renders "lhs >= rhs" or "lhs <= rhs".
func (c *compare) String() string {
	op := " >= "
	if c.op == opLe {
		op = " <= "
	}

	return c.lhs.String() + op + c.rhs.String()
}

// conj is the conjunction of one or more conditions.
type conj struct {
	conds []Condition
}

// And builds the conjunction of conds. A single condition is returned
// unchanged. Panics on zero or nil conditions (programmer error).
func And(conds ...Condition) Condition {
	if len(conds) == 0 {
		panic(panicNilCondExpr)
	}
	for _, c := range conds {
		if c == nil {
			panic(panicNilCondExpr)
		}
	}
	if len(conds) == 1 {
		return conds[0]
	}

	return &conj{conds: conds}
}

// Holds short-circuits on the first member that does not hold.
func (c *conj) Holds(env *Env) (bool, error) {
	for _, member := range c.conds {
		ok, err := member.Holds(env)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// String joins member renderings with " && ".
func (c *conj) String() string {
	parts := make([]string, len(c.conds))
	for i, member := range c.conds {
		parts[i] = member.String()
	}

	return strings.Join(parts, " && ")
}
