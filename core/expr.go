package core

import (
	"math"
	"strconv"
	"strings"
)

// Expr is an immutable symbolic expression node.
//
// Implementations in this package cover scalars, grid dimensions and field
// accesses. External collaborators may provide further node kinds (e.g. lazy
// derivative stencils); see Evaluable for the pre-expansion capability.
type Expr interface {
	// Subs returns a copy of the expression with every node that appears as a
	// key in m replaced by its mapped value. Matching is pre-order; a replaced
	// node's children are not revisited.
	Subs(m SubsMap) Expr

	// Eval computes the numeric value of the expression under env.
	Eval(env *Env) (float64, error)

	// Operands returns the direct children of the node (empty for leaves).
	Operands() []Expr

	// String renders a stable, deterministic textual form.
	String() string
}

// SubsMap maps expression nodes to their replacements.
//
// Keys are matched by interface equality: pointer identity for node types
// (*Symbol, *Dimension, *ConditionalDimension, *FieldAccess) and value
// equality for Number.
type SubsMap map[Expr]Expr

// Evaluable marks expressions that must be expanded before operand
// extraction, e.g. derivative operators that lower to stencil sums.
type Evaluable interface {
	// Evaluated returns the expanded form of the expression.
	Evaluated() Expr
}

// Evaluated forces e's expansion if it exposes the Evaluable capability and
// returns e unchanged otherwise. Complexity: O(1) plus the cost of expansion.
func Evaluated(e Expr) Expr {
	if ev, ok := e.(Evaluable); ok {
		return ev.Evaluated()
	}

	return e
}

// Symbol is a named scalar unknown. Two symbols are the same node only if
// they are the same pointer; names alone carry no identity.
type Symbol struct {
	name string
}

// NewSymbol creates a fresh symbol. Panics on an empty name (programmer error).
func NewSymbol(name string) *Symbol {
	if name == "" {
		panic(panicEmptyName)
	}

	return &Symbol{name: name}
}

// Name returns the symbol's name.
func (s *Symbol) Name() string { return s.name }

// Subs replaces the symbol when it appears as a key in m.
func (s *Symbol) Subs(m SubsMap) Expr {
	if r, ok := m[s]; ok {
		return r
	}

	return s
}

// Eval looks the symbol up in env; ErrUnboundSymbol when absent.
func (s *Symbol) Eval(env *Env) (float64, error) {
	if v, ok := env.Value(s); ok {
		return v, nil
	}

	return 0, wrapUnbound(s.name)
}

// Operands returns no children: a symbol is a leaf.
func (s *Symbol) Operands() []Expr { return nil }

// String returns the symbol's name.
func (s *Symbol) String() string { return s.name }

// Number is a floating-point literal.
type Number float64

// Num wraps a float64 as an expression literal.
func Num(v float64) Number { return Number(v) }

// Subs replaces the literal when it appears (by value) as a key in m.
func (n Number) Subs(m SubsMap) Expr {
	if r, ok := m[n]; ok {
		return r
	}

	return n
}

// Eval returns the literal value; a Number never fails.
func (n Number) Eval(*Env) (float64, error) { return float64(n), nil }

// Operands returns no children: a literal is a leaf.
func (n Number) Operands() []Expr { return nil }

// String renders the literal in shortest round-trip form.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// sum is an n-ary addition node.
type sum struct {
	terms []Expr
}

// Add builds the sum of terms. A single term is returned unchanged; zero
// terms yield the literal 0. Panics on a nil term (programmer error).
func Add(terms ...Expr) Expr {
	checkOperands(terms)
	switch len(terms) {
	case 0:
		return Num(0)
	case 1:
		return terms[0]
	}

	return &sum{terms: terms}
}

func (a *sum) Subs(m SubsMap) Expr {
	if r, ok := m[Expr(a)]; ok {
		return r
	}

	return &sum{terms: subsAll(a.terms, m)}
}

func (a *sum) Eval(env *Env) (float64, error) {
	total := 0.0
	for _, t := range a.terms {
		v, err := t.Eval(env)
		if err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}

func (a *sum) Operands() []Expr { return a.terms }

func (a *sum) String() string { return renderNary(a.terms, " + ") }

// product is an n-ary multiplication node.
type product struct {
	factors []Expr
}

// Mul builds the product of factors. A single factor is returned unchanged;
// zero factors yield the literal 1. Panics on a nil factor (programmer error).
func Mul(factors ...Expr) Expr {
	checkOperands(factors)
	switch len(factors) {
	case 0:
		return Num(1)
	case 1:
		return factors[0]
	}

	return &product{factors: factors}
}

func (p *product) Subs(m SubsMap) Expr {
	if r, ok := m[Expr(p)]; ok {
		return r
	}

	return &product{factors: subsAll(p.factors, m)}
}

func (p *product) Eval(env *Env) (float64, error) {
	total := 1.0
	for _, f := range p.factors {
		v, err := f.Eval(env)
		if err != nil {
			return 0, err
		}
		total *= v
	}

	return total, nil
}

func (p *product) Operands() []Expr { return p.factors }

func (p *product) String() string { return renderNary(p.factors, " * ") }

// difference is a binary subtraction node.
type difference struct {
	lhs, rhs Expr
}

// Sub builds lhs - rhs. Panics on a nil operand (programmer error).
func Sub(lhs, rhs Expr) Expr {
	checkOperands([]Expr{lhs, rhs})

	return &difference{lhs: lhs, rhs: rhs}
}

func (d *difference) Subs(m SubsMap) Expr {
	if r, ok := m[Expr(d)]; ok {
		return r
	}

	return &difference{lhs: d.lhs.Subs(m), rhs: d.rhs.Subs(m)}
}

func (d *difference) Eval(env *Env) (float64, error) {
	l, err := d.lhs.Eval(env)
	if err != nil {
		return 0, err
	}
	r, err := d.rhs.Eval(env)
	if err != nil {
		return 0, err
	}

	return l - r, nil
}

func (d *difference) Operands() []Expr { return []Expr{d.lhs, d.rhs} }

func (d *difference) String() string {
	return "(" + d.lhs.String() + " - " + d.rhs.String() + ")"
}

// quotient is a binary division node.
type quotient struct {
	num, den Expr
}

// Div builds num / den. Division by zero surfaces at Eval, not construction.
func Div(num, den Expr) Expr {
	checkOperands([]Expr{num, den})

	return &quotient{num: num, den: den}
}

func (q *quotient) Subs(m SubsMap) Expr {
	if r, ok := m[Expr(q)]; ok {
		return r
	}

	return &quotient{num: q.num.Subs(m), den: q.den.Subs(m)}
}

func (q *quotient) Eval(env *Env) (float64, error) {
	n, err := q.num.Eval(env)
	if err != nil {
		return 0, err
	}
	d, err := q.den.Eval(env)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, ErrDivideByZero
	}

	return n / d, nil
}

func (q *quotient) Operands() []Expr { return []Expr{q.num, q.den} }

func (q *quotient) String() string {
	return "(" + q.num.String() + " / " + q.den.String() + ")"
}

// floorFn applies the integer floor to its argument.
type floorFn struct {
	arg Expr
}

// Floor builds floor(arg), the integer cell index of a fractional position.
func Floor(arg Expr) Expr {
	checkOperands([]Expr{arg})

	return &floorFn{arg: arg}
}

func (f *floorFn) Subs(m SubsMap) Expr {
	if r, ok := m[Expr(f)]; ok {
		return r
	}

	return &floorFn{arg: f.arg.Subs(m)}
}

func (f *floorFn) Eval(env *Env) (float64, error) {
	v, err := f.arg.Eval(env)
	if err != nil {
		return 0, err
	}

	return math.Floor(v), nil
}

func (f *floorFn) Operands() []Expr { return []Expr{f.arg} }

func (f *floorFn) String() string { return "floor(" + f.arg.String() + ")" }

// subsAll applies m to every element of exprs, preserving order.
func subsAll(exprs []Expr, m SubsMap) []Expr {
	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		out[i] = e.Subs(m)
	}

	return out
}

// renderNary joins operand renderings with sep inside parentheses.
func renderNary(exprs []Expr, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}

	return "(" + strings.Join(parts, sep) + ")"
}

// checkOperands panics when any operand is nil (programmer error).
func checkOperands(exprs []Expr) {
	for _, e := range exprs {
		if e == nil {
			panic(panicNilOperand)
		}
	}
}
