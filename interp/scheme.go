package interp

import (
	"fmt"

	"github.com/stencilkit/sparsegen/core"
	"github.com/stencilkit/sparsegen/grid"
)

// SchemeKind tags the closed set of weighting schemes. New schemes are an
// explicit extension point: add a kind, implement WeightScheme in this
// package, and every consumer dispatches through the capability interface —
// there is no open-ended subclassing.
type SchemeKind int

const (
	// AnalyticLinear derives closed-form linear weights per axis:
	// bilinear in 2D, trilinear in 3D.
	AnalyticLinear SchemeKind = iota

	// Precomputed looks per-axis weights up in a caller-supplied
	// coefficient table.
	Precomputed
)

// String returns the scheme kind's name.
func (k SchemeKind) String() string {
	switch k {
	case AnalyticLinear:
		return "AnalyticLinear"
	case Precomputed:
		return "Precomputed"
	default:
		return fmt.Sprintf("SchemeKind(%d)", int(k))
	}
}

// WeightScheme is the capability interface every weighting scheme exposes.
// The unexported methods seal the set of implementations to this package.
type WeightScheme interface {
	// Kind returns the scheme's variant tag.
	Kind() SchemeKind

	// PointSet returns the sparse point set the scheme weights for.
	PointSet() *grid.SparsePointSet

	// OffsetRange returns the per-axis relative neighbor offsets, ascending.
	// The same range applies to every axis.
	OffsetRange() []int

	// Weights returns the per-offset weight expressions for axis index ai,
	// aligned index-for-index with OffsetRange. Memoized: the expressions
	// are computed once per (scheme, axis) and never invalidated.
	Weights(ai int) []core.Expr

	// positionTemps returns the equations defining the per-axis position
	// symbols, emitted before any expression references them.
	positionTemps(implicit []core.Expr) []core.Equation

	// coeffTemps returns the equations defining the per-axis local
	// coordinate symbols, emitted after positionTemps and before weights.
	coeffTemps(implicit []core.Expr) []core.Equation
}

// positionTemps is the shared fractional-position mechanism: one assignment
// per axis binding pos<d> to the point's coordinate expression.
func positionTemps(sf *grid.SparsePointSet, implicit []core.Expr) []core.Equation {
	pm := sf.PositionMap()
	out := make([]core.Equation, len(pm))
	for i, b := range pm {
		out[i] = core.Assign(b.Sym, b.Expr, implicit...)
	}

	return out
}

// floorDiv returns the floored quotient a/b, matching the table scheme's
// offset-range convention for negative numerators.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}
