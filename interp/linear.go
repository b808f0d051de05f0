package interp

import (
	"github.com/stencilkit/sparsegen/core"
	"github.com/stencilkit/sparsegen/grid"
)

// LinearScheme is the analytic-linear weighting scheme: for local coordinate
// p in [0, h) along an axis with spacing h, the two bracketing nodes weigh
// {1 - p/h, p/h}. Separable products yield bilinear/trilinear interpolation
// in 2D/3D. Partition of unity holds by construction; a point exactly on a
// grid line degenerates to weights {1, 0}, which is valid, not an error.
type LinearScheme struct {
	sf      *grid.SparsePointSet
	weights [][]core.Expr // memoized per axis, nil until first access
}

// NewLinearScheme builds the analytic-linear scheme for sf.
// Returns ErrNilPointSet on a nil point set and ErrLinearRadius when the
// point set's radius is not 1.
func NewLinearScheme(sf *grid.SparsePointSet) (*LinearScheme, error) {
	if sf == nil {
		return nil, ErrNilPointSet
	}
	if sf.Radius() != 1 {
		return nil, ErrLinearRadius
	}

	return &LinearScheme{
		sf:      sf,
		weights: make([][]core.Expr, sf.Grid().Dim()),
	}, nil
}

// Kind returns AnalyticLinear.
func (s *LinearScheme) Kind() SchemeKind { return AnalyticLinear }

// PointSet returns the scheme's point set.
func (s *LinearScheme) PointSet() *grid.SparsePointSet { return s.sf }

// OffsetRange returns the analytic offsets [-r+1, r]; with r = 1 that is
// {0, 1}, the lower and upper bracketing nodes.
func (s *LinearScheme) OffsetRange() []int {
	r := s.sf.Radius()
	out := make([]int, 0, 2*r)
	for off := -r + 1; off <= r; off++ {
		out = append(out, off)
	}

	return out
}

// Weights returns {1 - p/h, p/h} for axis ai, computed once and reused.
func (s *LinearScheme) Weights(ai int) []core.Expr {
	if s.weights[ai] != nil {
		return s.weights[ai]
	}

	d := s.sf.Grid().Dimensions()[ai]
	p := s.sf.PointSymbols()[ai]
	frac := core.Div(p, d.Spacing())
	s.weights[ai] = []core.Expr{
		core.Sub(core.Num(1), frac),
		frac,
	}

	return s.weights[ai]
}

// positionTemps binds the per-axis position symbols to the point's
// coordinates.
func (s *LinearScheme) positionTemps(implicit []core.Expr) []core.Equation {
	return positionTemps(s.sf, implicit)
}

// coeffTemps defines each local coordinate p<d> = pos - h*floor(pos/h), the
// distance from the lower grid node. These must precede every weight or
// index expression that references p<d>.
func (s *LinearScheme) coeffTemps(implicit []core.Expr) []core.Equation {
	dims := s.sf.Grid().Dimensions()
	pos := s.sf.PositionSymbols()
	pts := s.sf.PointSymbols()

	out := make([]core.Equation, len(dims))
	for i, d := range dims {
		h := core.Expr(d.Spacing())
		out[i] = core.Assign(
			pts[i],
			core.Sub(pos[i], core.Mul(h, core.Floor(core.Div(core.Expr(pos[i]), h)))),
			implicit...,
		)
	}

	return out
}
