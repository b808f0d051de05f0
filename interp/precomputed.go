package interp

import (
	"fmt"

	"github.com/stencilkit/sparsegen/core"
	"github.com/stencilkit/sparsegen/grid"
)

// PrecomputedScheme weights neighbors from a caller-tabulated coefficient
// table indexed (point, axis, offset). Its offset range is the half-open
// [-r/2+1, r/2+1) under floored division: the table already spans the full
// stencil width r, so the radius convention differs from the analytic
// scheme's on purpose.
//
// When the point set carries explicit gridpoints, no position temporaries
// are emitted: the position is exact, not fractional.
type PrecomputedScheme struct {
	sf      *grid.SparsePointSet
	weights [][]core.Expr // memoized per axis, nil until first access
}

// NewPrecomputedScheme builds the table-driven scheme for sf.
// Returns ErrNilPointSet on a nil point set, ErrMissingCoefficients when sf
// carries no table, and ErrCoefficientWidth when the table width differs
// from the scheme's offset-range width.
func NewPrecomputedScheme(sf *grid.SparsePointSet) (*PrecomputedScheme, error) {
	if sf == nil {
		return nil, ErrNilPointSet
	}
	if !sf.HasCoefficients() {
		return nil, ErrMissingCoefficients
	}

	s := &PrecomputedScheme{
		sf:      sf,
		weights: make([][]core.Expr, sf.Grid().Dim()),
	}
	if want, got := len(s.OffsetRange()), sf.CoefficientWidth(); want != got {
		return nil, fmt.Errorf("%w: range width %d, table width %d", ErrCoefficientWidth, want, got)
	}

	return s, nil
}

// Kind returns Precomputed.
func (s *PrecomputedScheme) Kind() SchemeKind { return Precomputed }

// PointSet returns the scheme's point set.
func (s *PrecomputedScheme) PointSet() *grid.SparsePointSet { return s.sf }

// OffsetRange returns the table offsets [floor(-r/2)+1, floor(r/2)],
// inclusive — exactly r offsets for any radius r.
func (s *PrecomputedScheme) OffsetRange() []int {
	r := s.sf.Radius()
	lo := floorDiv(-r, 2) + 1
	hi := floorDiv(r, 2)
	out := make([]int, 0, hi-lo+1)
	for off := lo; off <= hi; off++ {
		out = append(out, off)
	}

	return out
}

// Weights returns the table lookups <name>_coeffs[p, ai, k] for axis ai,
// one per offset column, computed once and reused.
func (s *PrecomputedScheme) Weights(ai int) []core.Expr {
	if s.weights[ai] != nil {
		return s.weights[ai]
	}

	table := s.sf.CoefficientField()
	p := core.Expr(s.sf.SparseDim())
	width := s.sf.CoefficientWidth()
	out := make([]core.Expr, width)
	for k := 0; k < width; k++ {
		out[k] = table.At(p, core.Num(float64(ai)), core.Num(float64(k)))
	}
	s.weights[ai] = out

	return out
}

// positionTemps is suppressed when explicit gridpoints are present and falls
// back to the shared fractional-position mechanism otherwise.
func (s *PrecomputedScheme) positionTemps(implicit []core.Expr) []core.Equation {
	if s.sf.HasGridpoints() {
		return nil
	}

	return positionTemps(s.sf, implicit)
}

// coeffTemps returns nothing: table weights need no local-coordinate
// temporaries.
func (s *PrecomputedScheme) coeffTemps([]core.Expr) []core.Equation {
	return nil
}
