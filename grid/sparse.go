package grid

import (
	"fmt"

	"github.com/stencilkit/sparsegen/core"
)

// PositionBinding pairs a position symbol with the coordinate expression it
// stands for, in axis order. The engine emits "Sym = Expr" temporaries
// before any weight or index expression references the symbol.
type PositionBinding struct {
	// Sym is the per-axis position symbol pos<d>.
	Sym *core.Symbol

	// Expr is the coordinate expression, origin-shifted when the grid origin
	// is non-zero.
	Expr core.Expr
}

// SparsePointSet is a collection of P off-grid points embedded in a regular
// grid, together with the symbolic carriers derived from it. The
// interpolation engine reads it; it never mutates it.
type SparsePointSet struct {
	name string
	g    *Grid

	coords     [][]float64
	gridpoints [][]int
	radius     int
	coeffs     [][][]float64
	coeffWidth int
	values     []float64

	sparseDim  *core.Dimension
	storage    *core.Field
	coordField *core.Field
	gpField    *core.Field
	coefField  *core.Field

	posSyms   []*core.Symbol
	pointSyms []*core.Symbol
}

// NewSparsePointSet builds a point set named name on g. Either
// WithCoordinates or WithGridpoints (or both) must be supplied.
//
// Derived symbolic members: sparse dimension p_<name>, storage field
// <name>[p], coordinate field <name>_coords[p, d], optional gridpoint field
// <name>_gp[p, d], optional coefficient field <name>_coeffs[p, d, i],
// position symbols pos<axis> and local-coordinate symbols p<axis>.
//
// Returns ErrEmptyName, ErrNoCoordinates, ErrCoordinateShape, ErrBadRadius,
// ErrCoefficientShape or ErrValueCount on invalid input.
// Complexity: O(P·d) validation.
func NewSparsePointSet(name string, g *Grid, opts ...PointOption) (*SparsePointSet, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	cfg := defaultPointConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.coords == nil && cfg.gridpoints == nil {
		return nil, ErrNoCoordinates
	}
	if cfg.radius < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRadius, cfg.radius)
	}

	npoints := len(cfg.coords)
	if cfg.coords == nil {
		npoints = len(cfg.gridpoints)
	}
	for _, row := range cfg.coords {
		if len(row) != g.Dim() {
			return nil, ErrCoordinateShape
		}
	}
	for _, row := range cfg.gridpoints {
		if len(row) != g.Dim() {
			return nil, ErrCoordinateShape
		}
	}
	if cfg.gridpoints != nil && cfg.coords != nil && len(cfg.gridpoints) != len(cfg.coords) {
		return nil, ErrCoordinateShape
	}

	coeffWidth := 0
	if cfg.coeffs != nil {
		if len(cfg.coeffs) != npoints {
			return nil, ErrCoefficientShape
		}
		for _, perPoint := range cfg.coeffs {
			if len(perPoint) != g.Dim() {
				return nil, ErrCoefficientShape
			}
			for _, perAxis := range perPoint {
				if coeffWidth == 0 {
					coeffWidth = len(perAxis)
				}
				if len(perAxis) == 0 || len(perAxis) != coeffWidth {
					return nil, ErrCoefficientShape
				}
			}
		}
	}
	if cfg.values != nil && len(cfg.values) != npoints {
		return nil, ErrValueCount
	}

	s := &SparsePointSet{
		name:       name,
		g:          g,
		coords:     cfg.coords,
		gridpoints: cfg.gridpoints,
		radius:     cfg.radius,
		coeffs:     cfg.coeffs,
		coeffWidth: coeffWidth,
		values:     cfg.values,
	}

	s.sparseDim = core.NewDimension("p_" + name)
	coordDim := core.NewDimension("d_" + name)
	s.storage = core.NewField(name, s.sparseDim)
	s.coordField = core.NewField(name+"_coords", s.sparseDim, coordDim)
	if s.gridpoints != nil {
		s.gpField = core.NewField(name+"_gp", s.sparseDim, coordDim)
	}
	if s.coeffs != nil {
		offsetDim := core.NewDimension("i_" + name)
		s.coefField = core.NewField(name+"_coeffs", s.sparseDim, coordDim, offsetDim)
	}

	s.posSyms = make([]*core.Symbol, g.Dim())
	s.pointSyms = make([]*core.Symbol, g.Dim())
	for i, d := range g.Dimensions() {
		s.posSyms[i] = core.NewSymbol("pos" + d.Name())
		s.pointSyms[i] = core.NewSymbol("p" + d.Name())
	}

	return s, nil
}

// Name returns the point-set name.
func (s *SparsePointSet) Name() string { return s.name }

// Grid returns the embedding grid.
func (s *SparsePointSet) Grid() *Grid { return s.g }

// NPoints returns the number of points P.
func (s *SparsePointSet) NPoints() int {
	if s.coords != nil {
		return len(s.coords)
	}

	return len(s.gridpoints)
}

// Radius returns the halo radius r.
func (s *SparsePointSet) Radius() int { return s.radius }

// SparseDim returns the sparse point dimension p_<name>.
func (s *SparsePointSet) SparseDim() *core.Dimension { return s.sparseDim }

// Storage returns the per-point storage field <name>[p]: the target of
// interpolation and the usual value source of injection.
func (s *SparsePointSet) Storage() *core.Field { return s.storage }

// CoordinateField returns the coordinate field <name>_coords[p, d].
func (s *SparsePointSet) CoordinateField() *core.Field { return s.coordField }

// HasGridpoints reports whether explicit grid-index coordinates are present.
func (s *SparsePointSet) HasGridpoints() bool { return s.gridpoints != nil }

// GridpointField returns the gridpoint field <name>_gp[p, d], or nil.
func (s *SparsePointSet) GridpointField() *core.Field { return s.gpField }

// HasCoefficients reports whether a precomputed coefficient table is present.
func (s *SparsePointSet) HasCoefficients() bool { return s.coeffs != nil }

// CoefficientField returns the table field <name>_coeffs[p, d, i], or nil.
func (s *SparsePointSet) CoefficientField() *core.Field { return s.coefField }

// CoefficientWidth returns the per-axis offset count of the table, 0 when
// no table is present.
func (s *SparsePointSet) CoefficientWidth() int { return s.coeffWidth }

// PositionSymbols returns the per-axis position symbols pos<d>.
func (s *SparsePointSet) PositionSymbols() []*core.Symbol {
	out := make([]*core.Symbol, len(s.posSyms))
	copy(out, s.posSyms)

	return out
}

// PointSymbols returns the per-axis local-coordinate symbols p<d>, the
// distance of a point from its lower grid node in [0, h).
func (s *SparsePointSet) PointSymbols() []*core.Symbol {
	out := make([]*core.Symbol, len(s.pointSyms))
	copy(out, s.pointSyms)

	return out
}

// PositionMap returns the ordered position bindings: for each axis i the
// symbol pos<d_i> and the coordinate expression <name>_coords[p, i], shifted
// by the grid origin when it is non-zero.
func (s *SparsePointSet) PositionMap() []PositionBinding {
	origin := s.g.Origin()
	out := make([]PositionBinding, s.g.Dim())
	for i := range out {
		expr := core.Expr(s.coordField.At(s.sparseDim, core.Num(float64(i))))
		if origin[i] != 0 {
			expr = core.Sub(expr, core.Num(origin[i]))
		}
		out[i] = PositionBinding{Sym: s.posSyms[i], Expr: expr}
	}

	return out
}

// CoordinateIndices returns the per-axis base-cell index expressions: with
// explicit gridpoints, the gridpoint lookup <name>_gp[p, i]; otherwise
// floor(pos<d>/h_<d>) over the position symbols.
func (s *SparsePointSet) CoordinateIndices() []core.Expr {
	out := make([]core.Expr, s.g.Dim())
	for i, d := range s.g.Dimensions() {
		if s.gridpoints != nil {
			out[i] = s.gpField.At(s.sparseDim, core.Num(float64(i)))
			continue
		}
		out[i] = core.Floor(core.Div(core.Expr(s.posSyms[i]), d.Spacing()))
	}

	return out
}

// Values returns the per-point storage values, or nil when none were given.
func (s *SparsePointSet) Values() []float64 {
	if s.values == nil {
		return nil
	}
	out := make([]float64, len(s.values))
	copy(out, s.values)

	return out
}

// Bind registers loaders for the read-only collaborator fields (coordinates,
// gridpoints, coefficient table, storage values) in env. The sparse
// dimension itself is bound per point by the consumer. Returns env for
// chaining.
func (s *SparsePointSet) Bind(env *core.Env) *core.Env {
	env.BindField(s.coordField, func(idx []int) (float64, error) {
		if err := s.checkPointAxis(idx[0], idx[1]); err != nil {
			return 0, err
		}
		if s.coords == nil {
			// Physical coordinate reconstructed from the explicit gridpoint.
			return s.g.Origin()[idx[1]] + float64(s.gridpoints[idx[0]][idx[1]])*s.g.Spacing()[idx[1]], nil
		}

		return s.coords[idx[0]][idx[1]], nil
	})
	if s.gpField != nil {
		env.BindField(s.gpField, func(idx []int) (float64, error) {
			if err := s.checkPointAxis(idx[0], idx[1]); err != nil {
				return 0, err
			}

			return float64(s.gridpoints[idx[0]][idx[1]]), nil
		})
	}
	if s.coefField != nil {
		env.BindField(s.coefField, func(idx []int) (float64, error) {
			if err := s.checkPointAxis(idx[0], idx[1]); err != nil {
				return 0, err
			}
			if idx[2] < 0 || idx[2] >= s.coeffWidth {
				return 0, fmt.Errorf("%w: offset %d", ErrCoefficientShape, idx[2])
			}

			return s.coeffs[idx[0]][idx[1]][idx[2]], nil
		})
	}
	if s.values != nil {
		env.BindField(s.storage, func(idx []int) (float64, error) {
			if idx[0] < 0 || idx[0] >= len(s.values) {
				return 0, fmt.Errorf("%w: point %d", ErrValueCount, idx[0])
			}

			return s.values[idx[0]], nil
		})
	}

	return env
}

// checkPointAxis validates a (point, axis) pair for loader access.
func (s *SparsePointSet) checkPointAxis(p, axis int) error {
	if p < 0 || p >= s.NPoints() {
		return fmt.Errorf("%w: point %d", ErrValueCount, p)
	}
	if axis < 0 || axis >= s.g.Dim() {
		return fmt.Errorf("%w: axis %d", ErrCoordinateShape, axis)
	}

	return nil
}
