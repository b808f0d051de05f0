package grid

import (
	"fmt"

	"github.com/stencilkit/sparsegen/core"
)

// axisNames are the canonical names for the first grid axes; further axes
// fall back to d3, d4, ...
var axisNames = []string{"x", "y", "z"}

// Grid is a regular d-dimensional grid: shape (nodes per axis), physical
// extent, physical origin and the derived symbolic dimensions. Immutable
// once built.
type Grid struct {
	dims    []*core.Dimension
	shape   []int
	extent  []float64
	origin  []float64
	spacing []float64
}

// GridOption configures a Grid before construction.
type GridOption func(*gridConfig)

// gridConfig collects optional grid parameters.
type gridConfig struct {
	origin []float64
}

// WithOrigin sets the physical coordinate of grid node 0 on every axis.
// Defaults to the zero origin.
func WithOrigin(origin []float64) GridOption {
	return func(c *gridConfig) { c.origin = origin }
}

// NewGrid builds a grid with the given shape (nodes per axis) and physical
// extent per axis. Spacing is extent/(nodes-1). Axis dimensions are named
// x, y, z, then d3, d4, ...
//
// Returns ErrEmptyShape, ErrBadShape, ErrExtentMismatch or ErrBadExtent on
// invalid input. Complexity: O(d).
func NewGrid(shape []int, extent []float64, opts ...GridOption) (*Grid, error) {
	if len(shape) == 0 {
		return nil, ErrEmptyShape
	}
	if len(extent) != len(shape) {
		return nil, ErrExtentMismatch
	}

	var cfg gridConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	origin := cfg.origin
	if origin == nil {
		origin = make([]float64, len(shape))
	}
	if len(origin) != len(shape) {
		return nil, ErrExtentMismatch
	}

	g := &Grid{
		shape:   make([]int, len(shape)),
		extent:  make([]float64, len(shape)),
		origin:  make([]float64, len(shape)),
		spacing: make([]float64, len(shape)),
		dims:    make([]*core.Dimension, len(shape)),
	}
	for i, n := range shape {
		if n < 2 {
			return nil, fmt.Errorf("%w: axis %d has %d", ErrBadShape, i, n)
		}
		if extent[i] <= 0 {
			return nil, fmt.Errorf("%w: axis %d has %g", ErrBadExtent, i, extent[i])
		}
		g.shape[i] = n
		g.extent[i] = extent[i]
		g.origin[i] = origin[i]
		g.spacing[i] = extent[i] / float64(n-1)
		g.dims[i] = core.NewDimension(axisName(i))
	}

	return g, nil
}

// axisName returns the canonical name for axis i.
func axisName(i int) string {
	if i < len(axisNames) {
		return axisNames[i]
	}

	return fmt.Sprintf("d%d", i)
}

// Dim returns the grid dimensionality.
func (g *Grid) Dim() int { return len(g.dims) }

// Dimensions returns the symbolic axis dimensions in order.
func (g *Grid) Dimensions() []*core.Dimension {
	out := make([]*core.Dimension, len(g.dims))
	copy(out, g.dims)

	return out
}

// Shape returns the node count per axis.
func (g *Grid) Shape() []int {
	out := make([]int, len(g.shape))
	copy(out, g.shape)

	return out
}

// Extent returns the physical extent per axis.
func (g *Grid) Extent() []float64 {
	out := make([]float64, len(g.extent))
	copy(out, g.extent)

	return out
}

// Origin returns the physical coordinate of node 0 per axis.
func (g *Grid) Origin() []float64 {
	out := make([]float64, len(g.origin))
	copy(out, g.origin)

	return out
}

// Spacing returns the node spacing per axis.
func (g *Grid) Spacing() []float64 {
	out := make([]float64, len(g.spacing))
	copy(out, g.spacing)

	return out
}

// Bind publishes the grid's numeric side into env: spacing values for every
// h_<d> and the index bounds <d>_m = 0, <d>_M = nodes-1. Returns env for
// chaining. Complexity: O(d).
func (g *Grid) Bind(env *core.Env) *core.Env {
	for i, d := range g.dims {
		env.Set(d.Spacing(), g.spacing[i])
		env.Set(d.SymbolicMin(), 0)
		env.Set(d.SymbolicMax(), float64(g.shape[i]-1))
	}

	return env
}
