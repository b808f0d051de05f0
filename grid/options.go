package grid

// PointOption configures a SparsePointSet before construction. Options
// resolve into an immutable configuration; there is no global state.
type PointOption func(*pointConfig)

// pointConfig collects optional point-set parameters.
type pointConfig struct {
	coords     [][]float64
	gridpoints [][]int
	radius     int
	coeffs     [][][]float64
	values     []float64
}

// defaultPointConfig returns the zero configuration: radius 1, no data.
func defaultPointConfig() pointConfig {
	return pointConfig{radius: 1}
}

// WithCoordinates supplies the physical coordinates of the points, one row
// of grid.Dim() values per point.
func WithCoordinates(coords [][]float64) PointOption {
	return func(c *pointConfig) { c.coords = coords }
}

// WithGridpoints supplies explicit grid-index coordinates, one row of
// grid.Dim() integers per point. When present, position temporaries are
// suppressed: the position is exact, not fractional.
func WithGridpoints(gridpoints [][]int) PointOption {
	return func(c *pointConfig) { c.gridpoints = gridpoints }
}

// WithRadius sets the halo radius r: how many grid nodes on each side of a
// point contribute to interpolation/injection. Defaults to 1.
func WithRadius(r int) PointOption {
	return func(c *pointConfig) { c.radius = r }
}

// WithCoefficients supplies a precomputed coefficient table indexed
// [point][axis][offset]. All points and axes must share one positive width.
func WithCoefficients(coeffs [][][]float64) PointOption {
	return func(c *pointConfig) { c.coeffs = coeffs }
}

// WithValues supplies per-point numeric values for the storage field,
// used when binding the point set into a core.Env.
func WithValues(values []float64) PointOption {
	return func(c *pointConfig) { c.values = values }
}
