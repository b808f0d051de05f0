// Package grid provides the two collaborators the interpolation engine reads
// from: the regular Grid and the SparsePointSet of off-grid points embedded
// in it.
//
// What:
//
//   - Grid wraps shape/extent/origin for d axes and derives one
//     core.Dimension per axis (x, y, z, ...) with spacing h_<d> and symbolic
//     bounds <d>_m, <d>_M. Immutable once built.
//   - SparsePointSet describes P irregularly placed points: physical
//     coordinates or explicit grid-index coordinates, a halo radius r, an
//     optional precomputed coefficient table (point × axis × offset), and the
//     symbolic carriers derived from them — the sparse dimension p_<name>,
//     the per-point storage field <name>[p], the coordinate field
//     <name>_coords[p, d], position symbols pos<d> and local-coordinate
//     symbols p<d>.
//
// Why:
//
//   - The engine consumes only stable, read-only views: dimensionality,
//     bounds, spacing, base-cell index expressions and table handles. Keeping
//     ownership here lets the engine stay a pure constructor.
//
// Binding:
//
//   - Grid.Bind and SparsePointSet.Bind publish numeric values (spacings,
//     extents, coordinate/table loaders) into a core.Env so tests and
//     reference consumers can evaluate emitted expressions.
//
// Errors:
//
//   - ErrEmptyShape: grid has no axes.
//   - ErrBadShape: an axis has fewer than two nodes.
//   - ErrExtentMismatch: extent/origin length differs from shape length.
//   - ErrBadExtent: an axis extent is not strictly positive.
//   - ErrEmptyName: point-set name is empty.
//   - ErrNoCoordinates: neither coordinates nor gridpoints supplied.
//   - ErrCoordinateShape: a coordinate/gridpoint row has the wrong arity.
//   - ErrBadRadius: halo radius is not at least 1.
//   - ErrCoefficientShape: coefficient table shape does not match
//     (points × axes × width).
//   - ErrValueCount: per-point value count differs from the point count.
package grid
