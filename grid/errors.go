package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyShape indicates the grid was given no axes.
	ErrEmptyShape = errors.New("grid: shape must have at least one axis")

	// ErrBadShape indicates an axis with fewer than two grid nodes.
	ErrBadShape = errors.New("grid: each axis needs at least two nodes")

	// ErrExtentMismatch indicates extent/origin length differs from shape length.
	ErrExtentMismatch = errors.New("grid: extent and origin must match shape length")

	// ErrBadExtent indicates a non-positive physical extent on some axis.
	ErrBadExtent = errors.New("grid: extent must be strictly positive on every axis")
)

// Sentinel errors for sparse point-set construction.
var (
	// ErrEmptyName indicates an empty point-set name.
	ErrEmptyName = errors.New("grid: point-set name must be non-empty")

	// ErrNoCoordinates indicates that neither physical coordinates nor
	// explicit gridpoints were supplied.
	ErrNoCoordinates = errors.New("grid: point set needs coordinates or gridpoints")

	// ErrCoordinateShape indicates a coordinate or gridpoint row whose arity
	// differs from the grid dimensionality.
	ErrCoordinateShape = errors.New("grid: coordinate rows must match grid dimensionality")

	// ErrBadRadius indicates a halo radius smaller than 1.
	ErrBadRadius = errors.New("grid: radius must be at least 1")

	// ErrCoefficientShape indicates a coefficient table whose shape does not
	// match (points × axes × width) with a uniform positive width.
	ErrCoefficientShape = errors.New("grid: coefficient table shape mismatch")

	// ErrValueCount indicates per-point values whose count differs from the
	// number of points.
	ErrValueCount = errors.New("grid: value count must match point count")
)
