package interp

import "errors"

// Configuration errors, surfaced at scheme or interpolator construction.
var (
	// ErrNilScheme indicates New was given a nil weighting scheme.
	ErrNilScheme = errors.New("interp: weighting scheme must be non-nil")

	// ErrNilPointSet indicates a scheme constructor was given a nil point set.
	ErrNilPointSet = errors.New("interp: point set must be non-nil")

	// ErrLinearRadius indicates the analytic-linear scheme was asked to serve
	// a point set with radius other than 1; its closed-form weights cover
	// exactly the two bracketing nodes per axis.
	ErrLinearRadius = errors.New("interp: analytic-linear scheme requires radius 1")

	// ErrMissingCoefficients indicates the precomputed scheme was invoked on
	// a point set that carries no coefficient table.
	ErrMissingCoefficients = errors.New("interp: precomputed scheme requires a coefficient table")

	// ErrCoefficientWidth indicates the coefficient table's per-axis width
	// differs from the scheme's offset-range width.
	ErrCoefficientWidth = errors.New("interp: coefficient table width must match offset range")
)

// Construction/force errors, surfaced when a deferred operation is built or
// forced.
var (
	// ErrNoOperands indicates an interpolation expression that references no
	// field operands: there is nothing to gather from the grid.
	ErrNoOperands = errors.New("interp: expression references no field operands")

	// ErrNilField indicates Inject was given a nil target field.
	ErrNilField = errors.New("interp: injection target field must be non-nil")

	// ErrNilExpr indicates an operation was given a nil expression.
	ErrNilExpr = errors.New("interp: operation expression must be non-nil")

	// ErrNilOperation indicates Combine received a nil operation.
	ErrNilOperation = errors.New("interp: combined operation must be non-nil")

	// ErrBadCallback indicates a forced callback produced a malformed
	// equation list: an internal-consistency failure, never recovered.
	ErrBadCallback = errors.New("interp: operation callback produced a malformed equation list")
)
