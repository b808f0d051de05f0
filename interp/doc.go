// Package interp is the weighted interpolation engine: it derives
// closed-form separable interpolation weights for arbitrary-dimension grids,
// builds boundary-guarded grid accesses, and emits the ordered scalar
// equation lists a loop-nest compiler turns into executable code.
//
// 🚀 What does interp emit?
//
//	Two symmetric deferred operations over a SparsePointSet:
//		• Interpolate: point ← weighted sum of a field expression at the
//		  (2r)^d guarded neighbor locations of each point
//		• Inject: field at each guarded neighbor location += weighted point
//		  contribution (always reduction-tagged: scatters may collide)
//
// ✨ Key properties:
//
//   - Separable weighting: the N-D weight of a neighbor is the product of
//     per-axis factors, so construction cost stays linear in axis count
//   - Guarded indexing: every emitted grid access goes through a
//     ConditionalDimension whose guard masks out-of-range indices; guards
//     are built once per (axis, offset) — O(d·2r), not O((2r)^d)
//   - Aligned enumeration: weight list and substitution list iterate the
//     neighbor set in the same order (last axis varies fastest), so
//     weight[k] always pairs with substitution[k]
//   - Deterministic naming: index temporaries are named by the pure function
//     (pointSet, axis, offsetIndex) → ii_<set>_<axis>_<k>
//   - Deferred construction: operations hold a pure callback; forcing twice
//     yields structurally identical equation lists
//
// ⚙️ Usage:
//
//	g, _ := grid.NewGrid([]int{101, 101}, []float64{100, 100})
//	src, _ := grid.NewSparsePointSet("src", g,
//	    grid.WithCoordinates([][]float64{{30.2, 70.7}}))
//
//	scheme, _ := interp.NewLinearScheme(src)
//	ip, _ := interp.New(scheme)
//
//	u := core.NewField("u", dimsOf(g)...)
//	eqs, err := interp.Combine(
//	    ip.Inject(u, src.Storage().Access()),
//	    ip.Interpolate(u.Access()),
//	)
//
// Weighting schemes (closed tagged variant, see SchemeKind):
//
//   - AnalyticLinear: per-axis weights {1 - p/h, p/h} over offsets {0, 1} —
//     bilinear/trilinear by separable product; partition of unity by
//     construction.
//   - Precomputed: per-axis weights looked up from a caller-tabulated
//     coefficient table over the scheme's own half-open offset range.
//
// Errors:
//
//   - ErrNilScheme / ErrNilPointSet / ErrNilField: nil collaborators.
//   - ErrLinearRadius: analytic-linear scheme on a radius ≠ 1 point set.
//   - ErrMissingCoefficients: precomputed scheme without a table.
//   - ErrCoefficientWidth: table width differs from the offset-range width.
//   - ErrNoOperands: interpolated expression references no field operands.
//   - ErrNilOperation: Combine received a nil operation.
//   - ErrBadCallback: a forced callback produced a malformed equation list.
//
// interp never executes numerical code and never synchronizes anything: its
// responsibility ends at emitting a complete, consistent, correctly tagged
// equation list.
package interp
