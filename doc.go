// Package sparsegen generates symbolic update equations for moving data
// between sparse off-grid point sets and regular finite-difference grids —
// the interpolation/injection layer of a wave-equation code generator.
//
// 🚀 What is sparsegen?
//
//	A pure symbolic-construction library that brings together:
//		• Separable weighting: N-D weights as products of per-axis factors
//		• Analytic linear scheme: closed-form bilinear/trilinear unit-cell weights
//		• Precomputed scheme: caller-tabulated coefficients, any half-width
//		• Guarded indexing: every grid access carries a validity condition
//		• Deferred operations: equation lists produced only when forced
//
// ✨ Why choose sparsegen?
//
//   - Deterministic – same inputs always emit the same equation list
//   - Index-safe – out-of-bounds neighbors are masked, never dereferenced
//   - Pure Go – no cgo, no hidden deps; it builds equations, it never runs them
//   - Compiler-friendly – increments are reduction-tagged for parallel lowering
//
// Under the hood, everything is organized under three subpackages:
//
//	core/   — symbolic expressions, dimensions, fields, conditions & equations
//	grid/   — regular Grid and SparsePointSet collaborators
//	interp/ — the weighted interpolation engine: schemes, guards, operations
//
// Quick sketch, a 2D point at (0.3, 0.7) with radius 1:
//
//	    w00·u[i,j]     w01·u[i,j+1]
//	           ╲         ╱
//	            ● (0.3,0.7)
//	           ╱         ╲
//	    w10·u[i+1,j]   w11·u[i+1,j+1]
//
//	four guarded neighbors, four separable weights, one equation list.
//
// Dive into each package's doc.go for contracts, error taxonomy and
// complexity notes.
//
//	go get github.com/stencilkit/sparsegen/interp
package sparsegen
