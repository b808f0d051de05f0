// Package core defines the symbolic building blocks consumed by the
// interpolation engine: expressions, grid dimensions, guarded (conditional)
// dimensions, fields with origin/stagger offsets, boolean guard conditions,
// and ordered update equations.
//
// What:
//
//   - Expr: immutable expression tree with substitution (Subs), numeric
//     evaluation against an Env (Eval), and stable textual rendering (String).
//   - Symbol / Num / Add / Mul / Sub / Div / Floor: scalar expression nodes.
//   - Dimension: a grid axis; carries its spacing symbol h_<d> and the
//     symbolic extent bounds <d>_m and <d>_M.
//   - ConditionalDimension: an indirect index symbol paired with a validity
//     Condition; field accesses through it are masked, never out-of-bounds.
//   - Field / FieldAccess: a named array over dimensions, accessed at
//     explicit index expressions, with per-dimension origin offsets.
//   - Equation: a single assignment or reduction-tagged increment, plus the
//     implicit dimensions the downstream compiler must honor.
//   - Env: symbol values and per-field load callbacks for Eval. Env evaluates
//     expressions only; it never executes generated loop nests.
//
// Why:
//
//   - The interpolation engine emits sequences of scalar equations; those
//     equations need a small, deterministic symbolic carrier that a loop-nest
//     compiler (or a test harness) can consume without surprises.
//
// Substitution semantics:
//
//   - SubsMap keys are matched by interface equality: pointer identity for
//     node types (*Symbol, *Dimension, *FieldAccess, ...) and value equality
//     for Number. Replacement is pre-order: a replaced node's children are
//     not revisited.
//
// Errors:
//
//   - ErrUnboundSymbol: Eval met a symbol with no value in the Env.
//   - ErrUnboundField: Eval met a field access with no registered loader.
//   - ErrDivideByZero: Eval met a zero denominator.
//
// Panics are reserved for programmer error (e.g. Field.At with the wrong
// index count), mirroring option-validation policy elsewhere in the module.
package core
