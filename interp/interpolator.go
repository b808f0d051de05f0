package interp

import (
	"fmt"

	"github.com/stencilkit/sparsegen/core"
	"github.com/stencilkit/sparsegen/grid"
)

// Interpolator builds deferred interpolation and injection operations for
// one sparse point set under one weighting scheme. It is a pure symbolic
// constructor: no threading, no locking, no I/O.
type Interpolator struct {
	scheme  WeightScheme
	sf      *grid.SparsePointSet
	weights []core.Expr // combined per-neighbor weights, memoized
}

// New builds an interpolator over scheme. Returns ErrNilScheme on a nil
// scheme.
func New(scheme WeightScheme) (*Interpolator, error) {
	if scheme == nil {
		return nil, ErrNilScheme
	}

	return &Interpolator{scheme: scheme, sf: scheme.PointSet()}, nil
}

// Scheme returns the weighting scheme.
func (ip *Interpolator) Scheme() WeightScheme { return ip.scheme }

// Option configures one Interpolate or Inject call.
type Option func(*opConfig)

// opConfig collects per-operation parameters.
type opConfig struct {
	offset    int
	increment bool
	selfSubs  core.SubsMap
	implicit  []core.Expr
}

// WithOffset applies an additional offset from the grid boundary when
// building guards: the halo-extended valid range shrinks by n on each side.
func WithOffset(n int) Option {
	return func(c *opConfig) { c.offset = n }
}

// WithIncrement makes Interpolate accumulate into the point storage (+=)
// instead of assigning it.
func WithIncrement() Option {
	return func(c *opConfig) { c.increment = true }
}

// WithSelfSubs applies caller substitutions to the interpolation target
// before the final write, e.g. to retarget a time slot.
func WithSelfSubs(m core.SubsMap) Option {
	return func(c *opConfig) { c.selfSubs = m }
}

// WithImplicitDims prepends an ordered list of dimensions that do not
// appear textually in the operation but must be honored as loop dimensions
// by the downstream compiler.
func WithImplicitDims(dims ...core.Expr) Option {
	return func(c *opConfig) { c.implicit = dims }
}

// resolveOptions folds opts over the zero configuration.
func resolveOptions(opts []Option) opConfig {
	var cfg opConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// implicitDims appends the point set's sparse dimension to the caller's
// implicit dimensions: every emitted equation loops over the points.
func (ip *Interpolator) implicitDims(user []core.Expr) []core.Expr {
	out := make([]core.Expr, 0, len(user)+1)
	out = append(out, user...)
	out = append(out, ip.sf.SparseDim())

	return out
}

// Interpolate builds the deferred gather of expr into the point set's
// storage: for each of the (2r)^d guarded neighbors, expr is specialized to
// the neighbor's location, multiplied by the neighbor's separable weight,
// and accumulated into a fresh scalar; the accumulator is finally assigned
// (or, with WithIncrement, added) to the storage.
//
// The emitted order is definitions-before-use: position/coefficient/index
// temporaries, accumulator zero-init, one increment per neighbor in
// neighbor-combination order, final write. Nothing happens until Force.
func (ip *Interpolator) Interpolate(expr core.Expr, opts ...Option) *Interpolation {
	cfg := resolveOptions(opts)
	implicit := ip.implicitDims(cfg.implicit)

	callback := func() ([]core.Equation, error) {
		if expr == nil {
			return nil, ErrNilExpr
		}
		// Derivative-like expressions expand before indirections appear.
		e := core.Evaluated(expr)

		vars := core.FieldAccesses(e)
		if len(vars) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoOperands, e)
		}

		idxSubs, temps, err := ip.interpolationIndices(vars, cfg.offset, implicit)
		if err != nil {
			return nil, err
		}
		weights := ip.neighborWeights()

		acc := core.NewSymbol("sum_" + ip.sf.Name())
		eqs := append(temps, core.Assign(acc, core.Num(0), implicit...))
		for k, subs := range idxSubs {
			contrib := core.Mul(e.Subs(subs), weights[k].Subs(subs))
			eqs = append(eqs, core.Increment(acc, contrib, implicit...))
		}

		lhs := core.Expr(ip.sf.Storage().Access())
		if len(cfg.selfSubs) > 0 {
			lhs = lhs.Subs(cfg.selfSubs)
		}
		if cfg.increment {
			return append(eqs, core.Increment(lhs, acc, implicit...)), nil
		}

		return append(eqs, core.Assign(lhs, acc, implicit...)), nil
	}

	return &Interpolation{
		deferredOp: deferredOp{callback: callback},
		Expr:       expr,
		Offset:     cfg.offset,
		Increment:  cfg.increment,
		SelfSubs:   cfg.selfSubs,
	}
}

// Inject builds the deferred scatter of expr into field: for each guarded
// neighbor, one reduction equation increments the field at the neighbor's
// origin-corrected location by the neighbor-specialized expression times the
// neighbor's separable weight. There is no intermediate accumulator — target
// locations differ per neighbor, and colliding scatters across points are
// the downstream compiler's reduction semantics to resolve; every emitted
// equation is reduction-tagged, never a plain overwrite.
func (ip *Interpolator) Inject(field *core.Field, expr core.Expr, opts ...Option) *Injection {
	cfg := resolveOptions(opts)
	implicit := ip.implicitDims(cfg.implicit)

	callback := func() ([]core.Equation, error) {
		if field == nil {
			return nil, ErrNilField
		}
		if expr == nil {
			return nil, ErrNilExpr
		}
		e := core.Evaluated(expr)

		// The target's own guarded positions decide where to scatter.
		target := field.Access()
		vars := append(core.FieldAccesses(e), target)

		idxSubs, temps, err := ip.interpolationIndices(vars, cfg.offset, implicit)
		if err != nil {
			return nil, err
		}
		weights := ip.neighborWeights()

		eqs := temps
		for k, subs := range idxSubs {
			contrib := core.Mul(e.Subs(subs), weights[k].Subs(subs))
			eqs = append(eqs, core.Increment(target.Subs(subs), contrib, implicit...))
		}

		return eqs, nil
	}

	return &Injection{
		deferredOp: deferredOp{callback: callback},
		Field:      field,
		Expr:       expr,
		Offset:     cfg.offset,
	}
}
