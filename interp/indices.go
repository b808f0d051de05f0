package interp

import (
	"fmt"

	"github.com/stencilkit/sparsegen/core"
)

// indexSymbolName is the deterministic naming function for guarded index
// temporaries. Uniqueness is an invariant of the triple, not a formatting
// accident: one point set never reuses (axis, offsetIndex) pairs.
func indexSymbolName(set, axis string, offsetIdx int) string {
	return fmt.Sprintf("ii_%s_%s_%d", set, axis, offsetIdx)
}

// neighborCombos enumerates the cartesian product {0..width-1}^ndim as
// offset-index tuples, last axis varying fastest. Both the weight list and
// the substitution list iterate this exact order, so index k in one pairs
// with index k in the other. Complexity: O(ndim · width^ndim).
func neighborCombos(width, ndim int) [][]int {
	total := 1
	for i := 0; i < ndim; i++ {
		total *= width
	}

	out := make([][]int, total)
	combo := make([]int, ndim)
	for k := 0; k < total; k++ {
		row := make([]int, ndim)
		copy(row, combo)
		out[k] = row
		for ai := ndim - 1; ai >= 0; ai-- {
			combo[ai]++
			if combo[ai] < width {
				break
			}
			combo[ai] = 0
		}
	}

	return out
}

// interpolationIndices builds the guarded indirections and per-neighbor
// substitutions for the field accesses in vars.
//
// Per (axis, offset-index) it allocates one fresh index symbol, emits its
// defining equation sym = base + offset, and wraps it in an indirect
// ConditionalDimension guarded by the halo-extended range
// [axis.min - r + offset, axis.max + r - offset]. Guards are built once per
// (axis, offset) and shared across all neighbor combinations and all
// accessed variables: O(d·2r) distinct guards instead of O((2r)^d).
//
// The returned substitution list holds one core.SubsMap per neighbor
// combination, mapping each referenced access to its origin-corrected
// guarded specialization; origin correction happens in index space, before
// the dense dimension is replaced. Its order matches neighborWeights.
//
// The returned temporaries are ordered definitions-before-use:
// positions, then coefficient temps, then index temps.
func (ip *Interpolator) interpolationIndices(vars []*core.FieldAccess, boundaryOffset int, implicit []core.Expr) ([]core.SubsMap, []core.Equation, error) {
	sf := ip.scheme.PointSet()
	g := sf.Grid()
	gdims := g.Dimensions()
	offsets := ip.scheme.OffsetRange()
	bases := sf.CoordinateIndices()
	r := sf.Radius()

	temps := ip.scheme.positionTemps(implicit)
	temps = append(temps, ip.scheme.coeffTemps(implicit)...)

	// One guarded indirection per (axis, offset), reused everywhere below.
	mapper := make([][]*core.ConditionalDimension, len(gdims))
	halo := float64(r - boundaryOffset)
	for ai, d := range gdims {
		mapper[ai] = make([]*core.ConditionalDimension, len(offsets))
		for k, off := range offsets {
			sym := core.NewSymbol(indexSymbolName(sf.Name(), d.Name(), k))
			lo, hi := core.Expr(d.SymbolicMin()), core.Expr(d.SymbolicMax())
			if halo != 0 {
				lo = core.Sub(lo, core.Num(halo))
				hi = core.Add(hi, core.Num(halo))
			}
			guard := core.And(core.Ge(sym, lo), core.Le(sym, hi))
			mapper[ai][k] = core.NewConditionalDimension(sym, sf.SparseDim(), guard, true)
			temps = append(temps, core.Assign(sym, core.Add(bases[ai], core.Num(float64(off))), implicit...))
		}
	}

	combos := neighborCombos(len(offsets), len(gdims))
	idxSubs := make([]core.SubsMap, len(combos))
	for k, combo := range combos {
		subs := make(core.SubsMap, len(vars))
		for _, v := range vars {
			perVar := make(core.SubsMap, len(gdims))
			for ai, d := range gdims {
				perVar[d] = correctedIndex(mapper[ai][combo[ai]], v.Field().Origin(d))
			}
			subs[v] = v.Subs(perVar)
		}
		idxSubs[k] = subs
	}

	return idxSubs, temps, nil
}

// correctedIndex subtracts the operand's origin offset from the guarded
// index, skipping the subtraction for the default zero origin.
func correctedIndex(cd *core.ConditionalDimension, origin core.Expr) core.Expr {
	if n, ok := origin.(core.Number); ok && n == 0 {
		return cd
	}

	return core.Sub(cd, origin)
}

// neighborWeights returns the combined N-D weight per neighbor: the product
// over axes of the per-axis weight at that neighbor's offset index, in
// neighborCombos order. Memoized once per interpolator; weight expressions
// are immutable after scheme construction.
func (ip *Interpolator) neighborWeights() []core.Expr {
	if ip.weights != nil {
		return ip.weights
	}

	ndim := ip.scheme.PointSet().Grid().Dim()
	combos := neighborCombos(len(ip.scheme.OffsetRange()), ndim)
	out := make([]core.Expr, len(combos))
	for k, combo := range combos {
		factors := make([]core.Expr, ndim)
		for ai := range factors {
			factors[ai] = ip.scheme.Weights(ai)[combo[ai]]
		}
		out[k] = core.Mul(factors...)
	}
	ip.weights = out

	return out
}
