// File: interp/exec_test.go
//
// A miniature stand-in for the downstream loop-nest compiler, used by the
// engine tests: it loops over the sparse points, skips equations whose
// conditional dimensions do not hold, applies assignments and reductions
// against halo-padded dense arrays, and surfaces any out-of-bounds access
// as a test failure. The engine itself never executes anything.
package interp_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencilkit/sparsegen/core"
	"github.com/stencilkit/sparsegen/grid"
)

// denseStore is a halo-padded dense array for one grid field.
type denseStore struct {
	shape []int
	halo  int
	data  []float64
}

// newDenseStore allocates a zeroed store over g's shape with the given halo.
func newDenseStore(g *grid.Grid, halo int) *denseStore {
	shape := g.Shape()
	total := 1
	for _, n := range shape {
		total *= n + 2*halo
	}

	return &denseStore{shape: shape, halo: halo, data: make([]float64, total)}
}

// offset maps grid indices (halo-relative negatives allowed) to the linear
// position, erroring on anything outside the padded extent.
func (st *denseStore) offset(idx []int) (int, error) {
	if len(idx) != len(st.shape) {
		return 0, fmt.Errorf("rank mismatch: got %d indices for rank %d", len(idx), len(st.shape))
	}
	pos := 0
	for i, j := range idx {
		k := j + st.halo
		width := st.shape[i] + 2*st.halo
		if k < 0 || k >= width {
			return 0, fmt.Errorf("out-of-bounds access at axis %d: index %d outside halo", i, j)
		}
		pos = pos*width + k
	}

	return pos, nil
}

// load reads the value at idx.
func (st *denseStore) load(idx []int) (float64, error) {
	pos, err := st.offset(idx)
	if err != nil {
		return 0, err
	}

	return st.data[pos], nil
}

// add accumulates v at idx.
func (st *denseStore) add(idx []int, v float64) error {
	pos, err := st.offset(idx)
	if err != nil {
		return err
	}
	st.data[pos] += v

	return nil
}

// set overwrites the value at idx.
func (st *denseStore) set(idx []int, v float64) error {
	pos, err := st.offset(idx)
	if err != nil {
		return err
	}
	st.data[pos] = v

	return nil
}

// at reads an interior node, failing the test on bad indices.
func (st *denseStore) at(t *testing.T, idx ...int) float64 {
	t.Helper()
	v, err := st.load(idx)
	require.NoError(t, err)

	return v
}

// fill sets every interior node to f(idx).
func (st *denseStore) fill(t *testing.T, f func(idx []int) float64) {
	t.Helper()
	idx := make([]int, len(st.shape))
	for {
		require.NoError(t, st.set(idx, f(idx)))
		ai := len(idx) - 1
		for ai >= 0 {
			idx[ai]++
			if idx[ai] < st.shape[ai] {
				break
			}
			idx[ai] = 0
			ai--
		}
		if ai < 0 {
			return
		}
	}
}

// total sums the padded array, halo included (leaked mass shows up here).
func (st *denseStore) total() float64 {
	s := 0.0
	for _, v := range st.data {
		s += v
	}

	return s
}

// runner executes equation lists the way the downstream compiler would.
type runner struct {
	t      *testing.T
	env    *core.Env
	dense  map[*core.Field]*denseStore
	sparse map[*core.Field][]float64
}

// newRunner binds g and every point set into a fresh Env.
func newRunner(t *testing.T, g *grid.Grid, sets ...*grid.SparsePointSet) *runner {
	t.Helper()
	env := g.Bind(core.NewEnv())
	for _, s := range sets {
		s.Bind(env)
	}

	return &runner{
		t:      t,
		env:    env,
		dense:  make(map[*core.Field]*denseStore),
		sparse: make(map[*core.Field][]float64),
	}
}

// addDense registers a writable halo-padded store for f and routes reads of
// f through it.
func (r *runner) addDense(f *core.Field, g *grid.Grid, halo int) *denseStore {
	st := newDenseStore(g, halo)
	r.dense[f] = st
	r.env.BindField(f, st.load)

	return st
}

// addSparse registers a writable per-point slice for f (an interpolation
// target) and routes reads of f through it.
func (r *runner) addSparse(f *core.Field, npoints int) []float64 {
	vals := make([]float64, npoints)
	r.sparse[f] = vals
	r.env.BindField(f, func(idx []int) (float64, error) {
		if idx[0] < 0 || idx[0] >= len(vals) {
			return 0, fmt.Errorf("point index %d out of range", idx[0])
		}

		return vals[idx[0]], nil
	})

	return vals
}

// run executes eqs once per point of s, in order, honoring guards.
func (r *runner) run(eqs []core.Equation, s *grid.SparsePointSet) {
	r.t.Helper()
	for p := 0; p < s.NPoints(); p++ {
		r.env.Set(s.SparseDim(), float64(p))
		for _, eq := range eqs {
			r.step(eq)
		}
	}
}

// step applies one equation under the current bindings, skipping it when
// any referenced guard does not hold.
func (r *runner) step(eq core.Equation) {
	r.t.Helper()
	for _, cd := range eq.Conditionals() {
		ok, err := cd.Condition().Holds(r.env)
		require.NoError(r.t, err, "guard of %s", eq)
		if !ok {
			return
		}
	}

	v, err := eq.RHS.Eval(r.env)
	require.NoError(r.t, err, "rhs of %s", eq)

	switch lhs := eq.LHS.(type) {
	case *core.Symbol:
		if eq.Reduction {
			prev, _ := r.env.Value(lhs)
			v += prev
		}
		r.env.Set(lhs, v)
	case *core.FieldAccess:
		idx := make([]int, len(lhs.Indices()))
		for i, e := range lhs.Indices() {
			x, err := e.Eval(r.env)
			require.NoError(r.t, err, "index %d of %s", i, eq)
			idx[i] = int(math.Round(x))
		}
		r.store(eq, lhs.Field(), idx, v)
	default:
		r.t.Fatalf("unsupported assignment target in %s", eq)
	}
}

// store dispatches a write to the registered dense or sparse storage.
// A write that no guard masked must always land inside the halo.
func (r *runner) store(eq core.Equation, f *core.Field, idx []int, v float64) {
	r.t.Helper()
	if st, ok := r.dense[f]; ok {
		if eq.Reduction {
			require.NoError(r.t, st.add(idx, v), "guarded write escaped the halo: %s", eq)
		} else {
			require.NoError(r.t, st.set(idx, v), "guarded write escaped the halo: %s", eq)
		}

		return
	}
	if vals, ok := r.sparse[f]; ok {
		require.GreaterOrEqual(r.t, idx[0], 0)
		require.Less(r.t, idx[0], len(vals))
		if eq.Reduction {
			vals[idx[0]] += v
		} else {
			vals[idx[0]] = v
		}

		return
	}
	r.t.Fatalf("write to unregistered field %s in %s", f.Name(), eq)
}
