package core

import (
	"math"
	"strings"
)

// Field is a named array defined over an ordered list of dimensions: a dense
// grid function, a sparse per-point store, or a coefficient table. A Field is
// not itself an expression; it enters expressions through FieldAccess nodes.
type Field struct {
	name   string
	dims   []Expr
	origin map[Expr]Expr
}

// NewField creates a field over dims. Panics on an empty name or nil
// dimensions (programmer error).
func NewField(name string, dims ...Expr) *Field {
	if name == "" {
		panic(panicEmptyName)
	}
	checkOperands(dims)
	owned := make([]Expr, len(dims))
	copy(owned, dims)

	return &Field{name: name, dims: owned, origin: make(map[Expr]Expr)}
}

// Name returns the field's name.
func (f *Field) Name() string { return f.name }

// Dims returns the field's dimensions in declaration order.
func (f *Field) Dims() []Expr {
	out := make([]Expr, len(f.dims))
	copy(out, f.dims)

	return out
}

// Rank returns the number of dimensions.
func (f *Field) Rank() int { return len(f.dims) }

// SetOrigin records the origin/stagger offset of the field along d. The
// offset is subtracted in index space when the field is specialized to a
// neighbor location. Returns f for chaining.
func (f *Field) SetOrigin(d Expr, offset Expr) *Field {
	if d == nil || offset == nil {
		panic(panicNilOperand)
	}
	f.origin[d] = offset

	return f
}

// Origin returns the origin offset along d, defaulting to the literal 0.
func (f *Field) Origin(d Expr) Expr {
	if off, ok := f.origin[d]; ok {
		return off
	}

	return Num(0)
}

// At accesses the field at explicit index expressions, one per dimension.
// Panics when the index count does not match the field rank.
func (f *Field) At(indices ...Expr) *FieldAccess {
	if len(indices) != len(f.dims) {
		panic(panicIndexArity)
	}
	checkOperands(indices)
	owned := make([]Expr, len(indices))
	copy(owned, indices)

	return &FieldAccess{field: f, indices: owned}
}

// Access returns the canonical access of the field at its own dimensions,
// e.g. u[x, y] for a field over (x, y).
func (f *Field) Access() *FieldAccess {
	return f.At(f.Dims()...)
}

// FieldAccess is a read/write reference to a field at explicit indices.
// Accesses are compared by pointer identity; substitution produces fresh
// nodes.
type FieldAccess struct {
	field   *Field
	indices []Expr
}

// Field returns the accessed field.
func (a *FieldAccess) Field() *Field { return a.field }

// Indices returns the index expressions in dimension order.
func (a *FieldAccess) Indices() []Expr {
	out := make([]Expr, len(a.indices))
	copy(out, a.indices)

	return out
}

// WithIndices returns an access to the same field at the given indices.
func (a *FieldAccess) WithIndices(indices ...Expr) *FieldAccess {
	return a.field.At(indices...)
}

// Subs replaces the whole access when it appears as a key in m and rewrites
// the index expressions otherwise.
func (a *FieldAccess) Subs(m SubsMap) Expr {
	if r, ok := m[Expr(a)]; ok {
		return r
	}

	return &FieldAccess{field: a.field, indices: subsAll(a.indices, m)}
}

// Eval evaluates every index, rounds each to the nearest integer and loads
// the value through the field's Env loader.
func (a *FieldAccess) Eval(env *Env) (float64, error) {
	idx := make([]int, len(a.indices))
	for i, e := range a.indices {
		v, err := e.Eval(env)
		if err != nil {
			return 0, err
		}
		idx[i] = int(math.Round(v))
	}

	return env.load(a.field, idx)
}

// Operands returns the index expressions.
func (a *FieldAccess) Operands() []Expr {
	return a.Indices()
}

// String renders "name[i0, i1, ...]".
func (a *FieldAccess) String() string {
	parts := make([]string, len(a.indices))
	for i, e := range a.indices {
		parts[i] = e.String()
	}

	return a.field.name + "[" + strings.Join(parts, ", ") + "]"
}
