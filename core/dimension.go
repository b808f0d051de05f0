package core

// Dimension is a grid axis. Besides acting as the canonical index symbol for
// that axis inside field accesses, it owns three derived symbols: the grid
// spacing h_<name> and the symbolic extent bounds <name>_m and <name>_M.
// Dimensions are compared by pointer identity.
type Dimension struct {
	name    string
	spacing *Symbol
	min     *Symbol
	max     *Symbol
}

// NewDimension creates a dimension named name with derived symbols
// h_<name>, <name>_m and <name>_M. Panics on an empty name.
func NewDimension(name string) *Dimension {
	if name == "" {
		panic(panicEmptyName)
	}

	return &Dimension{
		name:    name,
		spacing: NewSymbol("h_" + name),
		min:     NewSymbol(name + "_m"),
		max:     NewSymbol(name + "_M"),
	}
}

// Name returns the axis name.
func (d *Dimension) Name() string { return d.name }

// Spacing returns the spacing symbol h_<name>.
func (d *Dimension) Spacing() *Symbol { return d.spacing }

// SymbolicMin returns the symbolic lower extent bound <name>_m.
func (d *Dimension) SymbolicMin() *Symbol { return d.min }

// SymbolicMax returns the symbolic upper extent bound <name>_M.
func (d *Dimension) SymbolicMax() *Symbol { return d.max }

// Subs replaces the dimension when it appears as a key in m.
func (d *Dimension) Subs(m SubsMap) Expr {
	if r, ok := m[d]; ok {
		return r
	}

	return d
}

// Eval looks the dimension up in env; ErrUnboundSymbol when absent.
func (d *Dimension) Eval(env *Env) (float64, error) {
	if v, ok := env.Value(d); ok {
		return v, nil
	}

	return 0, wrapUnbound(d.name)
}

// Operands returns no children: a dimension is a leaf.
func (d *Dimension) Operands() []Expr { return nil }

// String returns the axis name.
func (d *Dimension) String() string { return d.name }

// ConditionalDimension is an indirect index: a fresh index symbol standing in
// for a dense axis, paired with a validity condition. Any equation that
// references a conditional dimension is executed only where the condition
// holds — out-of-range indices are masked, never dereferenced.
type ConditionalDimension struct {
	name      string
	index     *Symbol
	parent    Expr
	condition Condition
	indirect  bool
}

// NewConditionalDimension binds index to parent under cond. The indirect flag
// marks the dimension as a pure indirection (its values come from the index
// symbol, not from a loop over the parent's extent). Panics on nil inputs.
func NewConditionalDimension(index *Symbol, parent Expr, cond Condition, indirect bool) *ConditionalDimension {
	if index == nil || parent == nil || cond == nil {
		panic(panicNilOperand)
	}

	return &ConditionalDimension{
		name:      index.Name(),
		index:     index,
		parent:    parent,
		condition: cond,
		indirect:  indirect,
	}
}

// Name returns the dimension name (the index symbol's name).
func (cd *ConditionalDimension) Name() string { return cd.name }

// Index returns the underlying index symbol.
func (cd *ConditionalDimension) Index() *Symbol { return cd.index }

// Parent returns the dimension this indirection stands in for.
func (cd *ConditionalDimension) Parent() Expr { return cd.parent }

// Condition returns the validity guard.
func (cd *ConditionalDimension) Condition() Condition { return cd.condition }

// Indirect reports whether the dimension is a pure indirection.
func (cd *ConditionalDimension) Indirect() bool { return cd.indirect }

// Subs replaces the conditional dimension when it appears as a key in m.
func (cd *ConditionalDimension) Subs(m SubsMap) Expr {
	if r, ok := m[Expr(cd)]; ok {
		return r
	}

	return cd
}

// Eval resolves to the conditional dimension's own binding when present and
// falls back to the underlying index symbol otherwise.
func (cd *ConditionalDimension) Eval(env *Env) (float64, error) {
	if v, ok := env.Value(cd); ok {
		return v, nil
	}

	return cd.index.Eval(env)
}

// Operands returns no children: the guard and parent are structural
// attributes, not sub-expressions of the index value.
func (cd *ConditionalDimension) Operands() []Expr { return nil }

// String returns the dimension name.
func (cd *ConditionalDimension) String() string { return cd.name }
