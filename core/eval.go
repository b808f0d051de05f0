package core

import "fmt"

// FieldLoader resolves a field value at integer indices during Eval.
type FieldLoader func(idx []int) (float64, error)

// Env carries the numeric bindings Eval resolves against: per-node symbol
// values and per-field load callbacks. Env evaluates expressions only; loop
// execution of generated equation lists is the downstream compiler's job.
//
// Bindings are keyed by node identity, matching SubsMap semantics.
type Env struct {
	vals    map[Expr]float64
	loaders map[*Field]FieldLoader
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{
		vals:    make(map[Expr]float64),
		loaders: make(map[*Field]FieldLoader),
	}
}

// Set binds node x to value v, overwriting any previous binding.
// Returns the Env for chaining.
func (e *Env) Set(x Expr, v float64) *Env {
	if x == nil {
		panic(panicNilOperand)
	}
	e.vals[x] = v

	return e
}

// Unset removes the binding of x, if any.
func (e *Env) Unset(x Expr) {
	delete(e.vals, x)
}

// Value reports the binding of x.
func (e *Env) Value(x Expr) (float64, bool) {
	v, ok := e.vals[x]

	return v, ok
}

// BindField registers load as the resolver for accesses of f.
func (e *Env) BindField(f *Field, load FieldLoader) *Env {
	if f == nil || load == nil {
		panic(panicNilOperand)
	}
	e.loaders[f] = load

	return e
}

// load resolves f at idx through the registered loader.
func (e *Env) load(f *Field, idx []int) (float64, error) {
	loader, ok := e.loaders[f]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnboundField, f.Name())
	}

	return loader(idx)
}

// wrapUnbound decorates ErrUnboundSymbol with the symbol name.
func wrapUnbound(name string) error {
	return fmt.Errorf("%w: %s", ErrUnboundSymbol, name)
}
