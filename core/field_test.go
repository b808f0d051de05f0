package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencilkit/sparsegen/core"
)

// TestField_AccessAndString covers canonical and explicit accesses plus the
// rendered form.
func TestField_AccessAndString(t *testing.T) {
	x := core.NewDimension("x")
	y := core.NewDimension("y")
	u := core.NewField("u", x, y)

	assert.Equal(t, 2, u.Rank())
	assert.Equal(t, "u[x, y]", u.Access().String())
	assert.Equal(t, "u[(x + 1), y]", u.At(core.Add(x, core.Num(1)), y).String())

	assert.Panics(t, func() { u.At(x) }, "index count must match rank")
}

// TestField_Origin verifies the default zero origin and an explicit
// half-spacing stagger.
func TestField_Origin(t *testing.T) {
	x := core.NewDimension("x")
	u := core.NewField("u", x)

	assert.Equal(t, "0", u.Origin(x).String(), "default origin is 0")

	u.SetOrigin(x, core.Div(x.Spacing(), core.Num(2)))
	assert.Equal(t, "(h_x / 2)", u.Origin(x).String())
}

// TestFieldAccess_Subs checks both substitution paths: whole-access
// replacement by identity, and index rewriting through dimension keys.
func TestFieldAccess_Subs(t *testing.T) {
	x := core.NewDimension("x")
	u := core.NewField("u", x)
	acc := u.Access()

	// Dimension key rewrites the index in place.
	byDim := acc.Subs(core.SubsMap{x: core.Num(3)})
	assert.Equal(t, "u[3]", byDim.String())

	// Whole-access key substitutes the node itself.
	byNode := core.Add(acc, core.Num(1)).Subs(core.SubsMap{acc: core.Num(9)})
	assert.Equal(t, "(9 + 1)", byNode.String())

	// The original access is untouched.
	assert.Equal(t, "u[x]", acc.String())
}

// TestFieldAccess_Eval rounds index expressions and loads through the Env.
func TestFieldAccess_Eval(t *testing.T) {
	x := core.NewDimension("x")
	u := core.NewField("u", x)
	data := []float64{10, 20, 30}

	env := core.NewEnv().Set(x, 1).BindField(u, func(idx []int) (float64, error) {
		return data[idx[0]], nil
	})

	got, err := u.Access().Eval(env)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, got, 0)

	// Unbound field errors.
	v := core.NewField("v", x)
	_, err = v.Access().Eval(env)
	assert.ErrorIs(t, err, core.ErrUnboundField)
}

// TestEquation_RenderAndConditionals locks equation rendering and the
// conditional-dimension collection used by guard-aware consumers.
func TestEquation_RenderAndConditionals(t *testing.T) {
	x := core.NewDimension("x")
	u := core.NewField("u", x)
	p := core.NewSymbol("ii_src_x_0")
	cd := core.NewConditionalDimension(p, x, core.Ge(p, core.Num(0)), true)

	sum := core.NewSymbol("sum")
	eq := core.Assign(sum, core.Num(0))
	assert.Equal(t, "sum = 0", eq.String())
	assert.Empty(t, eq.Conditionals())
	assert.False(t, eq.Reduction)

	inc := core.Increment(sum, u.At(cd))
	assert.Equal(t, "sum += u[ii_src_x_0]", inc.String())
	assert.True(t, inc.Reduction, "increments are reduction-tagged")
	require.Len(t, inc.Conditionals(), 1)
	assert.Same(t, cd, inc.Conditionals()[0])
}

// TestWalk_FieldAccesses verifies ordered, deduplicated operand enumeration.
func TestWalk_FieldAccesses(t *testing.T) {
	x := core.NewDimension("x")
	u := core.NewField("u", x)
	v := core.NewField("v", x)
	ua := u.Access()
	va := v.Access()

	expr := core.Add(core.Mul(ua, core.Num(2)), va, ua)
	got := core.FieldAccesses(expr)

	require.Len(t, got, 2, "duplicate node appears once")
	assert.Same(t, ua, got[0])
	assert.Same(t, va, got[1])
}
