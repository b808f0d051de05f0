package core

// Walk visits e and its descendants in pre-order, left to right. Returning
// false from fn skips the node's children. Complexity: O(nodes).
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil {
		return
	}
	if !fn(e) {
		return
	}
	for _, child := range e.Operands() {
		Walk(child, fn)
	}
}

// FieldAccesses returns every field access referenced in e, deduplicated by
// node identity, in first-appearance (pre-order) order. This is the operand
// enumeration the interpolation engine builds its substitutions from.
func FieldAccesses(e Expr) []*FieldAccess {
	seen := make(map[*FieldAccess]bool)
	var out []*FieldAccess
	Walk(e, func(x Expr) bool {
		if a, ok := x.(*FieldAccess); ok {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}

		return true
	})

	return out
}

// ConditionalDims returns every conditional dimension referenced in e,
// deduplicated by node identity, in first-appearance order.
func ConditionalDims(e Expr) []*ConditionalDimension {
	seen := make(map[*ConditionalDimension]bool)
	var out []*ConditionalDimension
	Walk(e, func(x Expr) bool {
		if cd, ok := x.(*ConditionalDimension); ok {
			if !seen[cd] {
				seen[cd] = true
				out = append(out, cd)
			}
		}

		return true
	})

	return out
}
