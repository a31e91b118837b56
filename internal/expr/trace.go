package expr

import "github.com/katahiromz/tristate"

// Trace evaluates n like Eval and returns the value of every node that was
// actually evaluated. Operands skipped by short-circuiting are absent.
func Trace(n Node) (tristate.Value, map[Node]tristate.Value) {
	seen := make(map[Node]tristate.Value)
	var eval func(Node) tristate.Value
	eval = func(n Node) tristate.Value {
		var v tristate.Value
		switch n := n.(type) {
		case *Literal:
			v = n.Value
		case *NotExpr:
			v = tristate.Not(eval(n.X))
		case *AndExpr:
			v = tristate.AndThen(eval(n.L), func() tristate.Value { return eval(n.R) })
		case *OrExpr:
			v = tristate.OrElse(eval(n.L), func() tristate.Value { return eval(n.R) })
		default:
			v = n.Eval()
		}
		seen[n] = v
		return v
	}
	return eval(n), seen
}

// Children returns the operands of n in evaluation order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *NotExpr:
		return []Node{n.X}
	case *AndExpr:
		return []Node{n.L, n.R}
	case *OrExpr:
		return []Node{n.L, n.R}
	}
	return nil
}

// Label is the operator name of n, or its literal text.
func Label(n Node) string {
	switch n.(type) {
	case *NotExpr:
		return "not"
	case *AndExpr:
		return "and"
	case *OrExpr:
		return "or"
	}
	return n.String()
}
