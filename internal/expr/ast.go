package expr

import "github.com/katahiromz/tristate"

// Node is a parsed expression.
type Node interface {
	// Eval computes the value of the expression. Right operands of and/or
	// are not evaluated once the left operand decides the result.
	Eval() tristate.Value
	// String renders the expression fully parenthesized.
	String() string
}

// Literal is a constant value.
type Literal struct {
	Value tristate.Value
}

func (n *Literal) Eval() tristate.Value { return n.Value }
func (n *Literal) String() string       { return n.Value.String() }

// NotExpr negates its operand.
type NotExpr struct {
	X Node
}

func (n *NotExpr) Eval() tristate.Value { return tristate.Not(n.X.Eval()) }
func (n *NotExpr) String() string       { return "not " + n.X.String() }

// AndExpr is the K3 conjunction of two expressions.
type AndExpr struct {
	L, R Node
}

func (n *AndExpr) Eval() tristate.Value { return tristate.AndThen(n.L.Eval(), n.R.Eval) }
func (n *AndExpr) String() string       { return "(" + n.L.String() + " and " + n.R.String() + ")" }

// OrExpr is the K3 disjunction of two expressions.
type OrExpr struct {
	L, R Node
}

func (n *OrExpr) Eval() tristate.Value { return tristate.OrElse(n.L.Eval(), n.R.Eval) }
func (n *OrExpr) String() string       { return "(" + n.L.String() + " or " + n.R.String() + ")" }
