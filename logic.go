package tristate

// And returns the Kleene conjunction of a and b.
//
// A False left operand decides the result. Otherwise a True left operand or a
// False right operand yields b, and anything else is Unknown.
func And(a, b Value) Value {
	assertValid2("and", a, b)
	if a < 0 {
		return a
	}
	if a > 0 || b < 0 {
		return b
	}
	return Unknown
}

// Or returns the Kleene disjunction of a and b.
//
// A True left operand decides the result. Otherwise a False left operand or a
// True right operand yields b, and anything else is Unknown.
func Or(a, b Value) Value {
	assertValid2("or", a, b)
	if a > 0 {
		return a
	}
	if a < 0 || b > 0 {
		return b
	}
	return Unknown
}

// Not swaps True and False and keeps Unknown.
func Not(v Value) Value {
	assertValid("not", v)
	return -v
}

// AndThen is And with a lazily computed right operand.
// b is not called when a is False.
func AndThen(a Value, b func() Value) Value {
	assertValid("and", a)
	if a < 0 {
		return a
	}
	return And(a, b())
}

// OrElse is Or with a lazily computed right operand.
// b is not called when a is True.
func OrElse(a Value, b func() Value) Value {
	assertValid("or", a)
	if a > 0 {
		return a
	}
	return Or(a, b())
}

// And returns And(v, w).
func (v Value) And(w Value) Value { return And(v, w) }

// Or returns Or(v, w).
func (v Value) Or(w Value) Value { return Or(v, w) }

// Not returns Not(v).
func (v Value) Not() Value { return Not(v) }

// BoolAnd is two-valued conjunction.
func BoolAnd(a, b bool) bool { return a && b }

// BoolOr is two-valued disjunction.
func BoolOr(a, b bool) bool { return a || b }

// BoolNot is two-valued negation.
func BoolNot(b bool) bool { return !b }
