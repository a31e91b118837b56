package tristate

// EachAnd replaces every element e with e && b.
func (s Bools) EachAnd(b bool) {
	if b {
		return
	}
	s.SetTotality(false)
}

// EachOr replaces every element e with e || b.
func (s Bools) EachOr(b bool) {
	if !b {
		return
	}
	s.SetTotality(true)
}

// EachNot negates every element.
func (s Bools) EachNot() {
	for i, b := range s {
		s[i] = !b
	}
}

// EachAnd replaces every element e with And(e, v).
// False is broadcast without reading the elements and True is a no-op.
func (s Values) EachAnd(v Value) {
	assertValid("each and", v)
	switch {
	case v > 0:
		return
	case v < 0:
		s.ResetTriTotality(False)
		return
	}
	for i, e := range s {
		s[i] = And(e, v)
	}
}

// EachOr replaces every element e with Or(e, v).
// True is broadcast without reading the elements and False is a no-op.
func (s Values) EachOr(v Value) {
	assertValid("each or", v)
	switch {
	case v < 0:
		return
	case v > 0:
		s.ResetTriTotality(True)
		return
	}
	for i, e := range s {
		s[i] = Or(e, v)
	}
}

// EachNot negates every element.
func (s Values) EachNot() {
	for i, e := range s {
		s[i] = Not(e)
	}
}
