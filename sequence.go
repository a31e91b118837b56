package tristate

// Bools is a caller-owned sequence of two-valued booleans.
type Bools []bool

// Values is a caller-owned sequence of tri-state values.
type Values []Value

// totality resolves the two flags of an all-false/all-true scan.
// Both flags set means the scan saw no decisive element.
func totality(areFalse, areTrue bool) Value {
	switch {
	case areFalse == areTrue:
		return Unknown
	case areFalse:
		return False
	default:
		return True
	}
}

// TriTotality returns True when every element is true, False when every
// element is false, and Unknown when the sequence is mixed or empty.
func (s Bools) TriTotality() Value {
	areFalse, areTrue := true, true
	for _, b := range s {
		if b {
			areFalse = false
		} else {
			areTrue = false
		}
	}
	return totality(areFalse, areTrue)
}

// Totality reports the common value of a uniform, non-empty sequence.
// For a mixed or empty sequence ok is false and the caller keeps its default.
func (s Bools) Totality() (b bool, ok bool) {
	return ToBool(s.TriTotality())
}

// SetTotality overwrites every element with b.
func (s Bools) SetTotality(b bool) {
	for i := range s {
		s[i] = b
	}
}

// SetTriTotality overwrites every element with the boolean form of v.
// Unknown has no boolean form, so it leaves s unchanged.
func (s Bools) SetTriTotality(v Value) {
	if b, ok := ToBool(v); ok {
		s.SetTotality(b)
	}
}

// TriTotality returns True when no element is false and at least one is true,
// False when no element is true and at least one is false, and Unknown
// otherwise. Unknown elements count as neither, so an empty, mixed or
// all-unknown sequence is Unknown.
func (s Values) TriTotality() Value {
	areFalse, areTrue := true, true
	for _, v := range s {
		assertValid("totality", v)
		if v < 0 {
			areTrue = false
		} else if v > 0 {
			areFalse = false
		}
	}
	return totality(areFalse, areTrue)
}

// Totality is the boolean form of TriTotality. ok is false when the
// totality is Unknown.
func (s Values) Totality() (b bool, ok bool) {
	return ToBool(s.TriTotality())
}

// SetTotality overwrites every element with FromBool(b).
func (s Values) SetTotality(b bool) {
	s.ResetTriTotality(FromBool(b))
}

// SetTriTotality overwrites every element with v, unless v is Unknown.
func (s Values) SetTriTotality(v Value) {
	assertValid("set totality", v)
	if v == Unknown {
		return
	}
	s.ResetTriTotality(v)
}

// ResetTriTotality overwrites every element with v, Unknown included.
func (s Values) ResetTriTotality(v Value) {
	assertValid("reset totality", v)
	for i := range s {
		s[i] = v
	}
}
