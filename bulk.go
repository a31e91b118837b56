package tristate

// ToValues writes FromBool of each element into dst and returns the number
// of elements converted, the shorter of the two lengths.
func (s Bools) ToValues(dst []Value) int {
	assertSameLen("bools to values", len(s), len(dst))
	n := min(len(s), len(dst))
	for i := range n {
		dst[i] = FromBool(s[i])
	}
	return n
}

// ToBools writes the boolean form of each element into dst. Unknown elements
// leave dst untouched at their index. It returns the number of elements
// visited, the shorter of the two lengths.
func (s Values) ToBools(dst []bool) int {
	assertSameLen("values to bools", len(s), len(dst))
	n := min(len(s), len(dst))
	for i := range n {
		if b, ok := ToBool(s[i]); ok {
			dst[i] = b
		}
	}
	return n
}

// ToBoolsDefault is ToBools with def written for Unknown elements.
func (s Values) ToBoolsDefault(dst []bool, def bool) int {
	assertSameLen("values to bools", len(s), len(dst))
	n := min(len(s), len(dst))
	for i := range n {
		dst[i] = ToBoolDefault(s[i], def)
	}
	return n
}
