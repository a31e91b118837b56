package tristate

// FromBool returns True for true and False for false.
func FromBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// ToBool converts v to a bool.
// For Unknown it returns ok=false and the bool carries no decision.
func ToBool(v Value) (b bool, ok bool) {
	assertValid("to bool", v)
	switch {
	case v < 0:
		return false, true
	case v > 0:
		return true, true
	default:
		return false, false
	}
}

// ToBoolDefault converts v to a bool, using def for Unknown.
func ToBoolDefault(v Value, def bool) bool {
	if b, ok := ToBool(v); ok {
		return b
	}
	return def
}

// FromString parses one of "false", "true" or "unknown".
// Matching is exact and case-sensitive. Any other text yields (Unknown, false).
func FromString(s string) (Value, bool) {
	switch s {
	case literalFalse:
		return False, true
	case literalTrue:
		return True, true
	case literalUnknown:
		return Unknown, true
	}
	return Unknown, false
}

// FromWideString is FromString over wide characters.
func FromWideString(s []rune) (Value, bool) {
	switch {
	case equalRunes(s, literalFalse):
		return False, true
	case equalRunes(s, literalTrue):
		return True, true
	case equalRunes(s, literalUnknown):
		return Unknown, true
	}
	return Unknown, false
}

func equalRunes(s []rune, lit string) bool {
	if len(s) != len(lit) {
		return false
	}
	for i, r := range s {
		if r != rune(lit[i]) {
			return false
		}
	}
	return true
}

// Parse is FromString reporting unrecognized text as a *ParseError.
func Parse(s string) (Value, error) {
	v, ok := FromString(s)
	if !ok {
		return Unknown, &ParseError{Input: s}
	}
	return v, nil
}

// MustParse is like Parse but panics on unrecognized text.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ToString returns the literal for v, choosing by sign.
func ToString(v Value) string {
	assertValid("to string", v)
	switch {
	case v < 0:
		return literalFalse
	case v > 0:
		return literalTrue
	default:
		return literalUnknown
	}
}

// ToWideString returns the literal for v as wide characters.
// The result is freshly allocated and owned by the caller.
func ToWideString(v Value) []rune {
	return []rune(ToString(v))
}

// FromInt maps the sign of n: negative is False, zero Unknown, positive True.
func FromInt(n int) Value {
	switch {
	case n < 0:
		return False
	case n > 0:
		return True
	default:
		return Unknown
	}
}

// ToInt returns -1, 0 or 1.
func ToInt(v Value) int {
	assertValid("to int", v)
	return v.Rank()
}
