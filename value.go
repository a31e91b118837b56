package tristate

import "strconv"

// Value is a three-valued truth value.
// The zero value is Unknown.
type Value int8

const (
	// False is the negative truth value.
	False Value = -1
	// Unknown is neither true nor false.
	Unknown Value = 0
	// True is the positive truth value.
	True Value = 1
)

// Literals of the text grammar.
const (
	literalTrue    = "true"
	literalFalse   = "false"
	literalUnknown = "unknown"
)

// IsValid reports whether v is one of True, False or Unknown.
func IsValid(v Value) bool {
	switch v {
	case True, False, Unknown:
		return true
	default:
		return false
	}
}

// IsValid reports whether v is one of True, False or Unknown.
func (v Value) IsValid() bool { return IsValid(v) }

// IsValidBool reports whether its argument is a legal boolean.
// Go enforces two-valued booleans, so it is always true.
func IsValidBool(bool) bool { return true }

// Rank returns the sign of v: -1 for false, 0 for unknown and +1 for true.
func (v Value) Rank() int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// IsTrue reports whether v is True.
func (v Value) IsTrue() bool { return v == True }

// IsFalse reports whether v is False.
func (v Value) IsFalse() bool { return v == False }

// IsUnknown reports whether v is Unknown.
func (v Value) IsUnknown() bool { return v == Unknown }

// String returns "true", "false" or "unknown".
// Invalid values render as Value(n).
func (v Value) String() string {
	switch v {
	case True:
		return literalTrue
	case False:
		return literalFalse
	case Unknown:
		return literalUnknown
	default:
		return "Value(" + strconv.Itoa(int(v)) + ")"
	}
}
