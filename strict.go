package tristate

// Check returns a *ContractError wrapping ErrInvalidValue when v is out of range.
// It is available in every build, for callers validating untrusted input.
func Check(v Value) error {
	if v.IsValid() {
		return nil
	}
	return &ContractError{Op: "check", Value: v, Err: ErrInvalidValue}
}

func assertValid(op string, v Value) {
	if Strict && !v.IsValid() {
		panic(&ContractError{Op: op, Value: v, Err: ErrInvalidValue})
	}
}

func assertValid2(op string, a, b Value) {
	assertValid(op, a)
	assertValid(op, b)
}

func assertSameLen(op string, a, b int) {
	if Strict && a != b {
		panic(&ContractError{Op: op, Err: ErrLengthMismatch})
	}
}
