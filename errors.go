package tristate

import (
	"errors"
	"fmt"
)

// ErrUnrecognized is returned when text is not one of the value literals.
var ErrUnrecognized = errors.New("unrecognized tri-state literal")

// ErrInvalidValue signals a Value outside {False, Unknown, True}.
var ErrInvalidValue = errors.New("invalid tri-state value")

// ErrLengthMismatch signals parallel sequences of different lengths.
var ErrLengthMismatch = errors.New("sequence length mismatch")

// ParseError reports text that could not be converted to a Value.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tristate: parse %q: %s", e.Input, ErrUnrecognized.Error())
}

func (e *ParseError) Unwrap() error { return ErrUnrecognized }

// ContractError describes a programmer error caught by a strict build or by Check.
type ContractError struct {
	Op    string // Operation that received the input
	Value Value  // Offending value, meaningful when Err is ErrInvalidValue
	Err   error  // ErrInvalidValue or ErrLengthMismatch
}

func (e *ContractError) Error() string {
	if errors.Is(e.Err, ErrInvalidValue) {
		return fmt.Sprintf("tristate: %s: %s %d", e.Op, e.Err.Error(), int(e.Value))
	}
	return fmt.Sprintf("tristate: %s: %s", e.Op, e.Err.Error())
}

func (e *ContractError) Unwrap() error { return e.Err }
