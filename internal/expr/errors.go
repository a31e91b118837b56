package expr

import "fmt"

// SyntaxError reports malformed expression text.
type SyntaxError struct {
	Pos int    // Byte offset of the offending token
	Msg string // Human-readable reason
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}
