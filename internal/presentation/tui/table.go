package tui

import (
	"fmt"
	"strings"

	"github.com/katahiromz/tristate"
)

// Operand order of truth table rows and columns.
var tableOrder = []tristate.Value{tristate.True, tristate.Unknown, tristate.False}

// TruthTableMarkdown returns the table of op ("and", "or" or "not") as markdown.
func TruthTableMarkdown(op string) (string, error) {
	var sb strings.Builder
	switch op {
	case "not":
		sb.WriteString("| NOT | |\n|---|---|\n")
		for _, v := range tableOrder {
			fmt.Fprintf(&sb, "| %s | %s |\n", v, tristate.Not(v))
		}
	case "and", "or":
		fn := tristate.And
		if op == "or" {
			fn = tristate.Or
		}
		fmt.Fprintf(&sb, "| %s |", strings.ToUpper(op))
		for _, b := range tableOrder {
			fmt.Fprintf(&sb, " %s |", b)
		}
		sb.WriteString("\n|---|---|---|---|\n")
		for _, a := range tableOrder {
			fmt.Fprintf(&sb, "| %s |", a)
			for _, b := range tableOrder {
				fmt.Fprintf(&sb, " %s |", fn(a, b))
			}
			sb.WriteString("\n")
		}
	default:
		return "", fmt.Errorf("unknown operator %q (want and, or, not)", op)
	}
	return sb.String(), nil
}

// TruthTable returns the table of op as aligned, colored plain text.
func (r *Renderer) TruthTable(op string) (string, error) {
	const width = 8
	pad := func(v tristate.Value) string {
		return r.Value(v) + strings.Repeat(" ", width-len(v.String()))
	}

	var sb strings.Builder
	switch op {
	case "not":
		for _, v := range tableOrder {
			fmt.Fprintf(&sb, "not %s-> %s\n", pad(v), r.Value(tristate.Not(v)))
		}
	case "and", "or":
		fn := tristate.And
		if op == "or" {
			fn = tristate.Or
		}
		fmt.Fprintf(&sb, "%-*s", width, op)
		for _, b := range tableOrder {
			sb.WriteString(pad(b))
		}
		sb.WriteString("\n")
		for _, a := range tableOrder {
			sb.WriteString(pad(a))
			for _, b := range tableOrder {
				sb.WriteString(pad(fn(a, b)))
			}
			sb.WriteString("\n")
		}
	default:
		return "", fmt.Errorf("unknown operator %q (want and, or, not)", op)
	}
	return sb.String(), nil
}
