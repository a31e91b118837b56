package graph

import (
	"fmt"
	"strings"

	"github.com/katahiromz/tristate"
	"github.com/katahiromz/tristate/internal/expr"
)

// GenerateMermaid produces a Mermaid flowchart of an expression tree.
// It applies semantic styling:
// - Literal: ([Stadium])
// - Not: [/Parallelogram/]
// - And / Or: {{Hexagon}}
// When trace is non-nil each evaluated node is styled by its value and nodes
// skipped by short-circuiting are styled as skipped.
func GenerateMermaid(root expr.Node, trace map[expr.Node]tristate.Value) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	ids := make(map[expr.Node]string)
	var order []expr.Node
	var walk func(n expr.Node)
	walk = func(n expr.Node) {
		id := fmt.Sprintf("n%d", len(order))
		ids[n] = id
		order = append(order, n)

		opener, closer := "{{", "}}"
		switch n.(type) {
		case *expr.Literal:
			opener, closer = "([", "])"
		case *expr.NotExpr:
			opener, closer = "[/", "/]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, expr.Label(n), closer))

		for _, child := range expr.Children(n) {
			walk(child)
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", id, ids[child]))
		}
	}
	walk(root)

	// Apply Overlay Styles
	if trace != nil {
		sb.WriteString("\n    %% Evaluation Overlay\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef valTrue fill:#c8e6c9,stroke:#2e7d32,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef valFalse fill:#ffcdd2,stroke:#c62828,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef valUnknown fill:#fff9c4,stroke:#f9a825,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef skipped fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4 4,color:#666;\n")

		for _, n := range order {
			class := "skipped"
			if v, ok := trace[n]; ok {
				class = styleClass(v)
			}
			sb.WriteString(fmt.Sprintf("    class %s %s;\n", ids[n], class))
		}
	}

	return sb.String()
}

func styleClass(v tristate.Value) string {
	switch v {
	case tristate.True:
		return "valTrue"
	case tristate.False:
		return "valFalse"
	}
	return "valUnknown"
}
