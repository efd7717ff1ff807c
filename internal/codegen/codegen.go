// Package codegen prints a UI plan as JSX-like markup for display.
package codegen

import (
	"strings"

	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

// InitialCode is shown in place of generated code before the first plan.
const InitialCode = "// Ready to generate UI..."

// Plan stringifies the plan's components.
func Plan(plan uischema.UIPlan) string {
	return Stringify(plan.Components)
}

// Stringify renders top-level nodes joined by newlines. Output depends only on
// the input. Attributes come from each node's explicit props field; sibling
// attributes are not printed.
func Stringify(components []uischema.Node) string {
	parts := make([]string, len(components))
	for i, n := range components {
		var b strings.Builder
		writeNode(&b, n, 0)
		parts[i] = b.String()
	}
	return strings.Join(parts, "\n")
}

func writeNode(b *strings.Builder, n uischema.Node, depth int) {
	if n.IsText() {
		b.WriteString(`"` + n.Text + `"`)
		return
	}
	c := n.Component
	indent := strings.Repeat("  ", depth)

	b.WriteString("\n" + indent + "<" + c.Type + " " + attrs(c.Props))
	if len(c.Children) == 0 {
		b.WriteString(" />")
		return
	}
	b.WriteString(">")
	for _, child := range c.Children {
		writeNode(b, child, depth+1)
	}
	b.WriteString("\n" + indent + "</" + c.Type + ">")
}

func attrs(props uischema.Props) string {
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = attr(p.Key, p.Value)
	}
	return strings.Join(parts, " ")
}

func attr(key string, v uischema.Value) string {
	if key == "style" {
		return "style={" + v.JSON() + "}"
	}
	switch v.Kind() {
	case uischema.KindString:
		return key + `="` + v.Str() + `"`
	case uischema.KindBool:
		if v.Bool() {
			return key
		}
		return ""
	case uischema.KindNull, uischema.KindNumber, uischema.KindObject, uischema.KindArray:
		return key + "={" + v.JSON() + "}"
	}
	return ""
}
