// Package uischema defines the UI plan contract produced by the language model.
// The renderer, the code generator and the explainer all read the same plan;
// none of them mutates it.
package uischema

// ModificationType tells the client whether a plan replaces or amends the
// current screen.
type ModificationType string

const (
	ModificationCreate ModificationType = "create"
	ModificationUpdate ModificationType = "update"
)

func (m ModificationType) Valid() bool {
	switch m {
	case ModificationCreate, ModificationUpdate:
		return true
	}
	return false
}

// Layout values the model is asked to choose from.
const (
	LayoutDefault     = "default"
	LayoutSidebarMain = "sidebar-main"
	LayoutCentered    = "centered"
	LayoutModal       = "modal"
	LayoutBlank       = "blank"
)

// UIPlan is one complete, self-contained render instruction.
type UIPlan struct {
	Layout           string           `json:"layout" validate:"required"`
	ModificationType ModificationType `json:"modificationType,omitempty" validate:"omitempty,oneof=create update"`
	Components       []Node           `json:"components"`
}

// Node is either a text leaf or a component element.
type Node struct {
	Text      string
	Component *ComponentNode
}

// Text returns a text leaf.
func Text(s string) Node {
	return Node{Text: s}
}

// Element returns a component node with explicit props.
func Element(typ string, props Props, children ...Node) Node {
	return Node{Component: &ComponentNode{Type: typ, Props: props, Children: children}}
}

// IsText reports whether the node is a plain string.
func (n Node) IsText() bool {
	return n.Component == nil
}

// ComponentNode is one renderable element.
//
// Attributes may be nested under an explicit "props" field or written as
// siblings of "type" and "children". Props holds the former (nil when the
// field is absent or null), Rest the latter, both in source order.
type ComponentNode struct {
	Type     string
	Props    Props
	Rest     Props
	Children []Node
}

// EffectiveProps returns the attributes the node renders with: the explicit
// props when present, otherwise the sibling fields.
func (c *ComponentNode) EffectiveProps() Props {
	if c.Props != nil {
		return c.Props
	}
	return c.Rest
}

// GenerationResult is a snapshot of one generation cycle.
type GenerationResult struct {
	Plan        UIPlan `json:"plan"`
	Code        string `json:"code"`
	Explanation string `json:"explanation"`
	// Timestamp is in unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}
