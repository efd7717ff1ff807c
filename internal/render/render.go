// Package render turns a UI plan into an HTML tree.
//
// Plans come from a language model and are untrusted: unknown component types
// become a visible placeholder, and event handler or script URL attributes
// are dropped.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

const (
	MsgNoPlan      = "No valid UI plan received"
	MsgEmptyLayout = "AI returned empty layout"

	unknownStyle = "color: red; border: 1px solid red; padding: 8px"
)

// UnresolvedComponentError describes a node whose type has no implementation.
// It is reported to the unresolved hook, never returned.
type UnresolvedComponentError struct {
	Type string
}

func (e UnresolvedComponentError) Error() string {
	return fmt.Sprintf("render: unresolved component %q", e.Type)
}

// Renderer builds HTML nodes from plan nodes. It is safe for concurrent use.
type Renderer struct {
	registry     *Registry
	onUnresolved func(UnresolvedComponentError)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithUnresolvedHook is called once per node that falls back to the
// placeholder.
func WithUnresolvedHook(fn func(UnresolvedComponentError)) Option {
	return func(r *Renderer) { r.onUnresolved = fn }
}

// New creates a Renderer. A nil registry resolves primitives only.
func New(reg *Registry, opts ...Option) *Renderer {
	r := &Renderer{registry: reg}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Node renders one plan node and its subtree.
func (r *Renderer) Node(n uischema.Node) *html.Node {
	if n.IsText() {
		return text(n.Text)
	}
	c := n.Component
	props := c.EffectiveProps()

	children := make([]*html.Node, 0, len(c.Children))
	typ := uischema.ComponentType(c.Type)

	if typ.Primitive() {
		for _, child := range c.Children {
			children = append(children, r.Node(child))
		}
		a := atom.Lookup([]byte(c.Type))
		return element(a, Attributes(props), content(props, children)...)
	}

	impl, ok := r.registry.Lookup(typ)
	if !ok {
		if r.onUnresolved != nil {
			r.onUnresolved(UnresolvedComponentError{Type: c.Type})
		}
		return element(atom.Div, []html.Attribute{
			{Key: "class", Val: "uigen-unknown"},
			{Key: "style", Val: unknownStyle},
		}, text("Unknown component: "+c.Type))
	}

	for _, child := range c.Children {
		children = append(children, r.Node(child))
	}
	return impl(props, children)
}

// Plan renders a whole plan into a scrollable container, or a message when
// there is nothing to render.
func (r *Renderer) Plan(plan *uischema.UIPlan) *html.Node {
	if plan == nil || plan.Components == nil {
		return element(atom.Div, classAttr("uigen-empty"), text(MsgNoPlan))
	}
	if len(plan.Components) == 0 {
		return element(atom.Div, classAttr("uigen-empty"), text(MsgEmptyLayout))
	}
	root := element(atom.Div, []html.Attribute{
		{Key: "class", Val: "uigen-preview"},
		{Key: "style", Val: "overflow: auto"},
	})
	for _, n := range plan.Components {
		root.AppendChild(r.Node(n))
	}
	return root
}

// HTML renders a plan and serialises it.
func (r *Renderer) HTML(plan *uischema.UIPlan) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, r.Plan(plan)); err != nil {
		return "", fmt.Errorf("render: serialise: %w", err)
	}
	return b.String(), nil
}
