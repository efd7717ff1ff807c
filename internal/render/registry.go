package render

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

// Component builds the element for one plan node. children are already
// rendered and detached; the component decides where they go.
type Component func(props uischema.Props, children []*html.Node) *html.Node

// Registry maps component types to their implementations. It is read-only
// after construction.
type Registry struct {
	components map[uischema.ComponentType]Component
}

// NewRegistry validates the keys against the allowed component list.
// Primitives cannot be overridden.
func NewRegistry(components map[uischema.ComponentType]Component) (*Registry, error) {
	reg := &Registry{components: make(map[uischema.ComponentType]Component, len(components))}
	for t, c := range components {
		if !t.Valid() {
			return nil, fmt.Errorf("render: %q is not an allowed component type", t)
		}
		if t.Primitive() {
			return nil, fmt.Errorf("render: %q is a primitive and cannot be registered", t)
		}
		if c == nil {
			return nil, fmt.Errorf("render: nil component for %q", t)
		}
		reg.components[t] = c
	}
	return reg, nil
}

// Lookup returns the component registered for t.
func (r *Registry) Lookup(t uischema.ComponentType) (Component, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.components[t]
	return c, ok
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.components)
}

// DefaultRegistry returns the built-in component set.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(map[uischema.ComponentType]Component{
		uischema.ComponentButton:  Button,
		uischema.ComponentCard:    Card,
		uischema.ComponentInput:   Input,
		uischema.ComponentSidebar: Sidebar,
		uischema.ComponentModal:   Modal,
		uischema.ComponentNavbar:  Navbar,
		uischema.ComponentChart:   Chart,
		uischema.ComponentTable:   Table,
	})
	if err != nil {
		panic(err)
	}
	return reg
}
