package uischema

import "strings"

// ComponentType identifies a tag the model is allowed to emit.
type ComponentType string

const (
	ComponentButton  ComponentType = "Button"
	ComponentCard    ComponentType = "Card"
	ComponentInput   ComponentType = "Input"
	ComponentSidebar ComponentType = "Sidebar"
	ComponentModal   ComponentType = "Modal"
	ComponentNavbar  ComponentType = "Navbar"
	ComponentChart   ComponentType = "Chart"
	ComponentTable   ComponentType = "Table"

	PrimitiveDiv  ComponentType = "div"
	PrimitiveSpan ComponentType = "span"
	PrimitiveH1   ComponentType = "h1"
	PrimitiveP    ComponentType = "p"
)

// AllowedTypes is the closed tag list, in the order the system prompt lists it.
var AllowedTypes = []ComponentType{
	ComponentButton,
	ComponentCard,
	ComponentInput,
	ComponentSidebar,
	ComponentModal,
	ComponentNavbar,
	ComponentChart,
	ComponentTable,
	PrimitiveDiv,
	PrimitiveSpan,
	PrimitiveH1,
	PrimitiveP,
}

// Valid reports whether t is one of AllowedTypes.
func (t ComponentType) Valid() bool {
	for _, a := range AllowedTypes {
		if a == t {
			return true
		}
	}
	return false
}

// Primitive reports whether t always maps to a built-in element.
func (t ComponentType) Primitive() bool {
	switch t {
	case PrimitiveDiv, PrimitiveSpan, PrimitiveH1, PrimitiveP:
		return true
	}
	return false
}

// AllowedTypeList renders AllowedTypes as "Button, Card, ...".
func AllowedTypeList() string {
	names := make([]string, len(AllowedTypes))
	for i, t := range AllowedTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
