package uischema

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

var errNotNode = errors.New("node must be a string or an object")

func (n Node) MarshalJSON() ([]byte, error) {
	if n.Component == nil {
		return []byte(quote(n.Text)), nil
	}
	return n.Component.MarshalJSON()
}

func (n *Node) UnmarshalJSON(data []byte) error {
	raw, dt, _, err := jsonparser.Get(data)
	if err != nil {
		return fmt.Errorf("uischema: parse node: %w", err)
	}
	node, err := nodeOf(raw, dt)
	if err != nil {
		return err
	}
	*n = node
	return nil
}

func nodeOf(raw []byte, dt jsonparser.ValueType) (Node, error) {
	switch dt {
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return Node{}, fmt.Errorf("uischema: parse text node: %w", err)
		}
		return Text(s), nil
	case jsonparser.Object:
		c, err := decodeComponent(raw)
		if err != nil {
			return Node{}, err
		}
		return Node{Component: c}, nil
	}
	return Node{}, fmt.Errorf("uischema: %w, got %s", errNotNode, dt)
}

func (c ComponentNode) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	buf.WriteString(quote(c.Type))
	if c.Props != nil {
		props, _ := c.Props.MarshalJSON()
		buf.WriteString(`,"props":`)
		buf.Write(props)
	}
	for _, prop := range c.Rest {
		buf.WriteByte(',')
		buf.WriteString(quote(prop.Key))
		buf.WriteByte(':')
		buf.WriteString(prop.Value.JSON())
	}
	if c.Children != nil {
		buf.WriteString(`,"children":[`)
		for i, child := range c.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := child.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *ComponentNode) UnmarshalJSON(data []byte) error {
	decoded, err := decodeComponent(data)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}

func decodeComponent(data []byte) (*ComponentNode, error) {
	c := &ComponentNode{}
	var hasType bool
	err := jsonparser.ObjectEach(data, func(key, raw []byte, dt jsonparser.ValueType, _ int) error {
		switch string(key) {
		case "type":
			if dt != jsonparser.String {
				return fmt.Errorf("type must be a string, got %s", dt)
			}
			s, err := jsonparser.ParseString(raw)
			if err != nil {
				return err
			}
			c.Type, hasType = s, true
		case "props":
			switch dt {
			case jsonparser.Null:
				c.Props = nil
			case jsonparser.Object:
				props, err := decodeProps(raw)
				if err != nil {
					return err
				}
				c.Props = props
			default:
				return fmt.Errorf("props must be an object, got %s", dt)
			}
		case "children":
			children, err := decodeChildren(raw, dt)
			if err != nil {
				return err
			}
			c.Children = children
		default:
			v, err := valueOf(raw, dt)
			if err != nil {
				return fmt.Errorf("field %q: %w", key, err)
			}
			c.Rest = c.Rest.Set(string(key), v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("uischema: parse component: %w", err)
	}
	if !hasType {
		return nil, fmt.Errorf("uischema: parse component: missing type")
	}
	return c, nil
}

func decodeChildren(raw []byte, dt jsonparser.ValueType) ([]Node, error) {
	switch dt {
	case jsonparser.Null:
		return nil, nil
	case jsonparser.Array:
	default:
		return nil, fmt.Errorf("children must be an array, got %s", dt)
	}
	children := []Node{}
	var childErr error
	_, err := jsonparser.ArrayEach(raw, func(item []byte, dt jsonparser.ValueType, _ int, err error) {
		if childErr != nil {
			return
		}
		if err != nil {
			childErr = err
			return
		}
		child, err := nodeOf(item, dt)
		if err != nil {
			childErr = fmt.Errorf("child %d: %w", len(children), err)
			return
		}
		children = append(children, child)
	})
	if err != nil {
		return nil, err
	}
	return children, childErr
}
