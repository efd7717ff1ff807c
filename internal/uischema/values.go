package uischema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
)

// Kind is the JSON kind of a prop value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is a prop value. Objects and arrays are held decoded, with object
// keys in source order, so nested numbers re-encode the same way top-level
// ones do.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	obj  Props
	arr  []Value
}

// StringValue returns a string value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue returns a number value.
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// NullValue returns JSON null, the same as the zero Value.
func NullValue() Value { return Value{kind: KindNull} }

// ObjectValue returns an object value holding props.
func ObjectValue(props Props) Value {
	if props == nil {
		props = Props{}
	}
	return Value{kind: KindObject, obj: props}
}

// ArrayValue returns an array value holding items.
func ArrayValue(items []Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, arr: items}
}

// RawValue parses a single JSON value.
func RawValue(data []byte) (Value, error) {
	raw, dt, _, err := jsonparser.Get(data)
	if err != nil {
		return Value{}, fmt.Errorf("uischema: parse value: %w", err)
	}
	return valueOf(raw, dt)
}

// MustRawValue is RawValue for literals known to be valid.
func MustRawValue(data string) Value {
	v, err := RawValue([]byte(data))
	if err != nil {
		panic(err)
	}
	return v
}

func valueOf(raw []byte, dt jsonparser.ValueType) (Value, error) {
	switch dt {
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return Value{}, fmt.Errorf("uischema: parse string: %w", err)
		}
		return StringValue(s), nil
	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(raw)
		if err != nil {
			return Value{}, fmt.Errorf("uischema: parse number %q: %w", raw, err)
		}
		return NumberValue(f), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return Value{}, fmt.Errorf("uischema: parse boolean: %w", err)
		}
		return BoolValue(b), nil
	case jsonparser.Null:
		return NullValue(), nil
	case jsonparser.Object:
		props, err := decodeProps(raw)
		if err != nil {
			return Value{}, err
		}
		return ObjectValue(props), nil
	case jsonparser.Array:
		items, err := decodeArray(raw)
		if err != nil {
			return Value{}, err
		}
		return ArrayValue(items), nil
	}
	return Value{}, fmt.Errorf("uischema: unsupported value type %s", dt)
}

// Kind reports the JSON kind of v.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string of a string value, or "".
func (v Value) Str() string { return v.str }

// Number returns the number of a number value, or 0.
func (v Value) Number() float64 { return v.num }

// Bool returns the boolean of a boolean value, or false.
func (v Value) Bool() bool { return v.b }

// Object returns the entries of an object value in source order.
func (v Value) Object() (Props, error) {
	if v.kind != KindObject {
		return nil, fmt.Errorf("uischema: %s is not an object", v.kind)
	}
	return v.obj, nil
}

// Array returns the elements of an array value.
func (v Value) Array() ([]Value, error) {
	if v.kind != KindArray {
		return nil, fmt.Errorf("uischema: %s is not an array", v.kind)
	}
	return v.arr, nil
}

func decodeArray(data []byte) ([]Value, error) {
	var (
		out     = []Value{}
		itemErr error
	)
	_, err := jsonparser.ArrayEach(data, func(raw []byte, dt jsonparser.ValueType, _ int, err error) {
		if itemErr != nil {
			return
		}
		if err != nil {
			itemErr = err
			return
		}
		item, err := valueOf(raw, dt)
		if err != nil {
			itemErr = err
			return
		}
		out = append(out, item)
	})
	if err != nil {
		return nil, fmt.Errorf("uischema: parse array: %w", err)
	}
	if itemErr != nil {
		return nil, itemErr
	}
	return out, nil
}

// Text renders a scalar the way a browser turns it into text.
// Objects and arrays fall back to their JSON encoding.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNull:
		return ""
	}
	return v.JSON()
}

// JSON returns the compact JSON encoding of the value, without HTML escaping.
func (v Value) JSON() string {
	switch v.kind {
	case KindString:
		return quote(v.str)
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindObject:
		return v.obj.encode()
	case KindArray:
		var buf strings.Builder
		buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(item.JSON())
		}
		buf.WriteByte(']')
		return buf.String()
	}
	return "null"
}

func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.JSON()), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := RawValue(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Prop is one attribute.
type Prop struct {
	Key   string
	Value Value
}

// Props is an ordered attribute list.
type Props []Prop

// Get returns the value stored under key.
func (p Props) Get(key string) (Value, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return Value{}, false
}

// Set replaces the value under key in place, or appends it.
func (p Props) Set(key string, v Value) Props {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = v
			return p
		}
	}
	return append(p, Prop{Key: key, Value: v})
}

func (p Props) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	return []byte(p.encode()), nil
}

func (p Props) encode() string {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, prop := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(quote(prop.Key))
		buf.WriteByte(':')
		buf.WriteString(prop.Value.JSON())
	}
	buf.WriteByte('}')
	return buf.String()
}

func (p *Props) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*p = nil
		return nil
	}
	props, err := decodeProps(data)
	if err != nil {
		return err
	}
	*p = props
	return nil
}

// decodeProps walks an object in source order. Like a JavaScript object, a
// repeated key keeps its first position and takes the last value.
func decodeProps(data []byte) (Props, error) {
	out := Props{}
	err := jsonparser.ObjectEach(data, func(key, raw []byte, dt jsonparser.ValueType, _ int) error {
		v, err := valueOf(raw, dt)
		if err != nil {
			return fmt.Errorf("prop %q: %w", key, err)
		}
		out = out.Set(string(key), v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("uischema: parse object: %w", err)
	}
	return out, nil
}

func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

// formatNumber mirrors JavaScript's number-to-string conversion for the
// ranges a UI plan realistically contains.
func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if f == 0 {
		return "0"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if math.Abs(f) >= 1e21 || math.Abs(f) < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
