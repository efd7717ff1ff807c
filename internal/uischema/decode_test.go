package uischema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

func TestUnmarshalPlan_PreservesPropOrder(t *testing.T) {
	raw := `{"layout":"centered","components":[
		{"type":"Input","props":{"label":"Email","type":"email","disabled":false,"style":{"width":"100%","marginTop":8}}}
	]}`

	var plan uischema.UIPlan
	require.NoError(t, json.Unmarshal([]byte(raw), &plan))
	require.Len(t, plan.Components, 1)

	node := plan.Components[0].Component
	require.NotNil(t, node)
	assert.Equal(t, "Input", node.Type)

	keys := make([]string, 0, len(node.Props))
	for _, p := range node.Props {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{"label", "type", "disabled", "style"}, keys)

	style, ok := node.Props.Get("style")
	require.True(t, ok)
	assert.Equal(t, uischema.KindObject, style.Kind())
	assert.Equal(t, `{"width":"100%","marginTop":8}`, style.JSON())
}

func TestUnmarshalComponent_SiblingFieldsGoToRest(t *testing.T) {
	var node uischema.Node
	require.NoError(t, json.Unmarshal([]byte(`{"type":"div","className":"x","children":["hi"]}`), &node))

	require.NotNil(t, node.Component)
	assert.Nil(t, node.Component.Props)
	require.Len(t, node.Component.Rest, 1)
	assert.Equal(t, "className", node.Component.Rest[0].Key)
	assert.Equal(t, "x", node.Component.Rest[0].Value.Str())
	require.Len(t, node.Component.Children, 1)
	assert.True(t, node.Component.Children[0].IsText())
	assert.Equal(t, "hi", node.Component.Children[0].Text)
}

func TestEffectiveProps(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"explicit props win", `{"type":"div","props":{"id":"a"},"className":"x"}`, `{"id":"a"}`},
		{"siblings when props absent", `{"type":"div","className":"x"}`, `{"className":"x"}`},
		{"siblings when props null", `{"type":"div","props":null,"className":"x"}`, `{"className":"x"}`},
		{"empty props object is still props", `{"type":"div","props":{},"className":"x"}`, `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var node uischema.ComponentNode
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &node))
			got, err := json.Marshal(node.EffectiveProps())
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestUnmarshalNode_Rejects(t *testing.T) {
	for _, raw := range []string{
		`42`,
		`{"props":{}}`,
		`{"type":7}`,
		`{"type":"div","props":"x"}`,
		`{"type":"div","children":"x"}`,
		`{"type":"div","children":[1]}`,
	} {
		var node uischema.Node
		assert.Error(t, json.Unmarshal([]byte(raw), &node), raw)
	}
}

func TestMarshalPlan_KeepsOrderAndShape(t *testing.T) {
	raw := `{"layout":"modal","modificationType":"update","components":[{"type":"Card","props":{"title":"B","a":1},"children":["x",{"type":"p","id":"z"}]}]}`

	var plan uischema.UIPlan
	require.NoError(t, json.Unmarshal([]byte(raw), &plan))

	out, err := json.Marshal(plan)
	require.NoError(t, err)
	assert.Equal(t, raw, string(out))
}

func TestValue_Array(t *testing.T) {
	v := uischema.MustRawValue(`[1, "two", true, null, {"k": "v"}]`)
	items, err := v.Array()
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, uischema.KindNumber, items[0].Kind())
	assert.Equal(t, "two", items[1].Str())
	assert.True(t, items[2].Bool())
	assert.Equal(t, uischema.KindNull, items[3].Kind())
	assert.Equal(t, `{"k":"v"}`, items[4].JSON())
}

func TestValue_NestedNumbersReencoded(t *testing.T) {
	v := uischema.MustRawValue(`{"opacity": 0.50, "scale": 1.0, "big": 1E3, "list": [2.50, {"k": -0.0}], "opacity": 0.75}`)
	assert.Equal(t, `{"opacity":0.75,"scale":1,"big":1000,"list":[2.5,{"k":0}]}`, v.JSON())

	entries, err := v.Object()
	require.NoError(t, err)
	list, ok := entries.Get("list")
	require.True(t, ok)
	assert.Equal(t, uischema.KindArray, list.Kind())
}

func TestValue_ObjectAndArrayConstructors(t *testing.T) {
	obj := uischema.ObjectValue(uischema.Props{}.Set("b", uischema.NumberValue(0.5)).Set("a", uischema.StringValue("café")))
	assert.Equal(t, `{"b":0.5,"a":"café"}`, obj.JSON())
	assert.Equal(t, "{}", uischema.ObjectValue(nil).JSON())
	assert.Equal(t, "[]", uischema.ArrayValue(nil).JSON())
	assert.Equal(t, `[true,null]`, uischema.ArrayValue([]uischema.Value{uischema.BoolValue(true), {}}).JSON())
}

func TestValue_TextAndJSON(t *testing.T) {
	tests := []struct {
		v        uischema.Value
		wantText string
		wantJSON string
	}{
		{uischema.StringValue("a<b"), "a<b", `"a<b"`},
		{uischema.NumberValue(8), "8", "8"},
		{uischema.NumberValue(1.5), "1.5", "1.5"},
		{uischema.NumberValue(-0.25), "-0.25", "-0.25"},
		{uischema.BoolValue(true), "true", "true"},
		{uischema.NullValue(), "", "null"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wantText, tt.v.Text())
		assert.Equal(t, tt.wantJSON, tt.v.JSON())
	}
}

func TestDuplicateKeysKeepFirstPosition(t *testing.T) {
	var props uischema.Props
	require.NoError(t, json.Unmarshal([]byte(`{"a":1,"b":2,"a":3}`), &props))
	require.Len(t, props, 2)
	assert.Equal(t, "a", props[0].Key)
	assert.Equal(t, float64(3), props[0].Value.Number())
}

func TestAllowedTypeList(t *testing.T) {
	assert.Equal(t, "Button, Card, Input, Sidebar, Modal, Navbar, Chart, Table, div, span, h1, p", uischema.AllowedTypeList())
	assert.True(t, uischema.PrimitiveH1.Primitive())
	assert.False(t, uischema.ComponentCard.Primitive())
	assert.False(t, uischema.ComponentType("Carousel").Valid())
}
