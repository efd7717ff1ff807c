package codegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shreerajan/UI-Generator/internal/codegen"
	"github.com/Shreerajan/UI-Generator/internal/testutil"
	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

func decode(t *testing.T, raw string) uischema.UIPlan {
	t.Helper()
	plan, err := uischema.DecodePlan([]byte(raw))
	require.NoError(t, err)
	return plan
}

func TestStringify_LoginForm(t *testing.T) {
	got := codegen.Plan(testutil.MustPlan(testutil.LoginPlanJSON))

	want := "\n<Card title=\"Login\">" +
		"\n  <Input label=\"Email\" type=\"email\" />" +
		"\n  <Input label=\"Password\" type=\"password\" />" +
		"\n  <Button children=\"Login\" />" +
		"\n</Card>"
	assert.Equal(t, want, got)
}

func TestStringify_ValueKinds(t *testing.T) {
	plan := decode(t, `{"layout":"x","components":[
		{"type":"div","props":{"style":{"padding":16,"color":"red"},"count":3,"items":["a",1],"meta":null,"disabled":true,"hidden":false,"id":"main"}}
	]}`)

	got := codegen.Plan(plan)
	assert.Equal(t, `
<div style={{"padding":16,"color":"red"}} count={3} items={["a",1]} meta={null} disabled  id="main" />`, got)
}

func TestStringify_NestedNumbersMatchTopLevel(t *testing.T) {
	plan := decode(t, `{"layout":"x","components":[
		{"type":"div","props":{"style":{"opacity":0.50,"label":"café"},"w":0.50}}
	]}`)

	got := codegen.Plan(plan)
	assert.Equal(t, "\n<div style={{\"opacity\":0.5,\"label\":\"café\"}} w={0.5} />", got)
}

func TestStringify_TextAndNesting(t *testing.T) {
	plan := decode(t, `{"layout":"x","components":[
		{"type":"div","children":["Hello",{"type":"p","children":["World"]}]},
		{"type":"span","props":{}}
	]}`)

	got := codegen.Plan(plan)
	assert.Equal(t, "\n<div >\"Hello\"\n  <p >\"World\"\n  </p>\n</div>\n\n<span  />", got)
}

func TestStringify_SiblingPropsNotPrinted(t *testing.T) {
	plan := decode(t, `{"layout":"x","components":[{"type":"Card","title":"Login"}]}`)
	assert.Equal(t, "\n<Card  />", codegen.Plan(plan))
}

func TestStringify_Deterministic(t *testing.T) {
	plan := testutil.MustPlan(testutil.LoginPlanJSON)
	first := codegen.Plan(plan)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, codegen.Plan(plan))
	}
}

func TestStringify_Empty(t *testing.T) {
	assert.Empty(t, codegen.Stringify(nil))
	assert.Equal(t, `"loose text"`, codegen.Stringify([]uischema.Node{uischema.Text("loose text")}))
}
