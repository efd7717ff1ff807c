package mcpserver_test

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shreerajan/UI-Generator/internal/generation"
	"github.com/Shreerajan/UI-Generator/internal/mcpserver"
	"github.com/Shreerajan/UI-Generator/internal/planner"
	"github.com/Shreerajan/UI-Generator/internal/render"
	"github.com/Shreerajan/UI-Generator/internal/testutil"
)

func connect(t *testing.T, req *testutil.StubRequester) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "v1"}, nil)
	mcpserver.RegisterTools(server, generation.NewService(req), render.DefaultRegistry())

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() })
	return cs
}

func call(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text, res.IsError
}

func TestListTools(t *testing.T) {
	cs := connect(t, &testutil.StubRequester{})

	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"generate_ui_plan", "stringify_plan", "explain_layout", "render_plan"}, names)
}

func TestGenerateUIPlan(t *testing.T) {
	cs := connect(t, &testutil.StubRequester{Raw: []byte(testutil.LoginPlanJSON)})

	text, isErr := call(t, cs, "generate_ui_plan", map[string]any{"prompt": "login"})
	assert.False(t, isErr)
	assert.Contains(t, text, `"layout": "centered"`)
	assert.Contains(t, text, `"explanation"`)
}

func TestGenerateUIPlan_Error(t *testing.T) {
	cs := connect(t, &testutil.StubRequester{Err: planner.ErrExtraction})

	text, isErr := call(t, cs, "generate_ui_plan", map[string]any{"prompt": "login"})
	assert.True(t, isErr)
	assert.Equal(t, "generation failed (extraction)", text)

	_, isErr = call(t, cs, "generate_ui_plan", map[string]any{"prompt": ""})
	assert.True(t, isErr)
}

func TestStringifyPlan(t *testing.T) {
	cs := connect(t, &testutil.StubRequester{})

	text, isErr := call(t, cs, "stringify_plan", map[string]any{"plan": testutil.LoginPlanJSON})
	assert.False(t, isErr)
	assert.True(t, strings.HasPrefix(text, "\n<Card title=\"Login\">"))

	_, isErr = call(t, cs, "stringify_plan", map[string]any{"plan": `{"layout":""}`})
	assert.True(t, isErr)
}

func TestExplainLayout(t *testing.T) {
	cs := connect(t, &testutil.StubRequester{})

	text, isErr := call(t, cs, "explain_layout", map[string]any{"layout": "sidebar-main"})
	assert.False(t, isErr)
	assert.Contains(t, text, "sidebar navigation")
}

func TestRenderPlan(t *testing.T) {
	cs := connect(t, &testutil.StubRequester{})

	text, _ := call(t, cs, "render_plan", map[string]any{"plan": testutil.LoginPlanJSON})
	assert.Contains(t, text, `<div class="uigen-card">`)

	text, _ = call(t, cs, "render_plan", map[string]any{"plan": "null"})
	assert.Contains(t, text, render.MsgNoPlan)
}
