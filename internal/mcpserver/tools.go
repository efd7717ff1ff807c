// Package mcpserver exposes UI plan generation via MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Shreerajan/UI-Generator/internal/codegen"
	"github.com/Shreerajan/UI-Generator/internal/explain"
	"github.com/Shreerajan/UI-Generator/internal/planner"
	"github.com/Shreerajan/UI-Generator/internal/render"
	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

// Generator produces a generation result for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (uischema.GenerationResult, error)
}

// RegisterTools registers all UI generator MCP tools on the given server.
func RegisterTools(server *mcp.Server, gen Generator, reg *render.Registry) {
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "generate_ui_plan",
			Description: "Generate a UI plan from a natural-language description, with JSX-like code and a layout explanation",
		},
		generateHandler(gen),
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "stringify_plan",
			Description: "Print a UI plan (JSON) as JSX-like markup",
		},
		stringifyHandler(),
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "explain_layout",
			Description: "Explain the rationale for a layout name such as sidebar-main, centered or modal",
		},
		explainHandler(),
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "render_plan",
			Description: "Render a UI plan (JSON) to an HTML preview fragment",
		},
		renderHandler(reg),
	)
}

type promptInput struct {
	Prompt string `json:"prompt" jsonschema:"description of the UI to build"`
}

func generateHandler(gen Generator) mcp.ToolHandlerFor[promptInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input promptInput) (*mcp.CallToolResult, any, error) {
		if input.Prompt == "" {
			return errorResult("prompt is required"), nil, nil
		}
		res, err := gen.Generate(ctx, input.Prompt)
		if err != nil {
			kind := planner.Kind(err)
			slog.Error("generate_ui_plan", "kind", kind, "error", err)
			return errorResult(fmt.Sprintf("generation failed (%s)", kind)), nil, nil
		}
		return textResult(res)
	}
}

type planInput struct {
	Plan string `json:"plan" jsonschema:"UI plan as a JSON document"`
}

func stringifyHandler() mcp.ToolHandlerFor[planInput, any] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input planInput) (*mcp.CallToolResult, any, error) {
		plan, err := uischema.DecodePlan([]byte(input.Plan))
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		return plainResult(codegen.Plan(plan)), nil, nil
	}
}

type layoutInput struct {
	Layout string `json:"layout" jsonschema:"layout name from a UI plan"`
}

func explainHandler() mcp.ToolHandlerFor[layoutInput, any] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input layoutInput) (*mcp.CallToolResult, any, error) {
		return plainResult(explain.Explain(input.Layout)), nil, nil
	}
}

func renderHandler(reg *render.Registry) mcp.ToolHandlerFor[planInput, any] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input planInput) (*mcp.CallToolResult, any, error) {
		plan, _ := uischema.ParsePlan([]byte(input.Plan))
		out, err := render.New(reg).HTML(plan)
		if err != nil {
			return nil, nil, fmt.Errorf("render_plan: %w", err)
		}
		return plainResult(out), nil, nil
	}
}

func textResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal result: %w", err)
	}
	return plainResult(string(data)), nil, nil
}

func plainResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
