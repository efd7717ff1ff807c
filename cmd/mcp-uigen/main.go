// Command mcp-uigen runs the MCP tool server for UI plan generation.
// Uses stdio transport for integration with AI assistants.
package main

import (
	"context"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Shreerajan/UI-Generator/internal/config"
	"github.com/Shreerajan/UI-Generator/internal/generation"
	"github.com/Shreerajan/UI-Generator/internal/mcpserver"
	"github.com/Shreerajan/UI-Generator/internal/observability"
	"github.com/Shreerajan/UI-Generator/internal/planner"
	"github.com/Shreerajan/UI-Generator/internal/ratelimit"
	"github.com/Shreerajan/UI-Generator/internal/render"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("dotenv: %v", err)
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// stdout carries the protocol.
	observability.InitLoggerTo(os.Stderr, cfg.LogLevel)

	requester := planner.New(cfg.Planner(),
		planner.WithLimiter(ratelimit.NewUpstreamLimiter(cfg.UpstreamRPS)),
	)
	svc := generation.NewService(requester, generation.WithStrictTypes(cfg.StrictTypes))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "ui-generator",
		Version: "v1.0.0",
	}, nil)
	mcpserver.RegisterTools(server, svc, render.DefaultRegistry())

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("mcp server error: %v", err)
	}
}
