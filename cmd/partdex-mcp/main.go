package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"partdex/internal/adapters/catalogfs"
	mcpadapter "partdex/internal/adapters/mcp"
	"partdex/internal/adapters/sqlite"
	"partdex/internal/application"
	"partdex/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, _, _, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("partdex-mcp: %v", err)
	}

	rules, err := application.BuildRuleset(cfg)
	if err != nil {
		log.Fatalf("partdex-mcp: %v", err)
	}

	repo := catalogfs.NewRepository(cfg)

	index := sqlite.NewIndex()
	if err := index.Open(cfg.DocsPath()); err != nil {
		log.Fatalf("partdex-mcp: open index: %v", err)
	}
	defer index.Close()

	mcpServer := server.NewMCPServer(
		"partdex-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, rules, index)
	mcpadapter.RegisterWriteTools(mcpServer, repo, rules, index)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("partdex-mcp: %v", err)
	}
}
