package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"partdex/internal/application/commands"
	"partdex/internal/domain"
	"partdex/internal/ports"
	"partdex/internal/registry"
)

// RegisterWriteTools adds all catalog-mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.CatalogRepository, rules *registry.Ruleset, index ports.ComponentIndex) {
	s.AddTool(createTool(), createHandler(repo, rules, index))
	s.AddTool(syncTool(), syncHandler(index))
}

// --- create ---

func createTool() mcp.Tool {
	return mcp.NewTool("create",
		mcp.WithDescription("Create a new component page. Allocates the next free ID in the target category or family and writes a page skeleton for it."),
		mcp.WithString("target",
			mcp.Description("Category code (e.g. AC) or family key (e.g. AC2xx) to allocate from"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Component name, e.g. \"bme280 breakout\""),
			mcp.Required(),
		),
	)
}

func createHandler(repo ports.CatalogRepository, rules *registry.Ruleset, index ports.ComponentIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target := req.GetString("target", "")
		name := req.GetString("name", "")

		cmd := commands.NewCreateComponentCommand(repo, rules, target, name)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		// Register the new page in the index right away so search,
		// references and resolve_path see it without a full sync.
		c := result.Component
		upsertErr := index.Upsert(&domain.IndexEntry{
			Path:   c.Path,
			ID:     c.ID,
			Code:   c.Code,
			Suffix: c.Suffix,
			Name:   c.Name,
			Title:  c.Title,
			Mtime:  time.Now().Unix(),
		})

		msg := fmt.Sprintf("%s\nPage: %s", result.Message, c.Path)
		if upsertErr != nil {
			msg += "\nThe page is not indexed yet, run the sync tool."
		}
		return mcp.NewToolResultText(msg), nil
	}
}

// --- sync ---

func syncTool() mcp.Tool {
	return mcp.NewTool("sync",
		mcp.WithDescription("Refresh the link index from the catalog. Run after editing pages so the references tool sees current links."),
		mcp.WithBoolean("full",
			mcp.Description("Rebuild the index from scratch instead of syncing changed pages"),
		),
	)
}

func syncHandler(index ports.ComponentIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		full := req.GetBool("full", false)

		cmd := commands.NewSyncCommand(index, full)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}
