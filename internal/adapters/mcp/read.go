package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"partdex/internal/application/commands"
	"partdex/internal/domain"
	"partdex/internal/ports"
	"partdex/internal/registry"
)

// RegisterReadTools adds all read-only catalog tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.CatalogRepository, rules *registry.Ruleset, index ports.ComponentIndex) {
	s.AddTool(listTool(), listHandler(repo, rules))
	s.AddTool(searchTool(), searchHandler(repo, index))
	s.AddTool(treeTool(), treeHandler(repo, rules))
	s.AddTool(nextIDTool(), nextIDHandler(repo, rules))
	s.AddTool(readPageTool(), readPageHandler(repo))
	s.AddTool(registryTool(), registryHandler(repo, rules))
	s.AddTool(referencesTool(), referencesHandler(index))
	s.AddTool(resolvePathTool(), resolvePathHandler(repo, index))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List catalog components. Without arguments lists every component. With a target lists the members of one category or family."),
		mcp.WithString("target",
			mcp.Description("Category code (e.g. AC) or family key (e.g. AC2xx). Omit to list everything."),
		),
	)
}

func listHandler(repo ports.CatalogRepository, rules *registry.Ruleset) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target := req.GetString("target", "")

		cmd := commands.NewListCommand(repo, rules, target)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return formatEntities(result.Components, formatComponent)
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search the catalog by keyword. Returns matching components with their IDs, best matches first."),
		mcp.WithString("query",
			mcp.Description("Search query (part name, chip marking, ID fragment)"),
			mcp.Required(),
		),
	)
}

func searchHandler(repo ports.CatalogRepository, index ports.ComponentIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		cmd := commands.NewIndexedSearchCommand(repo, index, query)
		results, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s  %s\n", r.ID, r.Name, r.MatchedText)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the catalog as a tree: categories, their families, and the components inside."),
	)
}

func treeHandler(repo ports.CatalogRepository, rules *registry.Ruleset) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewBuildCommand(repo, rules, false).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		root := domain.BuildTree(result.Categories, result.Families, result.Components)
		var sb strings.Builder
		renderTree(&sb, root, "")
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node *domain.TreeNode, prefix string) {
	if node.ID != "" {
		fmt.Fprintf(sb, "%s%s %s\n", prefix, node.ID, node.Name)
		prefix += "  "
	}
	for _, child := range node.Children {
		renderTree(sb, child, prefix)
	}
}

// --- next_id ---

func nextIDTool() mcp.Tool {
	return mcp.NewTool("next_id",
		mcp.WithDescription("Compute the next free component ID in a category or family without creating anything."),
		mcp.WithString("target",
			mcp.Description("Category code (e.g. AC) or family key (e.g. AC2xx)"),
			mcp.Required(),
		),
	)
}

func nextIDHandler(repo ports.CatalogRepository, rules *registry.Ruleset) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		target := req.GetString("target", "")

		cmd := commands.NewNextIDCommand(repo, rules, target)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- read_page ---

func readPageTool() mcp.Tool {
	return mcp.NewTool("read_page",
		mcp.WithDescription("Read the Markdown page of a component by its ID."),
		mcp.WithString("id",
			mcp.Description("Component ID (e.g. AC204)"),
			mcp.Required(),
		),
	)
}

func readPageHandler(repo ports.CatalogRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		cmd := commands.NewShowCommand(repo, id)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Content), nil
	}
}

// --- registry ---

func registryTool() mcp.Tool {
	return mcp.NewTool("registry",
		mcp.WithDescription("Render the ID registry summary for the current catalog state: per-category counts, next free IDs, family ranges, and any warnings or errors."),
	)
}

func registryHandler(repo ports.CatalogRepository, rules *registry.Ruleset) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewBuildCommand(repo, rules, false).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		snap := registry.BuildSnapshot(result)
		return mcp.NewToolResultText(registry.RenderPage(snap, registry.PageOptions{})), nil
	}
}

// --- references ---

func referencesTool() mcp.Tool {
	return mcp.NewTool("references",
		mcp.WithDescription("List catalog pages that link to a component. Results come from the link index; run the sync tool after editing pages."),
		mcp.WithString("id",
			mcp.Description("Component ID (e.g. AC204)"),
			mcp.Required(),
		),
	)
}

func referencesHandler(index ports.ComponentIndex) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}
		if !domain.IsValidID(id) {
			return toolError(fmt.Errorf("invalid component ID: %q", id))
		}

		refs, err := index.ReferencesTo(strings.TrimSpace(id))
		if err != nil {
			return toolError(err)
		}

		return formatEntities(refs, formatReference)
	}
}

// --- resolve_path ---

func resolvePathTool() mcp.Tool {
	return mcp.NewTool("resolve_path",
		mcp.WithDescription("Get the filesystem path of a component page by its ID."),
		mcp.WithString("id",
			mcp.Description("Component ID (e.g. AC204)"),
			mcp.Required(),
		),
	)
}

func resolvePathHandler(repo ports.CatalogRepository, index ports.ComponentIndex) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		parsed, err := domain.ParseID(id)
		if err != nil {
			return toolError(err)
		}

		if entry, err := index.Lookup(parsed.String()); err == nil && entry != nil {
			return mcp.NewToolResultText(repo.AbsPath(entry.Path)), nil
		}

		// The index misses pages added since the last sync, so rescan
		// before declaring the component missing.
		scan, err := repo.Scan()
		if err != nil {
			return toolError(err)
		}
		for i := range scan.Components {
			if scan.Components[i].ID == parsed.String() {
				return mcp.NewToolResultText(repo.AbsPath(scan.Components[i].Path)), nil
			}
		}

		return toolError(fmt.Errorf("component not found: %s", parsed))
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatComponent(c domain.Component) string {
	return fmt.Sprintf("%s  %s", c.ID, c.Name)
}

func formatReference(r domain.Reference) string {
	return fmt.Sprintf("%s  %s", r.SourcePath, r.Context)
}
