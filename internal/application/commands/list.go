package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"partdex/internal/application"
	"partdex/internal/domain"
	"partdex/internal/ports"
	"partdex/internal/registry"
)

// ListResult contains catalog components, optionally scoped to one
// category or family.
type ListResult struct {
	Components []domain.Component
	Category   *domain.Category // set when the target named a category
	Family     *domain.Family   // set when the target named a family
}

// ListCommand lists catalog components. An empty target lists everything.
type ListCommand struct {
	repo   ports.CatalogRepository
	rules  *registry.Ruleset
	Target string
}

// NewListCommand creates a new ListCommand
func NewListCommand(repo ports.CatalogRepository, rules *registry.Ruleset, target string) *ListCommand {
	return &ListCommand{
		repo:   repo,
		rules:  rules,
		Target: target,
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) (*ListResult, error) {
	scan, err := c.repo.Scan()
	if err != nil {
		return nil, fmt.Errorf("scan catalog: %w", err)
	}
	result := registry.Aggregate(scan.Components, c.rules, time.Now().UTC())

	target := strings.TrimSpace(c.Target)
	if target == "" {
		return &ListResult{Components: result.Components}, nil
	}

	if fam, ok := result.Family(target); ok {
		return &ListResult{
			Components: membersOf(result, fam.Members),
			Family:     &fam,
		}, nil
	}

	code := strings.ToUpper(target)
	if cat, ok := result.Category(code); ok {
		return &ListResult{
			Components: membersOf(result, cat.Members),
			Category:   &cat,
		}, nil
	}

	return nil, fmt.Errorf("%w: no category or family named %q", application.ErrNotFound, c.Target)
}

func membersOf(result *registry.Result, ids []string) []domain.Component {
	components := make([]domain.Component, 0, len(ids))
	for _, id := range ids {
		if component, ok := result.Component(id); ok {
			components = append(components, component)
		}
	}
	return components
}
