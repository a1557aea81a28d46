package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"partdex/internal/application"
	"partdex/internal/domain"
	"partdex/internal/ports"
	"partdex/internal/registry"
)

// BuildCommand scans the catalog and aggregates the identifier registry.
// It does not write anything; callers decide what to do with the result.
type BuildCommand struct {
	repo  ports.CatalogRepository
	rules *registry.Ruleset

	// Strict aborts the build when the registry carries errors, so no
	// outputs get written from a broken catalog.
	Strict bool

	// Now overrides the clock in tests. Nil means time.Now.
	Now func() time.Time
}

// NewBuildCommand creates a new BuildCommand
func NewBuildCommand(repo ports.CatalogRepository, rules *registry.Ruleset, strict bool) *BuildCommand {
	return &BuildCommand{
		repo:   repo,
		rules:  rules,
		Strict: strict,
	}
}

// Execute runs the build command. Scan diagnostics are merged ahead of
// aggregation diagnostics so issues appear in the order they were found.
// Under strict mode a result with errors is returned together with a
// BuildError; the result still carries every diagnostic for reporting.
func (c *BuildCommand) Execute(ctx context.Context) (*registry.Result, error) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	scan, err := c.repo.Scan()
	if err != nil {
		return nil, fmt.Errorf("scan catalog: %w", err)
	}

	result := registry.Aggregate(scan.Components, c.rules, now().UTC())
	result.RunID = uuid.NewString()
	result.Warnings = mergeIssues(scan.Warnings, result.Warnings)
	result.Errors = mergeIssues(scan.Errors, result.Errors)

	if c.Strict && result.HasErrors() {
		return result, &application.BuildError{Errors: result.Errors}
	}
	return result, nil
}

func mergeIssues(first, second []domain.Issue) []domain.Issue {
	if len(first) == 0 {
		return second
	}
	merged := make([]domain.Issue, 0, len(first)+len(second))
	merged = append(merged, first...)
	merged = append(merged, second...)
	return merged
}
