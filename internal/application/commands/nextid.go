package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"partdex/internal/application"
	"partdex/internal/ports"
	"partdex/internal/registry"
)

// NextIDCommand computes the next free identifier for a category code or
// family key. Family keys are tried first, so a family named after its
// category block ("AC2xx") never collides with the plain code form.
type NextIDCommand struct {
	repo   ports.CatalogRepository
	rules  *registry.Ruleset
	Target string
}

// NextIDResult contains the result of a next-ID lookup
type NextIDResult struct {
	ID      string
	Family  string // family key when the target named a family
	Message string
}

// NewNextIDCommand creates a new NextIDCommand
func NewNextIDCommand(repo ports.CatalogRepository, rules *registry.Ruleset, target string) *NextIDCommand {
	return &NextIDCommand{
		repo:   repo,
		rules:  rules,
		Target: target,
	}
}

// Validate checks if the lookup is valid
func (c *NextIDCommand) Validate() error {
	return application.ValidateRequired("target", c.Target)
}

// Execute runs the next-ID lookup against the current catalog state
func (c *NextIDCommand) Execute(ctx context.Context) (*NextIDResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	scan, err := c.repo.Scan()
	if err != nil {
		return nil, fmt.Errorf("scan catalog: %w", err)
	}
	result := registry.Aggregate(scan.Components, c.rules, time.Now().UTC())

	target := strings.TrimSpace(c.Target)
	if fam, ok := result.Family(target); ok {
		if fam.Exhausted {
			return nil, fmt.Errorf("family %s (%s) has no free ID", fam.Key, fam.Reserved())
		}
		return &NextIDResult{
			ID:      fam.NextID,
			Family:  fam.Key,
			Message: fmt.Sprintf("Next ID in %s: %s", fam.Key, fam.NextID),
		}, nil
	}

	code := strings.ToUpper(target)
	if cat, ok := result.Category(code); ok {
		if cat.NextID == "" {
			return nil, fmt.Errorf("category %s has no free ID", code)
		}
		return &NextIDResult{
			ID:      cat.NextID,
			Message: fmt.Sprintf("Next ID in %s: %s", code, cat.NextID),
		}, nil
	}

	return nil, fmt.Errorf("%w: no category or family named %q", application.ErrNotFound, c.Target)
}
