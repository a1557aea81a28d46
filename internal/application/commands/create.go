package commands

import (
	"context"
	"fmt"

	"partdex/internal/application"
	"partdex/internal/domain"
	"partdex/internal/ports"
	"partdex/internal/registry"
)

// CreateComponentResult contains the result of creating a component
type CreateComponentResult struct {
	Component *domain.Component
	Message   string
}

// CreateComponentCommand allocates the next free identifier in a category
// or family and writes a new component page for it.
type CreateComponentCommand struct {
	repo   ports.CatalogRepository
	rules  *registry.Ruleset
	Target string
	Name   string
}

// NewCreateComponentCommand creates a new CreateComponentCommand
func NewCreateComponentCommand(repo ports.CatalogRepository, rules *registry.Ruleset, target, name string) *CreateComponentCommand {
	return &CreateComponentCommand{
		repo:   repo,
		rules:  rules,
		Target: target,
		Name:   name,
	}
}

// Validate checks if the create operation is valid
func (c *CreateComponentCommand) Validate() error {
	if err := application.ValidateRequired("target", c.Target); err != nil {
		return err
	}
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the create component command
func (c *CreateComponentCommand) Execute(ctx context.Context) (*CreateComponentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	next, err := NewNextIDCommand(c.repo, c.rules, c.Target).Execute(ctx)
	if err != nil {
		return nil, err
	}

	component, err := c.repo.CreateComponent(next.ID, c.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create component: %w", err)
	}

	return &CreateComponentResult{
		Component: component,
		Message:   fmt.Sprintf("Created component: %s %s", component.ID, component.Name),
	}, nil
}
