package commands

import (
	"context"
	"fmt"

	"partdex/internal/application"
	"partdex/internal/domain"
	"partdex/internal/ports"
)

// ShowResult contains one component and its page content
type ShowResult struct {
	Component *domain.Component
	Content   string
}

// ShowCommand loads a single component page by identifier
type ShowCommand struct {
	repo ports.CatalogRepository
	ID   string
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(repo ports.CatalogRepository, id string) *ShowCommand {
	return &ShowCommand{
		repo: repo,
		ID:   id,
	}
}

// Validate checks if the lookup is valid
func (c *ShowCommand) Validate() error {
	if err := application.ValidateRequired("componentID", c.ID); err != nil {
		return err
	}
	return application.ValidateComponentID("componentID", c.ID)
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context) (*ShowResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, err := domain.ParseID(c.ID)
	if err != nil {
		return nil, err
	}

	scan, err := c.repo.Scan()
	if err != nil {
		return nil, fmt.Errorf("scan catalog: %w", err)
	}

	for i := range scan.Components {
		component := &scan.Components[i]
		if component.ID != id.String() {
			continue
		}
		content, err := c.repo.ReadPage(component.Path)
		if err != nil {
			return nil, fmt.Errorf("read page for %s: %w", component.ID, err)
		}
		return &ShowResult{Component: component, Content: content}, nil
	}

	return nil, fmt.Errorf("%w: component %s", application.ErrNotFound, id)
}
