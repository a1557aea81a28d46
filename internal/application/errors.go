package application

import (
	"errors"
	"fmt"

	"partdex/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound       = errors.New("not found")
	ErrRegistryErrors = errors.New("registry has errors")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// BuildError reports a strict build aborted by registry errors.
type BuildError struct {
	Errors []domain.Issue
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("registry build failed with %d error(s)", len(e.Errors))
}

func (e *BuildError) Is(target error) bool {
	return target == ErrRegistryErrors
}
