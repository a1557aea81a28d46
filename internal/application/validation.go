package application

import (
	"fmt"
	"strings"

	"partdex/internal/domain"
)

// ValidateRequired checks that a string field is non-empty after trimming
// whitespace.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName(fieldName)),
		}
	}
	return nil
}

// ValidateComponentID checks that an ID is a well-formed component
// identifier.
func ValidateComponentID(fieldName, id string) error {
	if _, err := domain.ParseID(id); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected %s like TS101, got: %s", displayName(fieldName), id),
		}
	}
	return nil
}

// displayName rewrites field names for error messages where the Go name
// reads badly.
func displayName(fieldName string) string {
	switch fieldName {
	case "componentID":
		return "component ID"
	case "target":
		return "category or family"
	}
	return fieldName
}
