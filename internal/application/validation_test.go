package application

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "name",
			value:     "DS18B20 probe",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "name",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "name",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateComponentID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{
			name:    "valid id",
			id:      "TS101",
			wantErr: false,
		},
		{
			name:    "valid three letter code",
			id:      "ENV204",
			wantErr: false,
		},
		{
			name:    "lowercase code",
			id:      "ts101",
			wantErr: true,
		},
		{
			name:    "missing digits",
			id:      "TS",
			wantErr: true,
		},
		{
			name:    "too many digits",
			id:      "TS1234",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComponentID("componentID", tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateComponentID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestValidationMessagesUseDisplayNames(t *testing.T) {
	err := ValidateRequired("target", "")
	if err == nil || !strings.Contains(err.Error(), "category or family is required") {
		t.Errorf("expected target message to name category or family, got %v", err)
	}

	err = ValidateComponentID("componentID", "TS-101")
	if err == nil || !strings.Contains(err.Error(), "component ID") {
		t.Errorf("expected message to read component ID, got %v", err)
	}
}
