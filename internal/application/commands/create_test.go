package commands

import (
	"context"
	"strings"
	"testing"

	"partdex/internal/domain"
	"partdex/internal/ports"
)

func TestCreateComponentCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		cname   string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid create",
			target:  "TS",
			cname:   "DS18B20 probe",
			wantErr: false,
		},
		{
			name:    "empty target",
			target:  "",
			cname:   "DS18B20 probe",
			wantErr: true,
			errMsg:  "category or family is required",
		},
		{
			name:    "empty name",
			target:  "TS",
			cname:   "",
			wantErr: true,
			errMsg:  "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &CreateComponentCommand{
				Target: tt.target,
				Name:   tt.cname,
			}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestCreateComponentCommand_AllocatesNextFamilyID(t *testing.T) {
	repo := &fakeRepo{
		scan: &ports.ScanResult{
			Components: []domain.Component{
				component(t, "AC200", "fan controller"),
			},
		},
	}

	result, err := NewCreateComponentCommand(repo, testRules(t), "AC2xx", "PWM fan hat").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Component.ID != "AC201" {
		t.Errorf("expected AC201, got %s", result.Component.ID)
	}
	if result.Message != "Created component: AC201 PWM fan hat" {
		t.Errorf("unexpected message: %q", result.Message)
	}
	if len(repo.created) != 1 || repo.created[0] != "AC201 PWM fan hat" {
		t.Errorf("expected repository create call, got %v", repo.created)
	}
}

func TestCreateComponentCommand_ExhaustedFamilyDoesNotCreate(t *testing.T) {
	repo := &fakeRepo{
		scan: &ports.ScanResult{
			Components: []domain.Component{
				component(t, "IO100", "adc"),
				component(t, "IO101", "dac"),
			},
		},
	}

	_, err := NewCreateComponentCommand(repo, testRules(t), "IOtiny", "another3").Execute(context.Background())
	if err == nil {
		t.Fatal("expected an error for an exhausted family")
	}
	if len(repo.created) != 0 {
		t.Errorf("expected no create call, got %v", repo.created)
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
