package commands

import (
	"context"
	"errors"
	"testing"

	"partdex/internal/application"
	"partdex/internal/domain"
	"partdex/internal/ports"
)

func TestNextIDCommand_CategorySkipsReservedRanges(t *testing.T) {
	repo := &fakeRepo{
		scan: &ports.ScanResult{
			Components: []domain.Component{
				component(t, "AC200", "fan controller"),
				component(t, "AC210", "relay board"),
			},
		},
	}

	result, err := NewNextIDCommand(repo, testRules(t), "AC").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.ID != "AC001" {
		t.Errorf("expected AC001 outside the family block, got %s", result.ID)
	}
	if result.Family != "" {
		t.Errorf("expected no family for a category target, got %q", result.Family)
	}
}

func TestNextIDCommand_FamilyFillsItsRange(t *testing.T) {
	repo := &fakeRepo{
		scan: &ports.ScanResult{
			Components: []domain.Component{
				component(t, "AC200", "fan controller"),
				component(t, "AC210", "relay board"),
			},
		},
	}

	result, err := NewNextIDCommand(repo, testRules(t), "AC2xx").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.ID != "AC201" {
		t.Errorf("expected AC201 inside the family block, got %s", result.ID)
	}
	if result.Family != "AC2xx" {
		t.Errorf("expected family AC2xx, got %q", result.Family)
	}
}

func TestNextIDCommand_ExhaustedFamilyFails(t *testing.T) {
	repo := &fakeRepo{
		scan: &ports.ScanResult{
			Components: []domain.Component{
				component(t, "IO100", "adc"),
				component(t, "IO101", "dac"),
			},
		},
	}

	_, err := NewNextIDCommand(repo, testRules(t), "IOtiny").Execute(context.Background())
	if err == nil {
		t.Fatal("expected an error for an exhausted family")
	}
	if !contains(err.Error(), "no free ID") {
		t.Errorf("expected exhaustion message, got %v", err)
	}
}

func TestNextIDCommand_LowercaseCategoryAccepted(t *testing.T) {
	repo := &fakeRepo{
		scan: &ports.ScanResult{
			Components: []domain.Component{component(t, "TS001", "probe")},
		},
	}

	result, err := NewNextIDCommand(repo, testRules(t), "ts").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.ID != "TS002" {
		t.Errorf("expected TS002, got %s", result.ID)
	}
}

func TestNextIDCommand_UnknownTarget(t *testing.T) {
	repo := &fakeRepo{}

	_, err := NewNextIDCommand(repo, testRules(t), "ZZ").Execute(context.Background())
	if err == nil {
		t.Fatal("expected an error for an unknown target")
	}
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNextIDCommand_EmptyTarget(t *testing.T) {
	_, err := NewNextIDCommand(&fakeRepo{}, testRules(t), "  ").Execute(context.Background())
	if err == nil {
		t.Fatal("expected a validation error")
	}
	var valErr *application.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}
