package commands

import (
	"context"
	"errors"
	"testing"

	"partdex/internal/application"
	"partdex/internal/domain"
	"partdex/internal/ports"
)

func TestShowCommand_ReturnsComponentAndPage(t *testing.T) {
	repo := &fakeRepo{
		scan: &ports.ScanResult{
			Components: []domain.Component{
				component(t, "TS101", "ds18b20"),
				component(t, "TS102", "pt100"),
			},
		},
		pages: map[string]string{
			"components/TS101.md": "# TS101 ds18b20\n",
		},
	}

	result, err := NewShowCommand(repo, "TS101").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Component.ID != "TS101" {
		t.Errorf("expected TS101, got %s", result.Component.ID)
	}
	if result.Content != "# TS101 ds18b20\n" {
		t.Errorf("unexpected content: %q", result.Content)
	}
}

func TestShowCommand_UnknownComponent(t *testing.T) {
	repo := &fakeRepo{
		scan: &ports.ScanResult{
			Components: []domain.Component{component(t, "TS101", "ds18b20")},
		},
	}

	_, err := NewShowCommand(repo, "TS999").Execute(context.Background())
	if err == nil {
		t.Fatal("expected an error for a missing component")
	}
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestShowCommand_MalformedID(t *testing.T) {
	_, err := NewShowCommand(&fakeRepo{}, "ts-101").Execute(context.Background())
	if err == nil {
		t.Fatal("expected a validation error")
	}
	var valErr *application.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}
