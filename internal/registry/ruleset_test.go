package registry

import (
	"errors"
	"testing"

	"partdex/internal/domain"
)

func TestNewRuleset_DisjointFamilies(t *testing.T) {
	categories := []CategoryRule{{Code: "PS", Title: "Power supplies", Floor: 1}}
	families := []FamilyRule{
		{Key: "PS0xx", Category: "PS", Start: 0, End: 99, Alias: "Regulators"},
		{Key: "PS2xx", Category: "PS", Start: 200, End: 299, Alias: "Chargers"},
	}

	rs, err := NewRuleset(categories, families)
	if err != nil {
		t.Fatalf("NewRuleset failed: %v", err)
	}
	if got := len(rs.FamiliesFor("PS")); got != 2 {
		t.Errorf("expected 2 families for PS, got %d", got)
	}
}

func TestNewRuleset_OverlappingRangesFatal(t *testing.T) {
	categories := []CategoryRule{{Code: "PS", Title: "Power supplies", Floor: 1}}
	families := []FamilyRule{
		{Key: "PS0xx", Category: "PS", Start: 0, End: 99},
		{Key: "PS2xx", Category: "PS", Start: 200, End: 299},
		{Key: "PS0b", Category: "PS", Start: 50, End: 150},
	}

	_, err := NewRuleset(categories, families)
	if err == nil {
		t.Fatal("expected overlap error, got nil")
	}

	var overlap *OverlapError
	if !errors.As(err, &overlap) {
		t.Fatalf("expected OverlapError, got %T: %v", err, err)
	}
	if overlap.Category != "PS" {
		t.Errorf("expected category PS, got %s", overlap.Category)
	}
}

func TestNewRuleset_SameRangeDifferentCategories(t *testing.T) {
	categories := []CategoryRule{
		{Code: "PS", Title: "Power supplies", Floor: 1},
		{Code: "AC", Title: "Actuators", Floor: 1},
	}
	families := []FamilyRule{
		{Key: "PS2xx", Category: "PS", Start: 200, End: 299},
		{Key: "AC2xx", Category: "AC", Start: 200, End: 299},
	}

	// Same numeric window in different categories is not an overlap.
	if _, err := NewRuleset(categories, families); err != nil {
		t.Fatalf("NewRuleset failed: %v", err)
	}
}

func TestNewRuleset_RejectsUnknownFamilyCategory(t *testing.T) {
	families := []FamilyRule{{Key: "ZZ1xx", Category: "ZZ", Start: 100, End: 199}}

	if _, err := NewRuleset(nil, families); err == nil {
		t.Fatal("expected error for family on unknown category")
	}
}

func TestNewRuleset_RejectsBadRanges(t *testing.T) {
	categories := []CategoryRule{{Code: "AC", Floor: 1}}

	cases := []FamilyRule{
		{Key: "AC9xx", Category: "AC", Start: 900, End: 1000},
		{Key: "AC2xx", Category: "AC", Start: 299, End: 200},
		{Key: "ACneg", Category: "AC", Start: -1, End: 50},
	}

	for _, fam := range cases {
		if _, err := NewRuleset(categories, []FamilyRule{fam}); err == nil {
			t.Errorf("family %s (%03d-%03d) should have been rejected", fam.Key, fam.Start, fam.End)
		}
	}
}

func TestNewRuleset_RejectsDuplicates(t *testing.T) {
	categories := []CategoryRule{{Code: "AC", Floor: 1}, {Code: "AC", Floor: 1}}
	if _, err := NewRuleset(categories, nil); err == nil {
		t.Error("duplicate category code should have been rejected")
	}

	families := []FamilyRule{
		{Key: "AC1xx", Category: "AC", Start: 100, End: 149},
		{Key: "AC1xx", Category: "AC", Start: 150, End: 199},
	}
	if _, err := NewRuleset([]CategoryRule{{Code: "AC", Floor: 1}}, families); err == nil {
		t.Error("duplicate family key should have been rejected")
	}
}

func TestNewRuleset_RejectsInvalidCode(t *testing.T) {
	for _, code := range []string{"ac", "A", "ABCD", "A1"} {
		if _, err := NewRuleset([]CategoryRule{{Code: code}}, nil); err == nil {
			t.Errorf("category code %q should have been rejected", code)
		}
	}
}

func TestRuleset_CategoriesSorted(t *testing.T) {
	categories := []CategoryRule{
		{Code: "TS", Floor: 1},
		{Code: "AC", Floor: 1},
		{Code: "PS", Floor: 1},
	}

	rs, err := NewRuleset(categories, nil)
	if err != nil {
		t.Fatalf("NewRuleset failed: %v", err)
	}

	got := rs.Categories()
	expected := []string{"AC", "PS", "TS"}
	for i, code := range expected {
		if got[i].Code != code {
			t.Fatalf("position %d: expected %s, got %s", i, code, got[i].Code)
		}
	}
}

func TestRuleset_ReservedFor(t *testing.T) {
	categories := []CategoryRule{{Code: "AC", Floor: 1}}
	families := []FamilyRule{
		{Key: "AC2xx", Category: "AC", Start: 200, End: 299},
		{Key: "AC1xx", Category: "AC", Start: 100, End: 199},
	}

	rs, err := NewRuleset(categories, families)
	if err != nil {
		t.Fatalf("NewRuleset failed: %v", err)
	}

	reserved := rs.ReservedFor("AC")
	if len(reserved) != 2 {
		t.Fatalf("expected 2 reserved ranges, got %d", len(reserved))
	}
	// Sorted by family key: AC1xx before AC2xx.
	if reserved[0] != (domain.Range{Start: 100, End: 199}) {
		t.Errorf("expected 100-199 first, got %s", reserved[0])
	}

	if got := rs.ReservedFor("TS"); len(got) != 0 {
		t.Errorf("expected no reserved ranges for TS, got %d", len(got))
	}
}

func TestRuleset_FloorFor(t *testing.T) {
	rs, err := NewRuleset([]CategoryRule{{Code: "PA", Floor: 10}}, nil)
	if err != nil {
		t.Fatalf("NewRuleset failed: %v", err)
	}

	if got := rs.FloorFor("PA"); got != 10 {
		t.Errorf("expected configured floor 10, got %d", got)
	}
	if got := rs.FloorFor("ZZ"); got != domain.DefaultFloor {
		t.Errorf("expected default floor %d for unknown code, got %d", domain.DefaultFloor, got)
	}
}
