package registry

import (
	"reflect"
	"slices"
	"testing"
	"time"

	"partdex/internal/domain"
)

var testGeneratedAt = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func component(t *testing.T, id, name string) domain.Component {
	t.Helper()
	parsed, err := domain.ParseID(id)
	if err != nil {
		t.Fatalf("bad test component %q: %v", id, err)
	}
	return domain.Component{
		ID:     id,
		Code:   parsed.Code,
		Suffix: parsed.Suffix,
		Name:   name,
		Path:   "components/" + id + ".md",
	}
}

func mustRuleset(t *testing.T, categories []CategoryRule, families []FamilyRule) *Ruleset {
	t.Helper()
	rs, err := NewRuleset(categories, families)
	if err != nil {
		t.Fatalf("NewRuleset failed: %v", err)
	}
	return rs
}

func TestAggregate_FamilyOnlyMembers(t *testing.T) {
	rules := mustRuleset(t,
		[]CategoryRule{{Code: "AC", Title: "Actuators", Floor: 1}},
		[]FamilyRule{{Key: "AC2xx", Category: "AC", Start: 200, End: 299, Alias: "Transistor"}},
	)

	var comps []domain.Component
	for n := 200; n <= 210; n++ {
		id := domain.FormatID("AC", n)
		comps = append(comps, component(t, id, "part "+id))
	}

	result := Aggregate(comps, rules, testGeneratedAt)

	cat, ok := result.Category("AC")
	if !ok {
		t.Fatal("missing AC descriptor")
	}
	if len(cat.Members) != 11 {
		t.Errorf("expected 11 members, got %d", len(cat.Members))
	}
	// Every member sits inside the family range, so the bare suggestion
	// starts at the floor and skips the whole range.
	if cat.NextID != "AC001" {
		t.Errorf("expected category next AC001, got %q", cat.NextID)
	}

	fam, ok := result.Family("AC2xx")
	if !ok {
		t.Fatal("missing AC2xx descriptor")
	}
	if fam.NextID != "AC211" {
		t.Errorf("expected family next AC211, got %q", fam.NextID)
	}
	if fam.AnchorID != "AC200" {
		t.Errorf("expected anchor AC200, got %q", fam.AnchorID)
	}

	if len(cat.NextByFamily) != 1 || cat.NextByFamily[0].ID != "AC211" {
		t.Errorf("expected NextByFamily [AC2xx AC211], got %v", cat.NextByFamily)
	}
}

func TestAggregate_OutOfFamilyMembers(t *testing.T) {
	rules := mustRuleset(t,
		[]CategoryRule{{Code: "IO", Title: "I/O expanders", Floor: 1}},
		[]FamilyRule{{Key: "IO1xx", Category: "IO", Start: 100, End: 199, Alias: "ADC"}},
	)

	comps := []domain.Component{
		component(t, "IO100", "a"), component(t, "IO101", "b"), component(t, "IO102", "c"),
		component(t, "IO000", "d"), component(t, "IO001", "e"), component(t, "IO002", "f"),
		component(t, "IO003", "g"), component(t, "IO004", "h"),
	}

	result := Aggregate(comps, rules, testGeneratedAt)

	fam, _ := result.Family("IO1xx")
	if fam.NextID != "IO103" {
		t.Errorf("expected family next IO103, got %q", fam.NextID)
	}
	if !slices.Equal(fam.Members, []string{"IO100", "IO101", "IO102"}) {
		t.Errorf("unexpected family members: %v", fam.Members)
	}

	cat, _ := result.Category("IO")
	if cat.NextID != "IO005" {
		t.Errorf("expected category next IO005, got %q", cat.NextID)
	}
}

func TestAggregate_EmptyKnownCategoryRenders(t *testing.T) {
	rules := mustRuleset(t, []CategoryRule{{Code: "AC", Title: "Actuators", Floor: 1}}, nil)

	result := Aggregate(nil, rules, testGeneratedAt)

	cat, ok := result.Category("AC")
	if !ok {
		t.Fatal("empty known category must still get a descriptor")
	}
	if len(cat.Members) != 0 {
		t.Errorf("expected 0 members, got %d", len(cat.Members))
	}
	if cat.NextID != "AC001" {
		t.Errorf("expected next AC001 for empty category, got %q", cat.NextID)
	}
	if !cat.Known {
		t.Error("configured category must be marked known")
	}
}

func TestAggregate_UnknownCategoryCountedAndFlagged(t *testing.T) {
	rules := mustRuleset(t, []CategoryRule{{Code: "AC", Title: "Actuators", Floor: 1}}, nil)

	comps := []domain.Component{
		component(t, "ZZ123", "mystery"),
		component(t, "AC001", "fan"),
	}

	result := Aggregate(comps, rules, testGeneratedAt)

	cat, ok := result.Category("ZZ")
	if !ok {
		t.Fatal("unknown category should still be counted")
	}
	if cat.Known {
		t.Error("ad hoc descriptor must not be marked known")
	}
	if len(cat.Members) != 1 || cat.Members[0] != "ZZ123" {
		t.Errorf("unexpected members: %v", cat.Members)
	}

	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(result.Warnings), result.Warnings)
	}
	if result.Warnings[0].Kind != domain.IssueUnknownCategory {
		t.Errorf("expected unknown-category warning, got %s", result.Warnings[0].Kind)
	}
}

func TestAggregate_FamilyExhaustionReported(t *testing.T) {
	rules := mustRuleset(t,
		[]CategoryRule{{Code: "RF", Title: "Radios", Floor: 1}},
		[]FamilyRule{{Key: "RF1xx", Category: "RF", Start: 100, End: 101, Alias: "LoRa"}},
	)

	comps := []domain.Component{
		component(t, "RF100", "a"),
		component(t, "RF101", "b"),
	}

	result := Aggregate(comps, rules, testGeneratedAt)

	fam, _ := result.Family("RF1xx")
	if !fam.Exhausted {
		t.Error("family should be exhausted")
	}
	if fam.NextID != "" {
		t.Errorf("exhausted family must have empty next ID, got %q", fam.NextID)
	}

	cat, _ := result.Category("RF")
	if len(cat.NextByFamily) != 0 {
		t.Errorf("exhausted family must not appear in NextByFamily: %v", cat.NextByFamily)
	}

	if !result.HasErrors() {
		t.Fatal("expected an error issue")
	}
	if result.Errors[0].Kind != domain.IssueFamilyExhausted {
		t.Errorf("expected family-range-exhausted, got %s", result.Errors[0].Kind)
	}
}

func TestAggregate_NextIDNeverAMember(t *testing.T) {
	rules := mustRuleset(t,
		[]CategoryRule{{Code: "CN", Title: "Connectors", Floor: 1}},
		[]FamilyRule{{Key: "CN3xx", Category: "CN", Start: 300, End: 399}},
	)

	comps := []domain.Component{
		component(t, "CN001", "a"), component(t, "CN002", "b"),
		component(t, "CN300", "c"), component(t, "CN301", "d"),
	}

	result := Aggregate(comps, rules, testGeneratedAt)

	cat, _ := result.Category("CN")
	if slices.Contains(cat.Members, cat.NextID) {
		t.Errorf("category next %s collides with members %v", cat.NextID, cat.Members)
	}
	fam, _ := result.Family("CN3xx")
	if slices.Contains(fam.Members, fam.NextID) {
		t.Errorf("family next %s collides with members %v", fam.NextID, fam.Members)
	}
}

func TestAggregate_MembersSortedBySuffix(t *testing.T) {
	rules := mustRuleset(t, []CategoryRule{{Code: "PA", Title: "Passives", Floor: 1}}, nil)

	comps := []domain.Component{
		component(t, "PA030", "c"),
		component(t, "PA002", "a"),
		component(t, "PA010", "b"),
	}

	result := Aggregate(comps, rules, testGeneratedAt)

	cat, _ := result.Category("PA")
	if !slices.Equal(cat.Members, []string{"PA002", "PA010", "PA030"}) {
		t.Errorf("members not sorted by suffix: %v", cat.Members)
	}
}

func TestAggregate_DeterministicAcrossInputOrder(t *testing.T) {
	rules := mustRuleset(t,
		[]CategoryRule{
			{Code: "AC", Title: "Actuators", Floor: 1},
			{Code: "TS", Title: "Temperature sensors", Floor: 1},
		},
		[]FamilyRule{{Key: "AC2xx", Category: "AC", Start: 200, End: 299}},
	)

	comps := []domain.Component{
		component(t, "TS003", "a"),
		component(t, "AC201", "b"),
		component(t, "AC001", "c"),
		component(t, "TS001", "d"),
		component(t, "AC200", "e"),
	}

	first := Aggregate(comps, rules, testGeneratedAt)

	reversed := slices.Clone(comps)
	slices.Reverse(reversed)
	second := Aggregate(reversed, rules, testGeneratedAt)

	if !reflect.DeepEqual(first, second) {
		t.Error("aggregation depends on input order")
	}
}

func TestAggregate_IdempotentModuloTimestamp(t *testing.T) {
	rules := mustRuleset(t, []CategoryRule{{Code: "MC", Title: "Microcontrollers", Floor: 1}}, nil)
	comps := []domain.Component{component(t, "MC001", "esp32")}

	first := Aggregate(comps, rules, testGeneratedAt)
	second := Aggregate(comps, rules, testGeneratedAt.Add(time.Hour))

	second.GeneratedAt = first.GeneratedAt
	if !reflect.DeepEqual(first, second) {
		t.Error("results differ beyond the timestamp")
	}
}
