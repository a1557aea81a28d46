package domain

import (
	"testing"
)

func TestParseID_RoundTrip(t *testing.T) {
	cases := []struct {
		raw    string
		code   string
		suffix int
	}{
		{"AC200", "AC", 200},
		{"TS001", "TS", 1},
		{"ENV042", "ENV", 42},
		{"OT999", "OT", 999},
		{"PS000", "PS", 0},
	}

	for _, tc := range cases {
		id, err := ParseID(tc.raw)
		if err != nil {
			t.Fatalf("ParseID(%q) failed: %v", tc.raw, err)
		}
		if id.Code != tc.code {
			t.Errorf("ParseID(%q) code: expected %s, got %s", tc.raw, tc.code, id.Code)
		}
		if id.Suffix != tc.suffix {
			t.Errorf("ParseID(%q) suffix: expected %d, got %d", tc.raw, tc.suffix, id.Suffix)
		}
		if got := id.String(); got != tc.raw {
			t.Errorf("format round-trip: expected %s, got %s", tc.raw, got)
		}
	}
}

func TestParseID_RejectsMalformed(t *testing.T) {
	invalid := []string{
		"",
		"xyz123",
		"AC20",
		"AC2000",
		"A200",
		"ABCD200",
		"AC-200",
		"200AC",
		"ac200",
	}

	for _, raw := range invalid {
		if _, err := ParseID(raw); err == nil {
			t.Errorf("ParseID(%q) should have failed", raw)
		}
		if IsValidID(raw) {
			t.Errorf("IsValidID(%q) should be false", raw)
		}
	}
}

func TestParseID_TrimsWhitespace(t *testing.T) {
	id, err := ParseID("  AC201\n")
	if err != nil {
		t.Fatalf("ParseID failed: %v", err)
	}
	if id.Code != "AC" || id.Suffix != 201 {
		t.Errorf("expected AC201, got %s", id)
	}
}

func TestFormatID_ZeroPads(t *testing.T) {
	if got := FormatID("AC", 7); got != "AC007" {
		t.Errorf("expected AC007, got %s", got)
	}
	if got := FormatID("ENV", 420); got != "ENV420" {
		t.Errorf("expected ENV420, got %s", got)
	}
}

func TestNextCategorySuffix_StartsAtFloor(t *testing.T) {
	n, err := NextCategorySuffix(map[int]bool{}, DefaultFloor, nil)
	if err != nil {
		t.Fatalf("NextCategorySuffix failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1, got %d", n)
	}
}

func TestNextCategorySuffix_SkipsUsed(t *testing.T) {
	used := map[int]bool{1: true, 2: true, 4: true}

	n, err := NextCategorySuffix(used, DefaultFloor, nil)
	if err != nil {
		t.Fatalf("NextCategorySuffix failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3, got %d", n)
	}
}

func TestNextCategorySuffix_SkipsReservedRanges(t *testing.T) {
	// Members AC200..AC210 all inside the reserved range: the bare
	// suggestion ignores them and never lands inside the range.
	used := make(map[int]bool)
	for n := 200; n <= 210; n++ {
		used[n] = true
	}
	reserved := []Range{{Start: 200, End: 299}}

	n, err := NextCategorySuffix(used, DefaultFloor, reserved)
	if err != nil {
		t.Fatalf("NextCategorySuffix failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1, got %d", n)
	}
}

func TestNextCategorySuffix_LandsAfterReservedRange(t *testing.T) {
	used := make(map[int]bool)
	for n := 0; n <= 99; n++ {
		if !(n >= 50 && n <= 59) {
			used[n] = true
		}
	}
	reserved := []Range{{Start: 50, End: 59}}

	// 0..99 fully occupied except the reserved 50-59 window, which must be
	// skipped regardless.
	n, err := NextCategorySuffix(used, 0, reserved)
	if err != nil {
		t.Fatalf("NextCategorySuffix failed: %v", err)
	}
	if n != 100 {
		t.Errorf("expected 100, got %d", n)
	}
}

func TestNextCategorySuffix_Exhausted(t *testing.T) {
	used := make(map[int]bool)
	for n := SuffixMin; n <= SuffixMax; n++ {
		used[n] = true
	}

	if _, err := NextCategorySuffix(used, 0, nil); err == nil {
		t.Fatal("expected exhaustion error, got nil")
	}
}

func TestNextCategorySuffix_ReservedCoversEverything(t *testing.T) {
	reserved := []Range{{Start: 0, End: 999}}

	if _, err := NextCategorySuffix(map[int]bool{}, 0, reserved); err == nil {
		t.Fatal("expected exhaustion error, got nil")
	}
}

func TestNextFamilySuffix_FillsInOrder(t *testing.T) {
	used := make(map[int]bool)
	for n := 200; n <= 210; n++ {
		used[n] = true
	}

	n, err := NextFamilySuffix(used, Range{Start: 200, End: 299})
	if err != nil {
		t.Fatalf("NextFamilySuffix failed: %v", err)
	}
	if n != 211 {
		t.Errorf("expected 211, got %d", n)
	}
}

func TestNextFamilySuffix_StartsAtRangeStart(t *testing.T) {
	n, err := NextFamilySuffix(map[int]bool{}, Range{Start: 100, End: 199})
	if err != nil {
		t.Fatalf("NextFamilySuffix failed: %v", err)
	}
	if n != 100 {
		t.Errorf("expected 100, got %d", n)
	}
}

func TestNextFamilySuffix_NeverLeavesRange(t *testing.T) {
	used := make(map[int]bool)
	for n := 100; n <= 199; n++ {
		used[n] = true
	}

	// Range full: must report exhaustion, not spill into 200+.
	if _, err := NextFamilySuffix(used, Range{Start: 100, End: 199}); err == nil {
		t.Fatal("expected exhaustion error, got nil")
	}
}

func TestRangeOverlaps(t *testing.T) {
	cases := []struct {
		a, b     Range
		overlaps bool
	}{
		{Range{0, 99}, Range{200, 299}, false},
		{Range{0, 99}, Range{50, 150}, true},
		{Range{50, 150}, Range{0, 99}, true},
		{Range{100, 199}, Range{199, 250}, true},
		{Range{100, 199}, Range{200, 299}, false},
		{Range{100, 199}, Range{100, 199}, true},
	}

	for _, tc := range cases {
		if got := tc.a.Overlaps(tc.b); got != tc.overlaps {
			t.Errorf("%s overlaps %s: expected %v, got %v", tc.a, tc.b, tc.overlaps, got)
		}
	}
}
