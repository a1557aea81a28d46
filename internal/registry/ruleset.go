package registry

import (
	"fmt"
	"slices"

	"partdex/internal/domain"
)

// CategoryRule declares one known category code with its display title and
// allocation floor.
type CategoryRule struct {
	Code  string
	Title string
	Floor int
}

// FamilyRule declares one reserved sub-range inside a category.
type FamilyRule struct {
	Key      string // e.g. "AC2xx"
	Category string // parent category code
	Start    int
	End      int
	Alias    string
}

// Reserved returns the rule's suffix range.
func (f FamilyRule) Reserved() domain.Range {
	return domain.Range{Start: f.Start, End: f.End}
}

// OverlapError reports two families claiming the same suffixes. The
// aggregation rules are inconsistent, so nothing gets scanned.
type OverlapError struct {
	Category string
	KeyA     string
	RangeA   domain.Range
	KeyB     string
	RangeB   domain.Range
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping family ranges in category %s: %s (%s) and %s (%s)",
		e.Category, e.KeyA, e.RangeA, e.KeyB, e.RangeB)
}

// Ruleset is the validated aggregation configuration: the known category
// table plus every declared family.
type Ruleset struct {
	categories map[string]CategoryRule
	families   map[string]FamilyRule
	byCategory map[string][]string // category code -> family keys, sorted
}

// NewRuleset validates the configured categories and families. Family
// ranges must stay inside the category's suffix space and must not overlap
// one another.
func NewRuleset(categories []CategoryRule, families []FamilyRule) (*Ruleset, error) {
	rs := &Ruleset{
		categories: make(map[string]CategoryRule, len(categories)),
		families:   make(map[string]FamilyRule, len(families)),
		byCategory: make(map[string][]string),
	}

	for _, c := range categories {
		if !domain.IsValidCode(c.Code) {
			return nil, fmt.Errorf("invalid category code: %q", c.Code)
		}
		if _, exists := rs.categories[c.Code]; exists {
			return nil, fmt.Errorf("duplicate category code: %s", c.Code)
		}
		if c.Floor < domain.SuffixMin || c.Floor > domain.SuffixMax {
			return nil, fmt.Errorf("category %s: floor %d outside %03d-%03d", c.Code, c.Floor, domain.SuffixMin, domain.SuffixMax)
		}
		rs.categories[c.Code] = c
	}

	for _, f := range families {
		if f.Key == "" {
			return nil, fmt.Errorf("family in category %q: missing key", f.Category)
		}
		if _, exists := rs.families[f.Key]; exists {
			return nil, fmt.Errorf("duplicate family key: %s", f.Key)
		}
		if _, known := rs.categories[f.Category]; !known {
			return nil, fmt.Errorf("family %s: unknown category %q", f.Key, f.Category)
		}
		if f.Start < domain.SuffixMin || f.End > domain.SuffixMax || f.Start > f.End {
			return nil, fmt.Errorf("family %s: invalid range %03d-%03d", f.Key, f.Start, f.End)
		}
		rs.families[f.Key] = f
		rs.byCategory[f.Category] = append(rs.byCategory[f.Category], f.Key)
	}

	codes := make([]string, 0, len(rs.byCategory))
	for code := range rs.byCategory {
		slices.Sort(rs.byCategory[code])
		codes = append(codes, code)
	}
	slices.Sort(codes)

	for _, code := range codes {
		keys := rs.byCategory[code]
		for i := 0; i < len(keys); i++ {
			for j := i + 1; j < len(keys); j++ {
				a, b := rs.families[keys[i]], rs.families[keys[j]]
				if a.Reserved().Overlaps(b.Reserved()) {
					return nil, &OverlapError{
						Category: code,
						KeyA:     a.Key,
						RangeA:   a.Reserved(),
						KeyB:     b.Key,
						RangeB:   b.Reserved(),
					}
				}
			}
		}
	}

	return rs, nil
}

// Category returns the rule for a code.
func (rs *Ruleset) Category(code string) (CategoryRule, bool) {
	rule, ok := rs.categories[code]
	return rule, ok
}

// Categories returns every known category rule, sorted by code.
func (rs *Ruleset) Categories() []CategoryRule {
	out := make([]CategoryRule, 0, len(rs.categories))
	for _, rule := range rs.categories {
		out = append(out, rule)
	}
	slices.SortFunc(out, func(a, b CategoryRule) int {
		if a.Code < b.Code {
			return -1
		}
		if a.Code > b.Code {
			return 1
		}
		return 0
	})
	return out
}

// Family returns the rule for a family key.
func (rs *Ruleset) Family(key string) (FamilyRule, bool) {
	rule, ok := rs.families[key]
	return rule, ok
}

// Families returns every family rule, sorted by key.
func (rs *Ruleset) Families() []FamilyRule {
	keys := make([]string, 0, len(rs.families))
	for key := range rs.families {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	out := make([]FamilyRule, len(keys))
	for i, key := range keys {
		out[i] = rs.families[key]
	}
	return out
}

// FamiliesFor returns the family rules of one category, sorted by key.
func (rs *Ruleset) FamiliesFor(code string) []FamilyRule {
	keys := rs.byCategory[code]
	out := make([]FamilyRule, len(keys))
	for i, key := range keys {
		out[i] = rs.families[key]
	}
	return out
}

// ReservedFor returns the reserved suffix ranges of a category.
func (rs *Ruleset) ReservedFor(code string) []domain.Range {
	keys := rs.byCategory[code]
	out := make([]domain.Range, len(keys))
	for i, key := range keys {
		out[i] = rs.families[key].Reserved()
	}
	return out
}

// FloorFor returns the allocation floor for a category code. Codes outside
// the table fall back to the default floor.
func (rs *Ruleset) FloorFor(code string) int {
	if rule, ok := rs.categories[code]; ok {
		return rule.Floor
	}
	return domain.DefaultFloor
}
