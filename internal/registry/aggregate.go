package registry

import (
	"slices"
	"time"

	"partdex/internal/domain"
)

// Result is the aggregated registry. It is pure data: identical records,
// rules, and timestamp always produce an identical Result.
type Result struct {
	GeneratedAt time.Time
	RunID       string
	Components  []domain.Component
	Categories  []domain.Category
	Families    []domain.Family
	Warnings    []domain.Issue
	Errors      []domain.Issue
}

// HasErrors reports whether the run hit correctness violations (duplicates,
// exhausted ranges). Warnings alone do not count.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// Category returns the descriptor for a code.
func (r *Result) Category(code string) (domain.Category, bool) {
	for _, c := range r.Categories {
		if c.Code == code {
			return c, true
		}
	}
	return domain.Category{}, false
}

// Family returns the descriptor for a family key.
func (r *Result) Family(key string) (domain.Family, bool) {
	for _, f := range r.Families {
		if f.Key == key {
			return f, true
		}
	}
	return domain.Family{}, false
}

// Component returns the record with the given ID.
func (r *Result) Component(id string) (domain.Component, bool) {
	for _, c := range r.Components {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Component{}, false
}

// Aggregate groups component records into category and family descriptors
// and computes the next free ID for each. Every configured category appears
// in the output, members or not; codes found in content but missing from
// the table get an ad hoc descriptor plus an unknown-category warning.
func Aggregate(components []domain.Component, rules *Ruleset, generatedAt time.Time) *Result {
	result := &Result{GeneratedAt: generatedAt}

	sorted := slices.Clone(components)
	domain.SortComponents(sorted)
	result.Components = sorted

	byCode := make(map[string][]domain.Component)
	for _, c := range sorted {
		byCode[c.Code] = append(byCode[c.Code], c)
	}

	for _, rule := range rules.Categories() {
		aggregateCategory(result, rule, true, byCode[rule.Code], rules.FamiliesFor(rule.Code))
		delete(byCode, rule.Code)
	}

	// Leftover codes have no table entry: count them, flag every record.
	adhoc := make([]string, 0, len(byCode))
	for code := range byCode {
		adhoc = append(adhoc, code)
	}
	slices.Sort(adhoc)
	for _, code := range adhoc {
		for _, c := range byCode[code] {
			result.Warnings = append(result.Warnings,
				domain.NewIssue(domain.IssueUnknownCategory, "%s at %s", c.ID, c.Path))
		}
		rule := CategoryRule{Code: code, Floor: domain.DefaultFloor}
		aggregateCategory(result, rule, false, byCode[code], nil)
	}

	domain.SortCategories(result.Categories)
	domain.SortFamilies(result.Families)
	return result
}

func aggregateCategory(result *Result, rule CategoryRule, known bool, comps []domain.Component, famRules []FamilyRule) {
	cat := domain.Category{
		Code:  rule.Code,
		Title: rule.Title,
		Known: known,
		Floor: rule.Floor,
	}

	used := make(map[int]bool, len(comps))
	for _, c := range comps {
		if used[c.Suffix] {
			continue
		}
		used[c.Suffix] = true
		cat.Members = append(cat.Members, c.ID)
	}

	reserved := make([]domain.Range, len(famRules))
	for i, f := range famRules {
		reserved[i] = f.Reserved()
	}

	if n, err := domain.NextCategorySuffix(used, rule.Floor, reserved); err != nil {
		result.Errors = append(result.Errors,
			domain.NewIssue(domain.IssueCategoryExhausted, "category %s has no free ID", rule.Code))
	} else {
		cat.NextID = domain.FormatID(rule.Code, n)
	}

	for _, famRule := range famRules {
		fam := domain.Family{
			Key:      famRule.Key,
			Code:     famRule.Category,
			Start:    famRule.Start,
			End:      famRule.End,
			Alias:    famRule.Alias,
			AnchorID: domain.FormatID(famRule.Category, famRule.Start),
		}
		for _, id := range cat.Members {
			parsed, err := domain.ParseID(id)
			if err != nil {
				continue
			}
			if famRule.Reserved().Contains(parsed.Suffix) {
				fam.Members = append(fam.Members, id)
			}
		}
		if n, err := domain.NextFamilySuffix(used, famRule.Reserved()); err != nil {
			fam.Exhausted = true
			result.Errors = append(result.Errors,
				domain.NewIssue(domain.IssueFamilyExhausted, "family %s (%s) has no free ID", famRule.Key, famRule.Reserved()))
		} else {
			fam.NextID = domain.FormatID(famRule.Category, n)
			cat.NextByFamily = append(cat.NextByFamily, domain.FamilyNext{Key: fam.Key, ID: fam.NextID})
		}
		result.Families = append(result.Families, fam)
	}

	result.Categories = append(result.Categories, cat)
}
