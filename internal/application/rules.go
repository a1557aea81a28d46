package application

import (
	"partdex/internal/config"
	"partdex/internal/domain"
	"partdex/internal/registry"
)

// BuildRuleset converts configured categories and families into a
// validated registry ruleset. Rule violations, overlapping family ranges
// included, surface here before any catalog file is scanned.
func BuildRuleset(cfg *config.Config) (*registry.Ruleset, error) {
	categories := make([]registry.CategoryRule, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		floor := domain.DefaultFloor
		if c.Floor != nil {
			floor = *c.Floor
		}
		categories = append(categories, registry.CategoryRule{
			Code:  c.Code,
			Title: c.Title,
			Floor: floor,
		})
	}

	families := make([]registry.FamilyRule, 0, len(cfg.Families))
	for _, f := range cfg.Families {
		families = append(families, registry.FamilyRule{
			Key:      f.Key,
			Category: f.Category,
			Start:    f.Start,
			End:      f.End,
			Alias:    f.Alias,
		})
	}

	return registry.NewRuleset(categories, families)
}
