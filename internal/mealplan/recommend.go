package mealplan

import "github.com/horlamiedea/ura-health-backend/internal/catalog"

// recommendedLimit caps the recommended subset shown to the user.
const recommendedLimit = 24

// PickRecommendedMeals selects a severity-scaled subset of the catalog:
// stricter levels get more protein and fewer carbohydrates. Items are taken
// in catalog order, deduplicated by id, and the concatenation is truncated
// to the limit.
func PickRecommendedMeals(category string, level int, items []catalog.Item) []catalog.Item {
	proteinQuota := 6
	if level >= 2 {
		proteinQuota = 8
	}
	vegQuota := 8
	fatQuota := 4
	carbQuota := 6
	switch {
	case level >= 3:
		carbQuota = 2
	case level == 2:
		carbQuota = 4
	}

	p := splitClasses(items)

	picked := make([]catalog.Item, 0, recommendedLimit)
	seen := map[int]bool{}
	appendClass := func(pool []catalog.Item, quota int) {
		for _, item := range pool {
			if quota == 0 {
				return
			}
			if seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			picked = append(picked, item)
			quota--
		}
	}

	appendClass(p.proteins, proteinQuota)
	appendClass(p.vegs, vegQuota)
	appendClass(p.fats, fatQuota)
	appendClass(p.carbs, carbQuota)

	if len(picked) > recommendedLimit {
		picked = picked[:recommendedLimit]
	}
	return picked
}
