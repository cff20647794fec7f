package mealplan

import (
	"time"

	"github.com/horlamiedea/ura-health-backend/internal/assessment"
	"github.com/horlamiedea/ura-health-backend/internal/catalog"
	"github.com/horlamiedea/ura-health-backend/internal/survey"
)

// DayPlan is one day of meals. Breakfast and dinner are zero-carb
// (protein + vegetable + healthy fat); lunch carries exactly one
// carbohydrate.
type DayPlan struct {
	Day       int      `json:"day"`
	Breakfast string   `json:"breakfast"`
	Lunch     string   `json:"lunch"`
	Dinner    string   `json:"dinner"`
	Snacks    []string `json:"snacks"`
}

// Plan is an ordered list of day plans.
type Plan struct {
	Days []DayPlan `json:"days"`
}

// Bundle ties one survey submission to its assessment, generated catalog,
// selection and plans. Preview and full plans are generated at most once
// each; regenerating returns the stored value unchanged.
type Bundle struct {
	ID          string
	Email       string
	Category    string
	Answers     survey.AnswerSet
	Assessment  assessment.Result
	Catalog     []catalog.Item
	SelectedIDs []int
	Preview     *Plan
	Full        *Plan
	Paid        bool
	PaymentRef  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SelectedItems resolves the bundle's selected catalog ids back to items,
// preserving catalog order and ignoring unknown ids.
func (b *Bundle) SelectedItems() []catalog.Item {
	if len(b.SelectedIDs) == 0 {
		return nil
	}
	wanted := make(map[int]bool, len(b.SelectedIDs))
	for _, id := range b.SelectedIDs {
		wanted[id] = true
	}
	var items []catalog.Item
	for _, item := range b.Catalog {
		if wanted[item.ID] {
			items = append(items, item)
		}
	}
	return items
}

var fixedSnacks = []string{"Herbal tea (morning)", "Herbal tea (with lunch)", "Herbal tea (night)"}

func snacks() []string {
	out := make([]string, len(fixedSnacks))
	copy(out, fixedSnacks)
	return out
}
