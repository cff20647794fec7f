package mealplan

import (
	"fmt"
	"strings"

	"github.com/horlamiedea/ura-health-backend/internal/assessment"
	"github.com/horlamiedea/ura-health-backend/internal/catalog"
	"github.com/horlamiedea/ura-health-backend/internal/survey"
)

const (
	previewDays = 2
	fullDays    = 30

	// dinnerOffset decorrelates breakfast and dinner on the same day.
	dinnerOffset = 13
	// maxShift bounds the uniqueness resample; a duplicate day is accepted
	// once the budget is spent.
	maxShift = 10
)

// pools holds the selected catalog items split into the four food classes.
type pools struct {
	proteins []catalog.Item
	carbs    []catalog.Item
	vegs     []catalog.Item
	fats     []catalog.Item
}

func splitClasses(items []catalog.Item) pools {
	var p pools
	for _, item := range items {
		switch {
		case item.HasTag("protein"):
			p.proteins = append(p.proteins, item)
		case item.HasTag("lunch-carb") || item.HasTag("carb"):
			p.carbs = append(p.carbs, item)
		case item.HasTag("veg") || item.HasTag("vegetables"):
			p.vegs = append(p.vegs, item)
		case item.HasTag("healthy-fat"):
			p.fats = append(p.fats, item)
		}
	}
	return p
}

func namedItems(class string, names ...string) []catalog.Item {
	items := make([]catalog.Item, 0, len(names))
	for _, name := range names {
		items = append(items, catalog.Item{Name: name, Tags: []string{class}})
	}
	return items
}

// backfillPreview substitutes one safe default per empty class.
func backfillPreview(p pools, keywords []string) pools {
	if len(p.proteins) == 0 {
		name := catalog.ChooseFirstSafe(
			[]string{"Grilled chicken", "Roasted turkey", "Tofu (plant-based)"},
			keywords, "Lean protein (grilled)")
		p.proteins = namedItems("protein", name)
	}
	if len(p.vegs) == 0 {
		name := catalog.ChooseFirstSafe(
			[]string{"Steamed spinach (efo)", "Cabbage salad", "Sautéed kale"},
			keywords, "Steamed leafy vegetables")
		p.vegs = namedItems("veg", name)
	}
	if len(p.fats) == 0 {
		name := catalog.ChooseFirstSafe(
			[]string{"Olive oil (1 tsp)", "Avocado (quarter)", "Flaxseed (1 tbsp)"},
			keywords, "Olive oil (1 tsp)")
		p.fats = namedItems("healthy-fat", name)
	}
	if len(p.carbs) == 0 {
		name := catalog.ChooseFirstSafe(
			[]string{"Small portion of brown rice", "Small portion of boiled yam", "Small portion of sweet potato"},
			keywords, "Small portion of brown rice")
		p.carbs = namedItems("lunch-carb", name)
	}
	return p
}

// backfillFull substitutes two safe defaults per empty class so the 30-day
// plan keeps some variety even with an empty selection.
func backfillFull(p pools, keywords []string) pools {
	if len(p.proteins) == 0 {
		p.proteins = namedItems("protein",
			catalog.ChooseFirstSafe(
				[]string{"Grilled chicken", "Roasted turkey", "Tofu (plant-based)"},
				keywords, "Lean protein (grilled)"),
			catalog.ChooseFirstSafe(
				[]string{"Boiled chicken", "Pan-seared tilapia", "Tofu (plant-based)"},
				keywords, "Lean protein (boiled)"),
		)
	}
	if len(p.vegs) == 0 {
		p.vegs = namedItems("veg",
			catalog.ChooseFirstSafe(
				[]string{"Steamed spinach (efo)", "Cabbage salad", "Sautéed kale"},
				keywords, "Steamed leafy vegetables"),
			catalog.ChooseFirstSafe(
				[]string{"Okra stir-fry", "Lettuce salad", "Broccoli (steamed)"},
				keywords, "Mixed vegetables (steamed)"),
		)
	}
	if len(p.fats) == 0 {
		p.fats = namedItems("healthy-fat",
			catalog.ChooseFirstSafe(
				[]string{"Olive oil (1 tsp)", "Avocado (quarter)", "Flaxseed (1 tbsp)"},
				keywords, "Olive oil (1 tsp)"),
			catalog.ChooseFirstSafe(
				[]string{"Groundnuts (handful)", "Walnuts (handful)", "Chia seeds (1 tbsp)"},
				keywords, "Olive oil (1 tsp)"),
		)
	}
	if len(p.carbs) == 0 {
		p.carbs = namedItems("lunch-carb",
			catalog.ChooseFirstSafe(
				[]string{"Small portion of brown rice", "Small portion of boiled yam", "Small portion of sweet potato"},
				keywords, "Small portion of brown rice"),
			catalog.ChooseFirstSafe(
				[]string{"Small portion of ofada rice", "Small portion of plantain", "Small portion of couscous"},
				keywords, "Small portion of boiled yam"),
		)
	}
	return p
}

// zeroCarbText composes a protein + vegetable + healthy-fat meal. The slot
// multipliers (1, 2, 3) decorrelate repeats across days.
func (p pools) zeroCarbText(i int) string {
	protein := p.proteins[i%len(p.proteins)].Name
	veg := p.vegs[(i*2)%len(p.vegs)].Name
	fat := p.fats[(i*3)%len(p.fats)].Name
	return fmt.Sprintf("%s with %s (%s)", protein, strings.ToLower(veg), fat)
}

// lunchText composes a single-carb lunch. When portionPrefix is non-empty it
// is prepended to carbohydrate names that do not already carry a portion
// phrase.
func (p pools) lunchText(i int, portionPrefix string) string {
	carb := p.carbs[i%len(p.carbs)].Name
	if portionPrefix != "" && !strings.Contains(strings.ToLower(carb), "portion of") {
		carb = portionPrefix + " " + carb
	}
	protein := p.proteins[(i+1)%len(p.proteins)].Name
	veg := p.vegs[(i+2)%len(p.vegs)].Name
	return fmt.Sprintf("%s with %s and %s", carb, strings.ToLower(protein), strings.ToLower(veg))
}

// GeneratePreviewPlan builds the deterministic 2-day preview from the
// selected items. Allergy filtering runs first; empty classes fall back to
// safe defaults.
func GeneratePreviewPlan(category string, selected []catalog.Item, answers survey.AnswerSet, result assessment.Result) Plan {
	keywords := catalog.AllergyKeywords(answers)
	p := splitClasses(catalog.FilterAllergens(selected, keywords))
	p = backfillPreview(p, keywords)

	return Plan{Days: []DayPlan{
		{Day: 1, Breakfast: p.zeroCarbText(0), Lunch: p.lunchText(0, ""), Dinner: p.zeroCarbText(1), Snacks: snacks()},
		{Day: 2, Breakfast: p.zeroCarbText(2), Lunch: p.lunchText(1, ""), Dinner: p.zeroCarbText(3), Snacks: snacks()},
	}}
}

// GenerateFullPlan builds the deterministic 30-day plan. Severity level 2+
// tightens lunch portions, and exact (breakfast, lunch, dinner) triplets are
// not repeated across days while the shift budget lasts.
func GenerateFullPlan(category string, selected []catalog.Item, answers survey.AnswerSet, result assessment.Result) Plan {
	keywords := catalog.AllergyKeywords(answers)
	p := splitClasses(catalog.FilterAllergens(selected, keywords))
	p = backfillFull(p, keywords)

	prefix := portionPrefix(result.Level)

	days := make([]DayPlan, 0, fullDays)
	seen := make(map[string]bool, fullDays)
	for i := 0; i < fullDays; i++ {
		breakfast := p.zeroCarbText(i)
		lunch := p.lunchText(i, prefix)
		dinner := p.zeroCarbText(i + dinnerOffset)

		for shift := 1; seen[tripletKey(breakfast, lunch, dinner)] && shift <= maxShift; shift++ {
			breakfast = p.zeroCarbText(i + shift)
			lunch = p.lunchText(i+shift, prefix)
			dinner = p.zeroCarbText(i + dinnerOffset + shift)
		}
		seen[tripletKey(breakfast, lunch, dinner)] = true

		days = append(days, DayPlan{
			Day:       i + 1,
			Breakfast: breakfast,
			Lunch:     lunch,
			Dinner:    dinner,
			Snacks:    snacks(),
		})
	}
	return Plan{Days: days}
}

func portionPrefix(level int) string {
	if level >= 2 {
		return "small portion of"
	}
	return "moderate portion of"
}

func tripletKey(breakfast, lunch, dinner string) string {
	return breakfast + "\x00" + lunch + "\x00" + dinner
}
