package mealplan

import (
	"strings"
	"testing"

	"github.com/horlamiedea/ura-health-backend/internal/catalog"
	"github.com/horlamiedea/ura-health-backend/internal/survey"
)

func TestGetStageTemplate(t *testing.T) {
	items := catalog.Generate("diabetes", survey.AnswerSet{})

	t.Run("TitleCarriesLevelAndLabel", func(t *testing.T) {
		tmpl := GetStageTemplate("diabetes", 2, items, survey.AnswerSet{})
		if tmpl.Title != "Diabetes plan - Level 2 (moderate)" {
			t.Errorf("Unexpected title: %s", tmpl.Title)
		}
	})

	t.Run("MealsFollowZeroCarbRules", func(t *testing.T) {
		tmpl := GetStageTemplate("diabetes", 2, items, survey.AnswerSet{})
		if !strings.Contains(tmpl.Breakfast, " with ") {
			t.Errorf("Expected composed breakfast, got %s", tmpl.Breakfast)
		}
		if !strings.Contains(strings.ToLower(tmpl.Lunch), "portion of") {
			t.Errorf("Expected portioned carb in lunch, got %s", tmpl.Lunch)
		}
		if tmpl.Dinner == tmpl.Breakfast {
			t.Error("Expected dinner to differ from breakfast")
		}
	})

	t.Run("HypertensionReusesCompositionWithOwnBullets", func(t *testing.T) {
		diabetes := GetStageTemplate("diabetes", 2, items, survey.AnswerSet{})
		hbp := GetStageTemplate("hypertension", 2, items, survey.AnswerSet{})
		if hbp.Breakfast != diabetes.Breakfast || hbp.Lunch != diabetes.Lunch || hbp.Dinner != diabetes.Dinner {
			t.Error("Expected hypertension to reuse the diabetes meal composition")
		}
		if len(hbp.Recommendation) == 0 || hbp.Recommendation[0] == diabetes.Recommendation[0] {
			t.Error("Expected hypertension-specific advisory bullets")
		}
	})

	t.Run("WeightLevelThreeSnackOverride", func(t *testing.T) {
		tmpl := GetStageTemplate("weight", 3, items, survey.AnswerSet{})
		if tmpl.Snack != "Herbal tea" {
			t.Errorf("Expected the literal snack override, got '%s'", tmpl.Snack)
		}
		tmpl = GetStageTemplate("weight", 2, items, survey.AnswerSet{})
		if tmpl.Snack == "Herbal tea" {
			t.Error("Expected the override only at level 3")
		}
	})

	t.Run("DetoxHasEarlyMorning", func(t *testing.T) {
		tmpl := GetStageTemplate("detox", 1, items, survey.AnswerSet{})
		if tmpl.EarlyMorning == "" {
			t.Error("Expected an early morning entry for detox")
		}
		if len(tmpl.Recommendation) == 0 {
			t.Error("Expected detox advisory bullets")
		}
	})

	t.Run("OutOfRangeLevelClamped", func(t *testing.T) {
		tmpl := GetStageTemplate("diabetes", 0, items, survey.AnswerSet{})
		if !strings.Contains(tmpl.Title, "Level 1 (mild)") {
			t.Errorf("Expected level clamped to 1, got title '%s'", tmpl.Title)
		}
	})
}

func TestPickRecommendedMeals(t *testing.T) {
	items := catalog.Generate("diabetes", survey.AnswerSet{})

	countClass := func(picked []catalog.Item, tag string) int {
		n := 0
		for _, it := range picked {
			if it.HasTag(tag) {
				n++
			}
		}
		return n
	}

	t.Run("LevelOneQuotas", func(t *testing.T) {
		picked := PickRecommendedMeals("diabetes", 1, items)
		if len(picked) != 24 {
			t.Fatalf("Expected 24 items, got %d", len(picked))
		}
		if n := countClass(picked, "protein"); n != 6 {
			t.Errorf("Expected 6 proteins, got %d", n)
		}
		if n := countClass(picked, "lunch-carb"); n != 6 {
			t.Errorf("Expected 6 carbs, got %d", n)
		}
	})

	t.Run("LevelThreeQuotas", func(t *testing.T) {
		picked := PickRecommendedMeals("diabetes", 3, items)
		if n := countClass(picked, "protein"); n != 8 {
			t.Errorf("Expected 8 proteins at level 3, got %d", n)
		}
		if n := countClass(picked, "lunch-carb"); n != 2 {
			t.Errorf("Expected 2 carbs at level 3, got %d", n)
		}
		if n := countClass(picked, "veg"); n != 8 {
			t.Errorf("Expected 8 vegetables, got %d", n)
		}
		if n := countClass(picked, "healthy-fat"); n != 4 {
			t.Errorf("Expected 4 fats, got %d", n)
		}
	})

	t.Run("CatalogOrderPreserved", func(t *testing.T) {
		picked := PickRecommendedMeals("diabetes", 1, items)
		if picked[0].Name != "Grilled eggs" {
			t.Errorf("Expected the first catalog protein first, got %s", picked[0].Name)
		}
	})

	t.Run("DuplicateIDsDropped", func(t *testing.T) {
		dup := append([]catalog.Item{}, items[0], items[0], items[0])
		picked := PickRecommendedMeals("diabetes", 1, dup)
		if len(picked) != 1 {
			t.Errorf("Expected duplicates collapsed to 1, got %d", len(picked))
		}
	})
}
