package mealplan

import (
	"strings"
	"testing"

	"github.com/horlamiedea/ura-health-backend/internal/assessment"
	"github.com/horlamiedea/ura-health-backend/internal/catalog"
	"github.com/horlamiedea/ura-health-backend/internal/survey"
)

func item(id int, name, tag string) catalog.Item {
	return catalog.Item{ID: id, Name: name, Tags: []string{"nigerian", tag}}
}

func sampleSelection() []catalog.Item {
	return []catalog.Item{
		item(1, "Grilled chicken breast", "protein"),
		item(2, "Boiled eggs", "protein"),
		item(3, "Steamed ugu (pumpkin leaves)", "veg"),
		item(4, "Sautéed cabbage", "veg"),
		item(5, "Small portion of brown rice", "lunch-carb"),
		item(6, "Boiled yam", "lunch-carb"),
		item(7, "Avocado (half)", "healthy-fat"),
		item(8, "Olive oil (1 tbsp)", "healthy-fat"),
	}
}

func mild() assessment.Result {
	return assessment.Result{Condition: "diabetes", Level: 1, Label: "mild"}
}

func TestGeneratePreviewPlan(t *testing.T) {
	t.Run("TwoDaysWithFixedSnacks", func(t *testing.T) {
		plan := GeneratePreviewPlan("diabetes", sampleSelection(), survey.AnswerSet{}, mild())
		if len(plan.Days) != 2 {
			t.Fatalf("Expected 2 days, got %d", len(plan.Days))
		}
		for _, day := range plan.Days {
			if len(day.Snacks) != 3 || day.Snacks[0] != "Herbal tea (morning)" ||
				day.Snacks[1] != "Herbal tea (with lunch)" || day.Snacks[2] != "Herbal tea (night)" {
				t.Errorf("Expected the fixed herbal tea snacks, got %v", day.Snacks)
			}
		}
	})

	t.Run("MealComposition", func(t *testing.T) {
		plan := GeneratePreviewPlan("diabetes", sampleSelection(), survey.AnswerSet{}, mild())
		day1 := plan.Days[0]
		if day1.Breakfast != "Grilled chicken breast with steamed ugu (pumpkin leaves) (Avocado (half))" {
			t.Errorf("Unexpected breakfast: %s", day1.Breakfast)
		}
		if day1.Lunch != "Small portion of brown rice with boiled eggs and sautéed cabbage" {
			t.Errorf("Unexpected lunch: %s", day1.Lunch)
		}
		if day1.Dinner != "Boiled eggs with sautéed cabbage (Olive oil (1 tbsp))" {
			t.Errorf("Unexpected dinner: %s", day1.Dinner)
		}
	})

	t.Run("DeterministicAcrossCalls", func(t *testing.T) {
		a := GeneratePreviewPlan("diabetes", sampleSelection(), survey.AnswerSet{}, mild())
		b := GeneratePreviewPlan("diabetes", sampleSelection(), survey.AnswerSet{}, mild())
		for i := range a.Days {
			if a.Days[i].Breakfast != b.Days[i].Breakfast || a.Days[i].Lunch != b.Days[i].Lunch || a.Days[i].Dinner != b.Days[i].Dinner {
				t.Fatalf("Expected identical plans, day %d differs", i+1)
			}
		}
	})

	t.Run("EmptySelectionBackfilled", func(t *testing.T) {
		plan := GeneratePreviewPlan("diabetes", nil, survey.AnswerSet{}, mild())
		if plan.Days[0].Breakfast != "Grilled chicken with steamed spinach (efo) (Olive oil (1 tsp))" {
			t.Errorf("Expected safe-default breakfast, got %s", plan.Days[0].Breakfast)
		}
		if !strings.HasPrefix(plan.Days[0].Lunch, "Small portion of brown rice with ") {
			t.Errorf("Expected safe-default carb in lunch, got %s", plan.Days[0].Lunch)
		}
	})

	t.Run("AllergyRemovesItemsAndGuidesBackfill", func(t *testing.T) {
		answers := survey.AnswerSet{"Any food allergies or intolerances?": "chicken"}
		selection := []catalog.Item{
			item(1, "Grilled chicken breast", "protein"),
			item(2, "Steamed ugu (pumpkin leaves)", "veg"),
			item(3, "Small portion of brown rice", "lunch-carb"),
			item(4, "Avocado (half)", "healthy-fat"),
		}
		plan := GeneratePreviewPlan("diabetes", selection, answers, mild())
		if strings.Contains(strings.ToLower(plan.Days[0].Breakfast), "chicken") {
			t.Errorf("Expected chicken to be filtered, got %s", plan.Days[0].Breakfast)
		}
		if !strings.HasPrefix(plan.Days[0].Breakfast, "Roasted turkey") {
			t.Errorf("Expected the first safe default protein, got %s", plan.Days[0].Breakfast)
		}
	})
}

func TestGenerateFullPlan(t *testing.T) {
	t.Run("ThirtyOrderedDays", func(t *testing.T) {
		plan := GenerateFullPlan("diabetes", sampleSelection(), survey.AnswerSet{}, mild())
		if len(plan.Days) != 30 {
			t.Fatalf("Expected 30 days, got %d", len(plan.Days))
		}
		for i, day := range plan.Days {
			if day.Day != i+1 {
				t.Fatalf("Expected day %d, got %d", i+1, day.Day)
			}
			if len(day.Snacks) != 3 {
				t.Fatalf("Expected 3 snacks on day %d, got %d", day.Day, len(day.Snacks))
			}
		}
	})

	t.Run("PortionPrefixFollowsLevel", func(t *testing.T) {
		selection := []catalog.Item{
			item(1, "Grilled chicken breast", "protein"),
			item(2, "Steamed ugu (pumpkin leaves)", "veg"),
			item(3, "Boiled yam", "lunch-carb"),
			item(4, "Avocado (half)", "healthy-fat"),
		}
		moderate := assessment.Result{Condition: "diabetes", Level: 2, Label: "moderate"}
		plan := GenerateFullPlan("diabetes", selection, survey.AnswerSet{}, moderate)
		if !strings.HasPrefix(plan.Days[0].Lunch, "small portion of Boiled yam") {
			t.Errorf("Expected small portion prefix at level 2, got %s", plan.Days[0].Lunch)
		}

		plan = GenerateFullPlan("diabetes", selection, survey.AnswerSet{}, mild())
		if !strings.HasPrefix(plan.Days[0].Lunch, "moderate portion of Boiled yam") {
			t.Errorf("Expected moderate portion prefix at level 1, got %s", plan.Days[0].Lunch)
		}
	})

	t.Run("ExistingPortionPhraseNotDoubled", func(t *testing.T) {
		plan := GenerateFullPlan("diabetes", sampleSelection(), survey.AnswerSet{}, mild())
		for _, day := range plan.Days {
			if strings.Contains(day.Lunch, "portion of Small portion of") {
				t.Fatalf("Portion phrase doubled on day %d: %s", day.Day, day.Lunch)
			}
		}
	})

	t.Run("TripletsUniqueWithVariedPools", func(t *testing.T) {
		items := catalog.Generate("diabetes", survey.AnswerSet{})
		plan := GenerateFullPlan("diabetes", items, survey.AnswerSet{}, mild())
		seen := map[string]bool{}
		for _, day := range plan.Days {
			key := day.Breakfast + "|" + day.Lunch + "|" + day.Dinner
			if seen[key] {
				t.Fatalf("Duplicate triplet on day %d: %s", day.Day, key)
			}
			seen[key] = true
		}
	})

	t.Run("SingleItemPoolsAcceptDuplicates", func(t *testing.T) {
		selection := []catalog.Item{
			item(1, "Grilled chicken breast", "protein"),
			item(2, "Steamed ugu (pumpkin leaves)", "veg"),
			item(3, "Boiled yam", "lunch-carb"),
			item(4, "Avocado (half)", "healthy-fat"),
		}
		plan := GenerateFullPlan("diabetes", selection, survey.AnswerSet{}, mild())
		if len(plan.Days) != 30 {
			t.Fatalf("Expected 30 days even with duplicates, got %d", len(plan.Days))
		}
		if plan.Days[0].Breakfast != plan.Days[29].Breakfast {
			t.Errorf("Expected single-item pools to repeat the same breakfast")
		}
	})
}
