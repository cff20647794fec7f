package mealplan

import (
	"fmt"

	"github.com/horlamiedea/ura-health-backend/internal/assessment"
	"github.com/horlamiedea/ura-health-backend/internal/catalog"
	"github.com/horlamiedea/ura-health-backend/internal/survey"
)

// StageTemplate is a narrative single-day template for a category and
// severity level, shown alongside the recommended meals.
type StageTemplate struct {
	Title          string   `json:"title"`
	EarlyMorning   string   `json:"early_morning,omitempty"`
	Breakfast      string   `json:"breakfast"`
	Lunch          string   `json:"lunch"`
	Snack          string   `json:"snack"`
	Dinner         string   `json:"dinner"`
	Recommendation []string `json:"recommendation"`
}

var categoryTitles = map[string]string{
	survey.CategoryDiabetes: "Diabetes",
	survey.CategoryHBP:      "Blood pressure",
	survey.CategoryWeight:   "Weight management",
	survey.CategoryDetox:    "Detox",
}

var diabetesBullets = map[int][]string{
	1: {
		"Limit added sugars and sugary drinks",
		"Prefer low-GI carbohydrates, at lunch only",
		"Walk at least 30 minutes daily",
		"Re-check fasting blood sugar within 3 months",
	},
	2: {
		"Avoid added sugars and refined carbohydrates",
		"Keep lunch carbohydrate portions small",
		"Monitor fasting blood sugar weekly",
		"Walk at least 30 minutes daily",
		"Discuss an HbA1c test with your clinician",
	},
	3: {
		"Strictly avoid sugars and refined carbohydrates",
		"Keep all carbohydrate portions small",
		"Monitor fasting blood sugar daily",
		"See a clinician promptly for medication review",
		"Stay hydrated; prefer water and unsweetened herbal tea",
	},
}

var hbpBullets = map[int][]string{
	1: {
		"Reduce added salt; avoid seasoning cubes",
		"Limit fried and processed foods",
		"Walk at least 30 minutes daily",
		"Re-check blood pressure within a month",
	},
	2: {
		"Cut added salt; avoid seasoning cubes and canned foods",
		"Avoid fried foods and excess palm oil",
		"Check blood pressure weekly",
		"Limit alcohol and stop smoking",
		"Manage stress with regular rest",
	},
	3: {
		"Eliminate added salt where possible",
		"Avoid fried and processed foods entirely",
		"Check blood pressure daily and keep a log",
		"See a clinician promptly for medication review",
		"Avoid alcohol and tobacco",
	},
}

var weightBullets = map[int][]string{
	1: {
		"Keep carbohydrate portions moderate",
		"Avoid sugary drinks and late-night snacking",
		"Walk at least 30 minutes daily",
		"Weigh yourself weekly",
	},
	2: {
		"Keep carbohydrate portions small",
		"Cut sugary drinks and fried foods",
		"Aim for 45 minutes of activity daily",
		"Weigh yourself weekly and track progress",
	},
	3: {
		"Keep carbohydrate portions small, and only at lunch",
		"Cut sugary drinks, fried foods and snacks entirely",
		"Aim for 45-60 minutes of activity daily",
		"Discuss a supervised weight-loss plan with a clinician",
	},
}

var detoxBullets = []string{
	"Drink plenty of water through the day",
	"Prefer steamed vegetables and lean proteins",
	"Avoid alcohol, sugary drinks and processed foods",
	"Take herbal tea morning and night",
}

// GetStageTemplate renders the single-day template for a category and level.
// Hypertension and weight reuse the diabetes meal composition for the same
// level; only the advisory bullets differ, plus the weight level-3 snack
// override.
func GetStageTemplate(category string, level int, items []catalog.Item, answers survey.AnswerSet) StageTemplate {
	canonical := survey.Canonical(category)
	if level < 1 || level > 3 {
		level = 1
	}

	keywords := catalog.AllergyKeywords(answers)
	p := splitClasses(catalog.FilterAllergens(items, keywords))
	p = backfillPreview(p, keywords)

	title := categoryTitles[canonical]
	if title == "" {
		title = "Wellness"
	}

	tmpl := StageTemplate{
		Title:     fmt.Sprintf("%s plan - Level %d (%s)", title, level, assessment.LabelForLevel(level)),
		Breakfast: p.zeroCarbText(0),
		Lunch:     p.lunchText(0, portionPrefix(level)),
		Snack:     "Herbal tea (unsweetened)",
		Dinner:    p.zeroCarbText(1),
	}

	switch canonical {
	case survey.CategoryDiabetes:
		tmpl.Recommendation = diabetesBullets[level]
	case survey.CategoryHBP:
		tmpl.Recommendation = hbpBullets[level]
	case survey.CategoryWeight:
		tmpl.Recommendation = weightBullets[level]
		if level == 3 {
			tmpl.Snack = "Herbal tea"
		}
	case survey.CategoryDetox:
		tmpl.EarlyMorning = "Warm water (1 glass) on waking"
		tmpl.Recommendation = detoxBullets
	default:
		tmpl.Recommendation = detoxBullets
	}

	return tmpl
}
