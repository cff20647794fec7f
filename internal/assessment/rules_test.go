package assessment

import (
	"strings"
	"testing"

	"github.com/horlamiedea/ura-health-backend/internal/survey"
)

func TestClassifyDiabetes(t *testing.T) {
	t.Run("FBS200IsSevere", func(t *testing.T) {
		res := Deterministic("diabetes", survey.AnswerSet{"Last known blood sugar reading (Fasting):": "200 mg/dL"})
		if res.Level != 3 || res.Label != "severe" {
			t.Errorf("Expected level 3 'severe', got %d '%s'", res.Level, res.Label)
		}
	})

	t.Run("FBS150IsModerate", func(t *testing.T) {
		res := Deterministic("diabetes", survey.AnswerSet{"Last known blood sugar reading (Fasting):": "150"})
		if res.Level != 2 || res.Label != "moderate" {
			t.Errorf("Expected level 2 'moderate', got %d '%s'", res.Level, res.Label)
		}
	})

	t.Run("FBS110IsMild", func(t *testing.T) {
		res := Deterministic("diabetes", survey.AnswerSet{"Last known blood sugar reading (Fasting):": "110"})
		if res.Level != 1 || res.Label != "mild" {
			t.Errorf("Expected level 1 'mild', got %d '%s'", res.Level, res.Label)
		}
		if !strings.Contains(res.Reasoning, "100-125") {
			t.Errorf("Expected reasoning to mention the 100-125 band, got '%s'", res.Reasoning)
		}
	})

	t.Run("WorstMetricWins", func(t *testing.T) {
		res := Deterministic("diabetes", survey.AnswerSet{
			"Last known blood sugar reading (Fasting):": "110",
			"Last known HbA1c (if tested):":             "8.2%",
		})
		if res.Level != 3 {
			t.Errorf("Expected HbA1c 8.2 to raise level to 3, got %d", res.Level)
		}
	})

	t.Run("BelowThresholdFBSDefaultsToInsufficient", func(t *testing.T) {
		res := Deterministic("diabetes", survey.AnswerSet{"Last known blood sugar reading (Fasting):": "90"})
		if res.Level != 1 {
			t.Errorf("Expected level 1, got %d", res.Level)
		}
		if !strings.Contains(res.Reasoning, "Insufficient metrics") {
			t.Errorf("Expected 'Insufficient metrics' reasoning, got '%s'", res.Reasoning)
		}
	})

	t.Run("BPNotedButDoesNotUpstage", func(t *testing.T) {
		res := Deterministic("diabetes", survey.AnswerSet{
			"Last known blood sugar reading (Fasting):":  "110",
			"Blood pressure (last reading, if known):":   "170 / 105 mmHg",
		})
		if res.Level != 1 {
			t.Errorf("Expected BP alone not to change the level, got %d", res.Level)
		}
		if res.Metrics["bp"] != "170/105" {
			t.Errorf("Expected bp metric '170/105', got %v", res.Metrics["bp"])
		}
		if !strings.Contains(res.Reasoning, "BP reading noted") {
			t.Errorf("Expected BP note in reasoning, got '%s'", res.Reasoning)
		}
	})

	t.Run("MalformedFieldsDegrade", func(t *testing.T) {
		res := Deterministic("diabetes", survey.AnswerSet{
			"Last known blood sugar reading (Fasting):": "not tested",
			"Last known HbA1c (if tested):":             "",
		})
		if res.Level != 1 {
			t.Errorf("Expected level 1 for unparseable metrics, got %d", res.Level)
		}
		if res.Metrics["fbs_mg_dl"] != nil {
			t.Errorf("Expected nil fbs metric, got %v", res.Metrics["fbs_mg_dl"])
		}
	})
}

func TestClassifyHBP(t *testing.T) {
	t.Run("SystolicRuleFiresFirst", func(t *testing.T) {
		res := Deterministic("hbp", survey.AnswerSet{"Current Blood Pressure Reading:": "165/95"})
		if res.Level != 3 {
			t.Errorf("Expected 165/95 to be level 3, got %d", res.Level)
		}
	})

	t.Run("Stage1IsMild", func(t *testing.T) {
		res := Deterministic("hypertension", survey.AnswerSet{"Current Blood Pressure Reading:": "135/82"})
		if res.Level != 1 {
			t.Errorf("Expected 135/82 to be level 1, got %d", res.Level)
		}
	})

	t.Run("DiastolicAloneCanRaise", func(t *testing.T) {
		res := Deterministic("hbp", survey.AnswerSet{"Current Blood Pressure Reading:": "125/95"})
		if res.Level != 2 {
			t.Errorf("Expected diastolic 95 to be level 2, got %d", res.Level)
		}
	})

	t.Run("NoReadingDefaultsToMild", func(t *testing.T) {
		res := Deterministic("hbp", survey.AnswerSet{})
		if res.Level != 1 {
			t.Errorf("Expected level 1 without a reading, got %d", res.Level)
		}
		if !strings.Contains(res.Reasoning, "No BP reading provided") {
			t.Errorf("Expected explanatory note, got '%s'", res.Reasoning)
		}
		if res.Metrics["bp"] != nil {
			t.Errorf("Expected nil bp metric, got %v", res.Metrics["bp"])
		}
	})

	t.Run("BelowThresholdIsMild", func(t *testing.T) {
		res := Deterministic("hbp", survey.AnswerSet{"Current Blood Pressure Reading:": "118/76"})
		if res.Level != 1 {
			t.Errorf("Expected level 1 below 130/80, got %d", res.Level)
		}
		if !strings.Contains(res.Reasoning, "below 130/80") {
			t.Errorf("Expected below-threshold note, got '%s'", res.Reasoning)
		}
	})
}

func TestClassifyWeight(t *testing.T) {
	t.Run("ComputedBMISevere", func(t *testing.T) {
		res := Deterministic("weight", survey.AnswerSet{
			"Current Weight (kg):": "120",
			"Height (cm):":         "170",
		})
		if res.Level != 3 {
			t.Errorf("Expected BMI 41.5 to be level 3, got %d", res.Level)
		}
		if res.Metrics["bmi"] != 41.5 {
			t.Errorf("Expected bmi metric 41.5, got %v", res.Metrics["bmi"])
		}
	})

	t.Run("LabeledBMIWins", func(t *testing.T) {
		res := Deterministic("obesity", survey.AnswerSet{
			"Body Mass Index (BMI):": "32",
			"Current Weight (kg):":   "60",
			"Height (cm):":           "170",
		})
		if res.Level != 2 {
			t.Errorf("Expected labeled BMI 32 to be level 2, got %d", res.Level)
		}
	})

	t.Run("ZeroHeightGuard", func(t *testing.T) {
		res := Deterministic("weight", survey.AnswerSet{
			"Current Weight (kg):": "80",
			"Height (cm):":         "0",
		})
		if res.Metrics["bmi"] != nil {
			t.Errorf("Expected nil bmi for zero height, got %v", res.Metrics["bmi"])
		}
		if !strings.Contains(res.Reasoning, "Insufficient data") {
			t.Errorf("Expected insufficient-data note, got '%s'", res.Reasoning)
		}
	})
}

func TestClassifyDetox(t *testing.T) {
	res := Deterministic("detox", survey.AnswerSet{"anything": "at all"})
	if res.Level != 1 || res.Label != "mild" {
		t.Errorf("Expected detox to always be level 1 'mild', got %d '%s'", res.Level, res.Label)
	}
	if len(res.Metrics) != 0 {
		t.Errorf("Expected no detox metrics, got %v", res.Metrics)
	}
}
