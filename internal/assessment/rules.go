package assessment

import (
	"fmt"
	"strings"

	"github.com/horlamiedea/ura-health-backend/internal/survey"
)

// Deterministic classifies severity from the answers using fixed threshold
// rules. It never fails: every unparseable clinical field degrades to "metric
// absent" and the level defaults to 1 unless another metric raises it.
func Deterministic(category string, answers survey.AnswerSet) Result {
	switch survey.Canonical(category) {
	case survey.CategoryDiabetes:
		return classifyDiabetes(answers)
	case survey.CategoryHBP:
		return classifyHBP(answers)
	case survey.CategoryWeight:
		return classifyWeight(answers)
	}
	// Detox (and anything unrecognized) has no levels defined.
	return Result{
		Condition: survey.CategoryDetox,
		Level:     1,
		Label:     "mild",
		Metrics:   map[string]any{},
		Reasoning: "Detox category: default single-tier guidance.",
	}
}

func classifyDiabetes(answers survey.AnswerSet) Result {
	fbs := toNumber(answers["Last known blood sugar reading (Fasting):"])
	hba1c := toNumber(answers["Last known HbA1c (if tested):"])
	sys, dia := parseBP(answers["Blood pressure (last reading, if known):"])

	// Severity is the worst metric met.
	level := 1
	var reasons []string

	if fbs != nil {
		switch {
		case *fbs > 180:
			level = max(level, 3)
			reasons = append(reasons, fmt.Sprintf("FBS %s mg/dL > 180 -> Level 3", fmtNum(*fbs)))
		case *fbs >= 126:
			level = max(level, 2)
			reasons = append(reasons, fmt.Sprintf("FBS %s mg/dL in 126-180 -> Level 2", fmtNum(*fbs)))
		case *fbs >= 100:
			reasons = append(reasons, fmt.Sprintf("FBS %s mg/dL in 100-125 -> Level 1", fmtNum(*fbs)))
		}
	}

	if hba1c != nil {
		switch {
		case *hba1c >= 8.0:
			level = max(level, 3)
			reasons = append(reasons, fmt.Sprintf("HbA1c %s%% >= 8 -> Level 3", fmtNum(*hba1c)))
		case *hba1c >= 6.5:
			level = max(level, 2)
			reasons = append(reasons, fmt.Sprintf("HbA1c %s%% in 6.5-7.9 -> Level 2", fmtNum(*hba1c)))
		case *hba1c >= 5.7:
			reasons = append(reasons, fmt.Sprintf("HbA1c %s%% in 5.7-6.4 -> Level 1", fmtNum(*hba1c)))
		}
	}

	// A BP reading suggests metabolic risk but never upstages the
	// glucose-based level; it only shows up in the reasoning.
	metrics := map[string]any{"fbs_mg_dl": numOrNil(fbs), "hba1c_percent": numOrNil(hba1c), "bp": nil}
	if sys != nil && dia != nil {
		reasons = append(reasons, fmt.Sprintf("BP reading noted: %s mmHg", fmtBP(*sys, *dia)))
		metrics["bp"] = fmtBP(*sys, *dia)
	}

	reasoning := strings.Join(reasons, "; ")
	if reasoning == "" {
		reasoning = "Insufficient metrics; defaulted to Level 1 (mild)."
	}
	return Result{
		Condition: survey.CategoryDiabetes,
		Level:     level,
		Label:     LabelForLevel(level),
		Metrics:   metrics,
		Reasoning: reasoning,
	}
}

func classifyHBP(answers survey.AnswerSet) Result {
	sys, dia := parseBP(answers["Current Blood Pressure Reading:"])
	if sys == nil || dia == nil {
		return Result{
			Condition: survey.CategoryHBP,
			Level:     1,
			Label:     "mild",
			Metrics:   map[string]any{"bp": nil},
			Reasoning: "No BP reading provided; defaulted to Level 1 if history suggests prehypertension.",
		}
	}

	level := 1
	var reason string
	switch {
	case *sys >= 160 || *dia >= 100:
		level = 3
		reason = fmt.Sprintf("BP %s >= 160/100 -> Level 3", fmtBP(*sys, *dia))
	case (*sys >= 140 && *sys <= 159) || (*dia >= 90 && *dia <= 99):
		level = 2
		reason = fmt.Sprintf("BP %s in 140-159/90-99 -> Level 2", fmtBP(*sys, *dia))
	case (*sys >= 130 && *sys <= 139) || (*dia >= 80 && *dia <= 89):
		reason = fmt.Sprintf("BP %s in 130-139/80-89 -> Level 1", fmtBP(*sys, *dia))
	default:
		reason = fmt.Sprintf("BP %s below 130/80; classify as Level 1 if symptomatic/history.", fmtBP(*sys, *dia))
	}

	return Result{
		Condition: survey.CategoryHBP,
		Level:     level,
		Label:     LabelForLevel(level),
		Metrics:   map[string]any{"bp": fmtBP(*sys, *dia)},
		Reasoning: reason,
	}
}

func classifyWeight(answers survey.AnswerSet) Result {
	bmi := toNumber(answers["Body Mass Index (BMI):"])
	if bmi == nil {
		wt := toNumber(answers["Current Weight (kg):"])
		ht := toNumber(answers["Height (cm):"])
		bmi = computeBMI(wt, ht)
	}

	level := 1
	var reason string
	if bmi != nil {
		switch {
		case *bmi >= 40:
			level = 3
			reason = fmt.Sprintf("BMI %s >= 40 -> Level 3", fmtNum(*bmi))
		case *bmi >= 30:
			level = 2
			reason = fmt.Sprintf("BMI %s in 30-39.9 -> Level 2", fmtNum(*bmi))
		case *bmi >= 25:
			reason = fmt.Sprintf("BMI %s in 25-29.9 -> Level 1", fmtNum(*bmi))
		default:
			reason = fmt.Sprintf("BMI %s below 25; default to Level 1 if weight concerns persist.", fmtNum(*bmi))
		}
	} else {
		reason = "Insufficient data to compute BMI; defaulted to Level 1."
	}

	return Result{
		Condition: survey.CategoryWeight,
		Level:     level,
		Label:     LabelForLevel(level),
		Metrics:   map[string]any{"bmi": numOrNil(bmi)},
		Reasoning: reason,
	}
}

func numOrNil(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
