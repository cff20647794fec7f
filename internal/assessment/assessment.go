package assessment

// Result is the outcome of a severity assessment. It is produced once per
// submission and stored alongside the meal plan.
type Result struct {
	Condition string         `json:"condition"`
	Level     int            `json:"level"`
	Label     string         `json:"label"`
	Metrics   map[string]any `json:"metrics"`
	Reasoning string         `json:"reasoning"`
}

// LabelForLevel maps a severity level to its fixed label.
func LabelForLevel(level int) string {
	switch level {
	case 2:
		return "moderate"
	case 3:
		return "severe"
	}
	return "mild"
}
