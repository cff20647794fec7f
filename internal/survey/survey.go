package survey

import "strings"

// QuestionType enumerates the input types a question can take.
type QuestionType string

const (
	TypeText        QuestionType = "text"
	TypeNumber      QuestionType = "number"
	TypeDate        QuestionType = "date"
	TypeEmail       QuestionType = "email"
	TypeChoice      QuestionType = "choice"
	TypeMultiSelect QuestionType = "multiselect"
	TypeTextArea    QuestionType = "textarea"
)

// Supported categories. Aliases are resolved by Canonical.
const (
	CategoryDiabetes = "diabetes"
	CategoryHBP      = "hbp"
	CategoryWeight   = "weight"
	CategoryDetox    = "detox"
)

// RequiredWhen makes a question conditionally required: it is only required
// when the referenced question's answer matches one of the provided values.
type RequiredWhen struct {
	QuestionID int      `json:"questionId"`
	Values     []string `json:"values"`
}

// Question is a single survey question. Questions are static data defined
// once per category; answers are keyed by the question label, not the id.
type Question struct {
	ID           int           `json:"id"`
	Label        string        `json:"question"`
	Type         QuestionType  `json:"type"`
	Options      []string      `json:"options,omitempty"`
	RequiredWhen *RequiredWhen `json:"required_when,omitempty"`
}

// AnswerSet maps question labels to raw answer values. Values are strings,
// numbers, or lists of strings depending on the question type.
type AnswerSet = map[string]any

// Canonical resolves a category string (case-insensitive, with aliases) to
// its canonical form. Returns "" for unsupported categories.
func Canonical(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "diabetes":
		return CategoryDiabetes
	case "hbp", "high blood pressure", "hypertension":
		return CategoryHBP
	case "weight", "weight management", "obesity":
		return CategoryWeight
	case "detox":
		return CategoryDetox
	}
	return ""
}

// Questions returns the question catalog for a category. An empty slice
// signals an unsupported category.
func Questions(category string) []Question {
	switch Canonical(category) {
	case CategoryDiabetes:
		return diabetesQuestions
	case CategoryHBP:
		return hbpQuestions
	case CategoryWeight:
		return weightQuestions
	case CategoryDetox:
		return detoxQuestions
	}
	return nil
}

// labelByID builds the id -> label index for a catalog. All label lookups go
// through this single accessor so the label-keyed answer contract stays in
// one place.
func labelByID(questions []Question) map[int]string {
	index := make(map[int]string, len(questions))
	for _, q := range questions {
		index[q.ID] = q.Label
	}
	return index
}
