package survey

import (
	"strconv"
	"strings"
)

// IsRequired reports whether a question must be answered given the answers so
// far. A question with no RequiredWhen clause is always required; otherwise it
// is required only when the referenced question's answer matches one of the
// trigger values. An unknown reference id makes the question optional rather
// than failing.
func IsRequired(q Question, answers AnswerSet, questions []Question) bool {
	if q.RequiredWhen == nil {
		return true
	}
	label, ok := labelByID(questions)[q.RequiredWhen.QuestionID]
	if !ok {
		return false
	}
	val, ok := answers[label]
	if !ok {
		return false
	}
	s, ok := val.(string)
	if !ok {
		return false
	}
	for _, v := range q.RequiredWhen.Values {
		if s == v {
			return true
		}
	}
	return false
}

// ValidateAnswers checks required answers for a category and returns the
// labels of missing questions in catalog order. An empty result means the
// answer set is complete.
func ValidateAnswers(category string, answers AnswerSet) []string {
	questions := Questions(category)
	var missing []string
	for _, q := range questions {
		if !IsRequired(q, answers, questions) {
			continue
		}
		if !valueIsFilled(q.Type, answers[q.Label]) {
			missing = append(missing, q.Label)
		}
	}
	return missing
}

// valueIsFilled applies the type-aware "is filled" predicate.
func valueIsFilled(qtype QuestionType, val any) bool {
	switch qtype {
	case TypeText, TypeEmail, TypeDate, TypeTextArea, TypeChoice:
		s, ok := val.(string)
		return ok && strings.TrimSpace(s) != ""
	case TypeNumber:
		switch v := val.(type) {
		case nil:
			return false
		case float64, float32, int, int64:
			return true
		case string:
			if v == "" {
				return false
			}
			_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			return err == nil
		default:
			return false
		}
	case TypeMultiSelect:
		switch v := val.(type) {
		case []string:
			return len(v) > 0
		case []any:
			return len(v) > 0
		default:
			return false
		}
	}
	// Permissive default for any future type.
	return val != nil && val != ""
}
