package catalog

import (
	"strings"

	"github.com/horlamiedea/ura-health-backend/internal/survey"
)

// AllergyKeywords extracts allergen tokens from every answer whose question
// label mentions allergies. Values are split on commas, slashes, pipes,
// ampersands, semicolons and whitespace; tokens shorter than 3 characters are
// dropped so answers like "No" or "-" never filter anything.
func AllergyKeywords(answers survey.AnswerSet) []string {
	seen := map[string]bool{}
	var keywords []string
	for label, value := range answers {
		if !strings.Contains(strings.ToLower(label), "allerg") {
			continue
		}
		for _, raw := range valueStrings(value) {
			for _, token := range splitAllergyTokens(raw) {
				token = strings.ToLower(strings.TrimSpace(token))
				if len(token) < 3 || seen[token] {
					continue
				}
				seen[token] = true
				keywords = append(keywords, token)
			}
		}
	}
	return keywords
}

func valueStrings(value any) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func splitAllergyTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ',', '/', '|', '&', ';':
			return true
		}
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// FilterAllergens removes every item whose name contains any of the keywords,
// case-insensitively. The filter is substring based so "egg" excludes both
// "Boiled eggs" and "garden egg".
func FilterAllergens(items []Item, keywords []string) []Item {
	if len(keywords) == 0 {
		return items
	}
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if nameIsSafe(item.Name, keywords) {
			out = append(out, item)
		}
	}
	return out
}

func nameIsSafe(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

// ChooseFirstSafe returns the first candidate name that carries no allergen
// keyword, or fallback when every candidate is unsafe.
func ChooseFirstSafe(candidates []string, keywords []string, fallback string) string {
	for _, name := range candidates {
		if nameIsSafe(name, keywords) {
			return name
		}
	}
	return fallback
}
