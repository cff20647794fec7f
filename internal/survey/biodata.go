package survey

import "strings"

// Biodata holds the profile fields that can prefill survey answers.
type Biodata struct {
	FullName      string
	Email         string
	Phone         string
	Gender        string
	MaritalStatus string
	DateOfBirth   string
	Address       string
	Occupation    string
}

// BiodataMap maps question ids to biodata keys so the frontend can prefill or
// skip biodata questions. Age is intentionally not mapped to avoid inference
// from date of birth.
func BiodataMap(category string) map[int]string {
	switch Canonical(category) {
	case CategoryDiabetes:
		// Q8 "Location:" takes the stored address.
		return map[int]string{1: "full_name", 3: "gender", 4: "date_of_birth", 5: "marital_status", 6: "occupation", 7: "phone", 8: "address"}
	case CategoryHBP, CategoryWeight, CategoryDetox:
		return map[int]string{1: "full_name", 2: "date_of_birth", 4: "gender", 5: "marital_status", 6: "address", 7: "phone", 8: "email", 9: "occupation"}
	}
	return map[int]string{}
}

func (b Biodata) value(key string) string {
	switch key {
	case "full_name":
		return b.FullName
	case "email":
		return b.Email
	case "phone":
		return b.Phone
	case "gender":
		return normalizeGender(b.Gender)
	case "marital_status":
		return b.MaritalStatus
	case "date_of_birth":
		return b.DateOfBirth
	case "address":
		return b.Address
	case "occupation":
		return b.Occupation
	}
	return ""
}

// normalizeGender capitalizes recognized gender values for choice questions.
func normalizeGender(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return "Male"
	case "female":
		return "Female"
	case "other":
		return "Other"
	}
	return s
}

// MergeBiodata fills blank answers from a stored profile before validation.
// Only blank slots are filled; existing answers are never overwritten.
func MergeBiodata(category string, answers AnswerSet, bio Biodata) {
	questions := Questions(category)
	labels := labelByID(questions)
	for qid, key := range BiodataMap(category) {
		label, ok := labels[qid]
		if !ok {
			continue
		}
		if existing, ok := answers[label]; ok && !isBlank(existing) {
			continue
		}
		if val := bio.value(key); val != "" {
			answers[label] = val
		}
	}
}

func isBlank(val any) bool {
	switch v := val.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	}
	return false
}
