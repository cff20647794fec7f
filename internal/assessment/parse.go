package assessment

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)
	bpPattern     = regexp.MustCompile(`(\d{2,3})\s*/\s*(\d{2,3})`)
)

// toNumber extracts a number from a raw answer value. Free-text values like
// "110 mg/dL" yield the first decimal number found. Returns nil when nothing
// parseable is present.
func toNumber(val any) *float64 {
	switch v := val.(type) {
	case nil:
		return nil
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		if v == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return &f
		}
		if m := numberPattern.FindString(v); m != "" {
			if f, err := strconv.ParseFloat(m, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// parseBP parses blood pressure strings like "130/85" or "140 / 95 mmHg"
// into (systolic, diastolic). Returns nils when no reading is found.
func parseBP(val any) (*float64, *float64) {
	s, ok := val.(string)
	if !ok || s == "" {
		return nil, nil
	}
	m := bpPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, nil
	}
	sys, err1 := strconv.ParseFloat(m[1], 64)
	dia, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		return nil, nil
	}
	return &sys, &dia
}

// computeBMI derives BMI from weight (kg) and height (cm), rounded to one
// decimal. Returns nil when either input is absent or the height is zero.
func computeBMI(weightKg, heightCm *float64) *float64 {
	if weightKg == nil || heightCm == nil || *heightCm == 0 {
		return nil
	}
	heightM := *heightCm / 100.0
	if heightM <= 0 {
		return nil
	}
	bmi := math.Round(*weightKg/(heightM*heightM)*10) / 10
	return &bmi
}

// fmtNum renders a float without a trailing ".0" for whole values.
func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// fmtBP renders a parsed reading as "sys/dia".
func fmtBP(sys, dia float64) string {
	return fmt.Sprintf("%d/%d", int(sys), int(dia))
}
