package assessment

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"strings"
	"text/template"
	"time"

	"github.com/horlamiedea/ura-health-backend/internal/llm"
	"github.com/horlamiedea/ura-health-backend/internal/survey"
)

//go:embed advisory_prompt.md
var advisoryPrompt string

const advisoryTimeout = 30 * time.Second

// AdvisoryRecorder receives the outcome of each advisory call. Outcomes are
// "accepted", "rejected" (response discarded by validation) and "failed".
type AdvisoryRecorder interface {
	RecordAdvisory(ctx context.Context, category, outcome string, latency time.Duration)
}

// Assessor resolves a severity assessment by asking the advisory model first
// and falling back to the deterministic rules when the call fails, times out,
// or returns anything other than a fully valid result.
type Assessor struct {
	textGen  llm.TextGenerator
	timeout  time.Duration
	recorder AdvisoryRecorder
}

// NewAssessor creates an Assessor. A nil textGen disables the advisory stage
// so the deterministic rules always apply.
func NewAssessor(textGen llm.TextGenerator) *Assessor {
	return &Assessor{textGen: textGen, timeout: advisoryTimeout}
}

// WithRecorder attaches an outcome recorder and returns the assessor.
func (a *Assessor) WithRecorder(rec AdvisoryRecorder) *Assessor {
	a.recorder = rec
	return a
}

type advisoryPromptData struct {
	Category    string
	AnswersJSON string
}

// advisoryPayload is the strict shape expected from the advisory model.
// Every field is validated independently; a partially valid payload is
// discarded entirely.
type advisoryPayload struct {
	Condition string         `json:"condition"`
	Level     any            `json:"level"`
	Label     string         `json:"label"`
	Metrics   map[string]any `json:"metrics"`
	Reasoning string         `json:"reasoning"`
}

// AssessLevel assesses the severity level for a category. The advisory call
// is time-boxed and cancellable; any failure is recovered locally and never
// surfaced to the caller.
func (a *Assessor) AssessLevel(ctx context.Context, category string, answers survey.AnswerSet) Result {
	if a != nil && a.textGen != nil {
		if res, ok := a.tryAdvisory(ctx, category, answers); ok {
			return res
		}
	}
	return Deterministic(category, answers)
}

func (a *Assessor) tryAdvisory(ctx context.Context, category string, answers survey.AnswerSet) (Result, bool) {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return Result{}, false
	}

	prompt, err := buildAdvisoryPrompt(advisoryPromptData{
		Category:    category,
		AnswersJSON: string(answersJSON),
	})
	if err != nil {
		return Result{}, false
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	raw, err := a.textGen.GenerateContent(callCtx, prompt)
	latency := time.Since(start)
	if err != nil {
		a.record(ctx, category, "failed", latency)
		return Result{}, false
	}

	var payload advisoryPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		a.record(ctx, category, "rejected", latency)
		return Result{}, false
	}

	condition := strings.ToLower(strings.TrimSpace(payload.Condition))
	if condition == "" {
		a.record(ctx, category, "rejected", latency)
		return Result{}, false
	}

	level, ok := parseLevel(payload.Level)
	if !ok {
		a.record(ctx, category, "rejected", latency)
		return Result{}, false
	}
	a.record(ctx, category, "accepted", latency)

	label := strings.ToLower(strings.TrimSpace(payload.Label))
	if label != "mild" && label != "moderate" && label != "severe" {
		label = LabelForLevel(level)
	}

	metrics := payload.Metrics
	if metrics == nil {
		metrics = map[string]any{}
	}

	return Result{
		Condition: condition,
		Level:     level,
		Label:     label,
		Metrics:   metrics,
		Reasoning: payload.Reasoning,
	}, true
}

func (a *Assessor) record(ctx context.Context, category, outcome string, latency time.Duration) {
	if a.recorder != nil {
		a.recorder.RecordAdvisory(ctx, category, outcome, latency)
	}
}

// parseLevel accepts a level only when it resolves to exactly 1, 2, or 3.
func parseLevel(val any) (int, bool) {
	n := toNumber(val)
	if n == nil {
		return 0, false
	}
	level := int(*n)
	if float64(level) != *n || level < 1 || level > 3 {
		return 0, false
	}
	return level, true
}

func buildAdvisoryPrompt(data advisoryPromptData) (string, error) {
	tmpl, err := template.New("advisory").Parse(advisoryPrompt)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
