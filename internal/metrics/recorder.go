package metrics

import (
	"context"
	"log"
	"time"
)

// Recorder adapts the Store to the assessor's advisory outcome hook.
type Recorder struct {
	store *Store
	model string
}

// NewRecorder creates a Recorder tagging metrics with the model name.
func NewRecorder(store *Store, model string) *Recorder {
	return &Recorder{store: store, model: model}
}

// RecordAdvisory persists one advisory call outcome. Failures are logged,
// never surfaced: metrics must not break an assessment.
func (r *Recorder) RecordAdvisory(ctx context.Context, category, outcome string, latency time.Duration) {
	err := r.store.Record(ctx, AdvisoryMetric{
		Model:     r.model,
		Category:  category,
		Outcome:   outcome,
		LatencyMS: latency.Milliseconds(),
	})
	if err != nil {
		log.Printf("failed to record advisory metric: %v", err)
	}
}
