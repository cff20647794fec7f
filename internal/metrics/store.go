package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AdvisoryMetric records metadata for a single advisory classification call.
type AdvisoryMetric struct {
	Model     string
	Category  string
	Outcome   string // "accepted", "rejected" or "failed"
	LatencyMS int64
	Timestamp time.Time
}

// Store handles persistence of advisory metrics to SQLite.
type Store struct {
	db *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record saves a metric to the database.
func (s *Store) Record(ctx context.Context, m AdvisoryMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO advisory_metrics (model, category, outcome, latency_ms, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.Model, m.Category, m.Outcome, m.LatencyMS, ts)
	if err != nil {
		return fmt.Errorf("failed to record advisory metric: %w", err)
	}
	return nil
}

// OutcomeCount is the number of advisory calls per outcome.
type OutcomeCount struct {
	Outcome string
	Count   int
}

// CountByOutcome aggregates advisory calls recorded since the given number
// of days ago.
func (s *Store) CountByOutcome(ctx context.Context, days int) ([]OutcomeCount, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := s.db.QueryContext(ctx, `
		SELECT outcome, COUNT(*) FROM advisory_metrics
		WHERE created_at >= ?
		GROUP BY outcome ORDER BY outcome`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate advisory metrics: %w", err)
	}
	defer rows.Close()

	var counts []OutcomeCount
	for rows.Next() {
		var c OutcomeCount
		if err := rows.Scan(&c.Outcome, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan advisory metric row: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
