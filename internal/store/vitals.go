package store

import (
	"context"
	"fmt"
	"time"
)

// Vital is one Web Vitals measurement reported by a browser.
type Vital struct {
	MetricID   string    `json:"id"`
	Name       string    `json:"name"`
	Value      float64   `json:"value"`
	Delta      float64   `json:"delta"`
	Rating     string    `json:"rating"`
	URL        string    `json:"url"`
	RecordedAt time.Time `json:"recorded_at"`
}

// VitalSummary aggregates the measurements of one metric.
type VitalSummary struct {
	Name             string  `json:"name"`
	Count            int64   `json:"count"`
	Average          float64 `json:"average"`
	Good             int64   `json:"good"`
	NeedsImprovement int64   `json:"needs_improvement"`
	Poor             int64   `json:"poor"`
}

// RecordVital stores a measurement.
func (s *Store) RecordVital(ctx context.Context, v Vital) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO web_vitals (metric_id, name, value, delta, rating, url, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, v.MetricID, v.Name, v.Value, v.Delta, v.Rating, v.URL, formatTime(v.RecordedAt))
	if err != nil {
		return fmt.Errorf("record vital %s: %w", v.Name, err)
	}
	return nil
}

// VitalSummaries returns per-metric aggregates ordered by metric name.
func (s *Store) VitalSummaries(ctx context.Context) ([]VitalSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name,
			COUNT(*),
			AVG(value),
			SUM(CASE WHEN rating = 'good' THEN 1 ELSE 0 END),
			SUM(CASE WHEN rating = 'needs-improvement' THEN 1 ELSE 0 END),
			SUM(CASE WHEN rating = 'poor' THEN 1 ELSE 0 END)
		FROM web_vitals
		GROUP BY name
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("query vitals: %w", err)
	}
	defer rows.Close()

	var out []VitalSummary
	for rows.Next() {
		var v VitalSummary
		if err := rows.Scan(&v.Name, &v.Count, &v.Average, &v.Good, &v.NeedsImprovement, &v.Poor); err != nil {
			return nil, fmt.Errorf("scan vital summary: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
