package domain

import "time"

// MetricsSnapshot is one dated company-metrics row. Only the most recent
// snapshot is consulted when building a note; all fields are optional.
type MetricsSnapshot struct {
	ID           string
	FounderID    string
	Date         time.Time
	RunwayMonths *float64
	MRR          *float64
	Users        *int
	BurnRate     *float64
	TeamSize     *int
}
