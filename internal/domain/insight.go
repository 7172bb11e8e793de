package domain

import "time"

// Insight is a short strategic observation generated for a founder outside
// the daily-note flow. Dismissed insights stay in storage but drop out of
// dashboard listings.
type Insight struct {
	ID          string
	FounderID   string
	Type        string
	Content     string
	GeneratedAt time.Time
	DismissedAt *time.Time
}
