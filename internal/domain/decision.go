package domain

import "time"

const (
	DecisionDecided = "decided"
	DecisionPending = "pending"
)

type Decision struct {
	ID        string
	FounderID string
	Title     string
	MadeAt    *time.Time
	CreatedAt time.Time
}

// Status derives the decision state: decided once MadeAt is set, pending otherwise.
func (d Decision) Status() string {
	if d.MadeAt != nil {
		return DecisionDecided
	}
	return DecisionPending
}
