package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	dom "github.com/foundrylabs/daybrief/internal/domain"
)

// NoteDate parses a date from JSON or a query string as either date-only
// ("2006-01-02") or RFC 3339. Absent or empty means "today".
type NoteDate struct{ t *time.Time }

func (d *NoteDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		d.t = nil
		return nil
	}
	return d.set(*raw)
}

// Parse fills the date from a raw query-parameter string.
func (d *NoteDate) Parse(s string) error {
	return d.set(s)
}

func (d *NoteDate) set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		d.t = nil
		return nil
	}
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("date: use YYYY-MM-DD or an RFC 3339 datetime")
}

// Or returns the parsed date, or fallback when none was supplied.
func (d NoteDate) Or(fallback time.Time) time.Time {
	if d.t == nil {
		return fallback
	}
	return *d.t
}

type CreateDailyNoteRequest struct {
	Date NoteDate `json:"date"`
}

type DailyNoteResponse struct {
	ID                string                `json:"id"`
	FounderID         string                `json:"founderId"`
	Date              time.Time             `json:"date"`
	DayType           string                `json:"dayType"`
	ExecutiveSummary  dom.ExecutiveSummary  `json:"executiveSummary"`
	Schedule          []dom.ScheduleBlock   `json:"schedule"`
	Decisions         dom.DecisionQueue     `json:"decisions"`
	StrategicGuidance dom.StrategicGuidance `json:"strategicGuidance"`
	Problems          []json.RawMessage     `json:"problems"`
	Wins              []string              `json:"wins"`
	ViewedAt          *time.Time            `json:"viewedAt"`
	CreatedAt         time.Time             `json:"createdAt"`
}

func NoteFromDomain(n dom.DailyNote) DailyNoteResponse {
	return DailyNoteResponse{
		ID:                n.ID,
		FounderID:         n.FounderID,
		Date:              n.Date,
		DayType:           string(n.DayType),
		ExecutiveSummary:  n.ExecutiveSummary,
		Schedule:          n.Schedule,
		Decisions:         n.Decisions,
		StrategicGuidance: n.StrategicGuidance,
		Problems:          n.Problems,
		Wins:              n.Wins,
		ViewedAt:          n.ViewedAt,
		CreatedAt:         n.CreatedAt,
	}
}
