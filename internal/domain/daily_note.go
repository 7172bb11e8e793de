package domain

import (
	"encoding/json"
	"time"
)

// DayType is the coarse label for the dominant character of a day's calendar.
type DayType string

const (
	DayBuild DayType = "BUILD"
	DaySell  DayType = "SELL"
	DayThink DayType = "THINK"
	DayRest  DayType = "REST"
)

// ExecutiveSummary is the top block of a generated note. KeyMetrics is
// model-shaped and stored opaquely.
type ExecutiveSummary struct {
	Theme        string          `json:"theme"`
	CriticalPath string          `json:"criticalPath"`
	KeyMetrics   json.RawMessage `json:"keyMetrics,omitempty"`
}

// ScheduleBlock is one organized time block in a generated note's schedule.
type ScheduleBlock struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	EnergyLevel string `json:"energyLevel"`
}

// DecisionQueue splits decisions the model surfaced by their stakes.
// Individual entries are opaque model output.
type DecisionQueue struct {
	HighStakes []json.RawMessage `json:"highStakes"`
	LowStakes  []json.RawMessage `json:"lowStakes"`
}

type StrategicGuidance struct {
	CoachingPrompt       string            `json:"coachingPrompt"`
	Recommendations      []json.RawMessage `json:"recommendations"`
	RecommendedResources []json.RawMessage `json:"recommendedResources"`
}

// DailyNote is the generated structured brief for one founder for one
// calendar day. Date is always truncated to start of day; at most one note
// exists per (founder, date).
type DailyNote struct {
	ID                string
	FounderID         string
	Date              time.Time
	DayType           DayType
	ExecutiveSummary  ExecutiveSummary
	Schedule          []ScheduleBlock
	Decisions         DecisionQueue
	StrategicGuidance StrategicGuidance
	Problems          []json.RawMessage
	Wins              []string
	ViewedAt          *time.Time
	CreatedAt         time.Time
}
