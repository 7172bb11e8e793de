package domain

import "time"

type EventType string

const (
	EventExternal EventType = "EXTERNAL"
	EventMeeting  EventType = "MEETING"
	EventDeepWork EventType = "DEEP_WORK"
	EventPersonal EventType = "PERSONAL"
	EventOther    EventType = "OTHER"
)

// CalendarEvent is a single block on a founder's calendar for a day.
// The note pipeline only reads events, it never writes them.
type CalendarEvent struct {
	ID        string
	FounderID string
	Title     string
	StartTime time.Time
	EndTime   time.Time
	EventType EventType
	Attendees []string
	CreatedAt time.Time
}
