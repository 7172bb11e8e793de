package note

import (
	"time"

	dom "github.com/foundrylabs/daybrief/internal/domain"
)

// NoteInput is the shaped context handed to the generator: the founder's day
// flattened into display strings so the prompt builder never touches domain
// entities directly.
type NoteInput struct {
	FounderName     string
	Company         string
	Date            string
	CalendarEvents  []EventContext
	Tasks           []TaskContext
	Metrics         *MetricsContext
	RecentDecisions []DecisionContext
	RecentWins      []string
	RecentProblems  []string
}

type EventContext struct {
	Title     string
	StartTime string
	EndTime   string
	Type      string
	Attendees int // 0 means not provided
}

type TaskContext struct {
	Title    string
	Priority string
	DueDate  string // empty when the task has no due date
	Status   string
	Context  string
}

type MetricsContext struct {
	RunwayMonths *float64
	MRR          *float64
	Users        *int
	BurnRate     *float64
	TeamSize     *int
}

type DecisionContext struct {
	Title  string
	Status string
}

const (
	longDateLayout = "Monday, January 2, 2006"
	clockLayout    = "03:04 PM"
	dueDateLayout  = "1/2/2006"
)

// BuildNoteInput maps gathered domain data into the generation input.
func BuildNoteInput(
	founder dom.Founder,
	date time.Time,
	events []dom.CalendarEvent,
	tasks []dom.Task,
	metrics *dom.MetricsSnapshot,
	decisions []dom.Decision,
	wins []dom.JournalEntry,
) NoteInput {
	company := founder.Company
	if company == "" {
		company = "your company"
	}

	in := NoteInput{
		FounderName: founder.Name,
		Company:     company,
		Date:        date.Format(longDateLayout),
	}

	for _, e := range events {
		in.CalendarEvents = append(in.CalendarEvents, EventContext{
			Title:     e.Title,
			StartTime: e.StartTime.Format(clockLayout),
			EndTime:   e.EndTime.Format(clockLayout),
			Type:      string(e.EventType),
			Attendees: len(e.Attendees),
		})
	}

	for _, t := range tasks {
		tc := TaskContext{
			Title:    t.Title,
			Priority: string(t.Priority),
			Status:   string(t.Status),
			Context:  t.Context,
		}
		if t.DueDate != nil {
			tc.DueDate = t.DueDate.Format(dueDateLayout)
		}
		in.Tasks = append(in.Tasks, tc)
	}

	if metrics != nil {
		in.Metrics = &MetricsContext{
			RunwayMonths: metrics.RunwayMonths,
			MRR:          metrics.MRR,
			Users:        metrics.Users,
			BurnRate:     metrics.BurnRate,
			TeamSize:     metrics.TeamSize,
		}
	}

	for _, d := range decisions {
		in.RecentDecisions = append(in.RecentDecisions, DecisionContext{
			Title:  d.Title,
			Status: d.Status(),
		})
	}

	for _, w := range wins {
		in.RecentWins = append(in.RecentWins, w.Content)
	}

	return in
}
