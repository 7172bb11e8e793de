package domain

// Dashboard is the aggregate the dashboard endpoint serves: the founder's
// profile, today's note if one exists, open insights, top tasks, and the
// day's calendar.
type Dashboard struct {
	Founder  Founder
	Note     *DailyNote
	Insights []Insight
	Tasks    []Task
	Events   []CalendarEvent
}
