package dto

import (
	"time"

	dom "github.com/foundrylabs/daybrief/internal/domain"
)

type DashboardResponse struct {
	Founder  FounderResponse    `json:"founder"`
	Note     *DailyNoteResponse `json:"note"`
	Insights []InsightResponse  `json:"insights"`
	Tasks    []TaskResponse     `json:"tasks"`
	Events   []EventResponse    `json:"events"`
}

type TaskResponse struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Priority string     `json:"priority"`
	Status   string     `json:"status"`
	DueDate  *time.Time `json:"dueDate"`
	Context  string     `json:"context"`
}

type EventResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	EventType string    `json:"eventType"`
	Attendees []string  `json:"attendees,omitempty"`
}

func DashboardFromDomain(d dom.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		Founder: FounderResponse{
			ID:      d.Founder.ID,
			Email:   d.Founder.Email,
			Name:    d.Founder.Name,
			Company: d.Founder.Company,
		},
		Insights: []InsightResponse{},
		Tasks:    []TaskResponse{},
		Events:   []EventResponse{},
	}
	if d.Note != nil {
		n := NoteFromDomain(*d.Note)
		resp.Note = &n
	}
	for _, i := range d.Insights {
		resp.Insights = append(resp.Insights, InsightFromDomain(i))
	}
	for _, t := range d.Tasks {
		resp.Tasks = append(resp.Tasks, TaskResponse{
			ID:       t.ID,
			Title:    t.Title,
			Priority: string(t.Priority),
			Status:   string(t.Status),
			DueDate:  t.DueDate,
			Context:  t.Context,
		})
	}
	for _, e := range d.Events {
		resp.Events = append(resp.Events, EventResponse{
			ID:        e.ID,
			Title:     e.Title,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			EventType: string(e.EventType),
			Attendees: e.Attendees,
		})
	}
	return resp
}
