package note

import (
	"context"
	"sync"
	"time"

	dom "github.com/foundrylabs/daybrief/internal/domain"
	"github.com/foundrylabs/daybrief/internal/llm"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func uniqueViolationErr() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "daily_notes_founder_id_date_key"}
}

type MockNoteRepo struct {
	mu          sync.Mutex
	notes       map[string]dom.DailyNote // keyed by founderID|RFC3339 date
	CreateCalls int
	CreateErr   error
	OnCreateErr func() // runs after Create fails, for race simulations
	ViewedIDs   []string
}

func NewMockNoteRepo() *MockNoteRepo {
	return &MockNoteRepo{notes: make(map[string]dom.DailyNote)}
}

func noteKey(founderID string, date time.Time) string {
	return founderID + "|" + date.UTC().Format(time.RFC3339)
}

func (m *MockNoteRepo) FindByDate(ctx context.Context, founderID string, date time.Time) (dom.DailyNote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[noteKey(founderID, date)]
	if !ok {
		return dom.DailyNote{}, pgx.ErrNoRows
	}
	return n, nil
}

func (m *MockNoteRepo) Create(ctx context.Context, n dom.DailyNote) (dom.DailyNote, error) {
	m.mu.Lock()
	m.CreateCalls++
	err := m.CreateErr
	hook := m.OnCreateErr
	m.mu.Unlock()
	if err != nil {
		if hook != nil {
			hook()
		}
		return dom.DailyNote{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	n.CreatedAt = time.Now().UTC()
	m.notes[noteKey(n.FounderID, n.Date)] = n
	return n, nil
}

func (m *MockNoteRepo) MarkViewed(ctx context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ViewedIDs = append(m.ViewedIDs, id)
	for k, n := range m.notes {
		if n.ID == id && n.ViewedAt == nil {
			t := at
			n.ViewedAt = &t
			m.notes[k] = n
		}
	}
	return nil
}

// Put seeds a note directly, bypassing Create bookkeeping.
func (m *MockNoteRepo) Put(n dom.DailyNote) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes[noteKey(n.FounderID, n.Date)] = n
}

type MockContextRepo struct {
	Events    []dom.CalendarEvent
	Tasks     []dom.Task
	Metrics   *dom.MetricsSnapshot
	Decisions []dom.Decision
	Wins      []dom.JournalEntry

	EventsErr error

	mu          sync.Mutex
	GatherCalls int

	LastDayStart time.Time
}

func (m *MockContextRepo) EventsForDay(ctx context.Context, founderID string, dayStart time.Time) ([]dom.CalendarEvent, error) {
	m.mu.Lock()
	m.GatherCalls++
	m.LastDayStart = dayStart
	m.mu.Unlock()
	if m.EventsErr != nil {
		return nil, m.EventsErr
	}
	return m.Events, nil
}

func (m *MockContextRepo) ActiveTasks(ctx context.Context, founderID string, limit int) ([]dom.Task, error) {
	return m.Tasks, nil
}

func (m *MockContextRepo) LatestMetrics(ctx context.Context, founderID string) (*dom.MetricsSnapshot, error) {
	return m.Metrics, nil
}

func (m *MockContextRepo) RecentDecisions(ctx context.Context, founderID string, since time.Time, limit int) ([]dom.Decision, error) {
	return m.Decisions, nil
}

func (m *MockContextRepo) RecentWins(ctx context.Context, founderID string, since time.Time, limit int) ([]dom.JournalEntry, error) {
	return m.Wins, nil
}

type MockInsightRepo struct {
	mu       sync.Mutex
	Insights []dom.Insight
}

func (m *MockInsightRepo) Create(ctx context.Context, i dom.Insight) (dom.Insight, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i.GeneratedAt = time.Now().UTC()
	m.Insights = append(m.Insights, i)
	return i, nil
}

func (m *MockInsightRepo) ListActive(ctx context.Context, founderID string, limit int) ([]dom.Insight, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []dom.Insight
	for _, i := range m.Insights {
		if i.FounderID == founderID && i.DismissedAt == nil {
			out = append(out, i)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *MockInsightRepo) Dismiss(ctx context.Context, founderID, id string, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for idx, i := range m.Insights {
		if i.ID == id && i.FounderID == founderID && i.DismissedAt == nil {
			t := at
			m.Insights[idx].DismissedAt = &t
			return true, nil
		}
	}
	return false, nil
}

type MockGenerator struct {
	mu        sync.Mutex
	Note      *StructuredNote
	NoteErr   error
	Insight   string
	NoteCalls int
	LastInput NoteInput
}

func (m *MockGenerator) GenerateDailyNote(ctx context.Context, in NoteInput) (*StructuredNote, error) {
	m.mu.Lock()
	m.NoteCalls++
	m.LastInput = in
	m.mu.Unlock()
	if m.NoteErr != nil {
		return nil, m.NoteErr
	}
	return m.Note, nil
}

func (m *MockGenerator) GenerateInsight(ctx context.Context, founderContext string) (string, error) {
	return m.Insight, nil
}

// MockLLM satisfies llm.Client for generator tests.
type MockLLM struct {
	Response      string
	ResponseQueue []string
	Err           error
	LastReq       llm.Request
}

func (m *MockLLM) Generate(ctx context.Context, req llm.Request) (string, error) {
	m.LastReq = req
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		return resp, nil
	}
	return m.Response, nil
}
