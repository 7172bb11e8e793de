package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/foundrylabs/daybrief/internal/auth"
	dom "github.com/foundrylabs/daybrief/internal/domain"
	"github.com/foundrylabs/daybrief/internal/note"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type fakeFounderRepo struct {
	founders map[string]dom.Founder
}

func (f *fakeFounderRepo) GetByID(ctx context.Context, id string) (dom.Founder, error) {
	founder, ok := f.founders[id]
	if !ok {
		return dom.Founder{}, pgx.ErrNoRows
	}
	return founder, nil
}

func (f *fakeFounderRepo) GetByEmail(ctx context.Context, email string) (dom.Founder, error) {
	for _, founder := range f.founders {
		if founder.Email == email {
			return founder, nil
		}
	}
	return dom.Founder{}, pgx.ErrNoRows
}

func (f *fakeFounderRepo) Create(ctx context.Context, founder dom.Founder) (dom.Founder, error) {
	f.founders[founder.ID] = founder
	return founder, nil
}

type fakeNoteRepo struct {
	notes map[string]dom.DailyNote
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]dom.DailyNote)}
}

func (f *fakeNoteRepo) key(founderID string, date time.Time) string {
	return founderID + "|" + date.UTC().Format("2006-01-02")
}

func (f *fakeNoteRepo) FindByDate(ctx context.Context, founderID string, date time.Time) (dom.DailyNote, error) {
	n, ok := f.notes[f.key(founderID, date)]
	if !ok {
		return dom.DailyNote{}, pgx.ErrNoRows
	}
	return n, nil
}

func (f *fakeNoteRepo) Create(ctx context.Context, n dom.DailyNote) (dom.DailyNote, error) {
	f.notes[f.key(n.FounderID, n.Date)] = n
	return n, nil
}

func (f *fakeNoteRepo) MarkViewed(ctx context.Context, id string, at time.Time) error {
	for k, n := range f.notes {
		if n.ID == id && n.ViewedAt == nil {
			t := at
			n.ViewedAt = &t
			f.notes[k] = n
		}
	}
	return nil
}

type fakeContextRepo struct{}

func (fakeContextRepo) EventsForDay(ctx context.Context, founderID string, dayStart time.Time) ([]dom.CalendarEvent, error) {
	return nil, nil
}

func (fakeContextRepo) ActiveTasks(ctx context.Context, founderID string, limit int) ([]dom.Task, error) {
	return nil, nil
}

func (fakeContextRepo) LatestMetrics(ctx context.Context, founderID string) (*dom.MetricsSnapshot, error) {
	return nil, nil
}

func (fakeContextRepo) RecentDecisions(ctx context.Context, founderID string, since time.Time, limit int) ([]dom.Decision, error) {
	return nil, nil
}

func (fakeContextRepo) RecentWins(ctx context.Context, founderID string, since time.Time, limit int) ([]dom.JournalEntry, error) {
	return nil, nil
}

type fakeInsightRepo struct{}

func (fakeInsightRepo) Create(ctx context.Context, i dom.Insight) (dom.Insight, error) {
	return i, nil
}

func (fakeInsightRepo) ListActive(ctx context.Context, founderID string, limit int) ([]dom.Insight, error) {
	return nil, nil
}

func (fakeInsightRepo) Dismiss(ctx context.Context, founderID, id string, at time.Time) (bool, error) {
	return false, nil
}

type fakeGenerator struct {
	err   error
	calls int
}

func (f *fakeGenerator) GenerateDailyNote(ctx context.Context, in note.NoteInput) (*note.StructuredNote, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &note.StructuredNote{
		ExecutiveSummary: dom.ExecutiveSummary{
			Theme:        "Ship it",
			CriticalPath: "Merge the exporter",
		},
		StrategicGuidance: dom.StrategicGuidance{
			CoachingPrompt: "What matters most today?",
		},
	}, nil
}

func (f *fakeGenerator) GenerateInsight(ctx context.Context, founderContext string) (string, error) {
	return "Stay focused.", nil
}

const testFounderID = "founder-1"

func newTestRouter(notes *fakeNoteRepo, founders *fakeFounderRepo, gen *fakeGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := note.NewService(notes, fakeContextRepo{}, fakeInsightRepo{}, gen, nil, time.UTC)
	h := NewDailyNoteHandler(svc, founders)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		auth.SetFounderID(c, testFounderID)
	})
	r.POST("/daily-note", h.Create)
	r.GET("/daily-note", h.Get)
	return r
}

func defaultFounders() *fakeFounderRepo {
	return &fakeFounderRepo{founders: map[string]dom.Founder{
		testFounderID: {ID: testFounderID, Email: "jordan@acme.dev", Name: "Jordan", Company: "Acme"},
	}}
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]json.RawMessage
	if w.Body.Len() > 0 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestCreateDailyNote(t *testing.T) {
	notes := newFakeNoteRepo()
	gen := &fakeGenerator{}
	r := newTestRouter(notes, defaultFounders(), gen)

	w, body := doJSON(t, r, http.MethodPost, "/daily-note", `{"date": "2025-03-10"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"Daily note generated successfully"`, string(body["message"]))
	assert.Equal(t, 1, gen.calls)

	var n struct {
		FounderID string `json:"founderId"`
		DayType   string `json:"dayType"`
	}
	assert.NoError(t, json.Unmarshal(body["note"], &n))
	assert.Equal(t, testFounderID, n.FounderID)
	assert.Equal(t, "BUILD", n.DayType)
}

func TestCreateDailyNoteAlreadyExists(t *testing.T) {
	notes := newFakeNoteRepo()
	gen := &fakeGenerator{}
	r := newTestRouter(notes, defaultFounders(), gen)

	w, _ := doJSON(t, r, http.MethodPost, "/daily-note", `{"date": "2025-03-10"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, body := doJSON(t, r, http.MethodPost, "/daily-note", `{"date": "2025-03-10"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"Daily note already exists"`, string(body["message"]))
	assert.Equal(t, 1, gen.calls)
}

func TestCreateDailyNoteEmptyBodyDefaultsToToday(t *testing.T) {
	notes := newFakeNoteRepo()
	r := newTestRouter(notes, defaultFounders(), &fakeGenerator{})

	w, body := doJSON(t, r, http.MethodPost, "/daily-note", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"Daily note generated successfully"`, string(body["message"]))
}

func TestCreateDailyNoteBadDate(t *testing.T) {
	r := newTestRouter(newFakeNoteRepo(), defaultFounders(), &fakeGenerator{})

	w, _ := doJSON(t, r, http.MethodPost, "/daily-note", `{"date": "03/10/2025"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDailyNoteGenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("provider unavailable")}
	r := newTestRouter(newFakeNoteRepo(), defaultFounders(), gen)

	w, body := doJSON(t, r, http.MethodPost, "/daily-note", `{"date": "2025-03-10"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `"Failed to generate daily note"`, string(body["error"]))
	assert.Contains(t, string(body["details"]), "provider unavailable")
}

func TestCreateDailyNoteUnknownFounder(t *testing.T) {
	founders := &fakeFounderRepo{founders: map[string]dom.Founder{}}
	r := newTestRouter(newFakeNoteRepo(), founders, &fakeGenerator{})

	w, body := doJSON(t, r, http.MethodPost, "/daily-note", `{"date": "2025-03-10"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `"Founder profile not found"`, string(body["error"]))
}

func TestGetDailyNote(t *testing.T) {
	notes := newFakeNoteRepo()
	r := newTestRouter(notes, defaultFounders(), &fakeGenerator{})

	w, _ := doJSON(t, r, http.MethodPost, "/daily-note", `{"date": "2025-03-10"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, body := doJSON(t, r, http.MethodGet, "/daily-note?date=2025-03-10", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var n struct {
		FounderID string     `json:"founderId"`
		ViewedAt  *time.Time `json:"viewedAt"`
	}
	assert.NoError(t, json.Unmarshal(body["note"], &n))
	assert.Equal(t, testFounderID, n.FounderID)
	assert.Nil(t, n.ViewedAt, "first read returns the note before the viewed stamp")

	w, body = doJSON(t, r, http.MethodGet, "/daily-note?date=2025-03-10", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(body["note"], &n))
	assert.NotNil(t, n.ViewedAt)
}

func TestGetDailyNoteNotFound(t *testing.T) {
	r := newTestRouter(newFakeNoteRepo(), defaultFounders(), &fakeGenerator{})

	w, body := doJSON(t, r, http.MethodGet, "/daily-note?date=2025-03-10", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `"Daily note not found for this date"`, string(body["error"]))
}

func TestGetDailyNoteBadDate(t *testing.T) {
	r := newTestRouter(newFakeNoteRepo(), defaultFounders(), &fakeGenerator{})

	w, _ := doJSON(t, r, http.MethodGet, "/daily-note?date=nonsense", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
