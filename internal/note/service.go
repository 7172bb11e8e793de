package note

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/foundrylabs/daybrief/internal/cache"
	dom "github.com/foundrylabs/daybrief/internal/domain"
	"github.com/foundrylabs/daybrief/internal/repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	activeTaskLimit  = 20
	recentItemLimit  = 5
	recentWindowDays = 7
)

// Service orchestrates daily-note generation and reads. All collaborators
// come in through the constructor so tests can substitute fakes.
type Service struct {
	notes    repo.NoteRepo
	context  repo.ContextRepo
	insights repo.InsightRepo
	gen      Generator
	dash     *cache.DashboardCache // nil disables dashboard caching
	loc      *time.Location
	now      func() time.Time
	sf       singleflight.Group
}

func NewService(
	notes repo.NoteRepo,
	contextRepo repo.ContextRepo,
	insights repo.InsightRepo,
	gen Generator,
	dash *cache.DashboardCache,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		notes:    notes,
		context:  contextRepo,
		insights: insights,
		gen:      gen,
		dash:     dash,
		loc:      loc,
		now:      time.Now,
	}
}

// Now returns the service clock's current time. Handlers use it so "today"
// defaults stay consistent with the service under test clocks.
func (s *Service) Now() time.Time { return s.now() }

// StartOfDay truncates t to 00:00:00 of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

type ensureResult struct {
	note    dom.DailyNote
	created bool
}

// EnsureDailyNote returns the founder's note for the target day, generating
// and persisting it first if none exists. created reports whether this call
// produced the note. Concurrent calls for the same founder and day collapse
// onto one generation in-process; across processes the daily_notes unique
// constraint decides the winner and the loser returns the winner's row.
func (s *Service) EnsureDailyNote(ctx context.Context, founder dom.Founder, target time.Time) (dom.DailyNote, bool, error) {
	day := StartOfDay(target, s.loc)
	key := founder.ID + "|" + day.Format("2006-01-02")

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		return s.ensureDailyNote(ctx, founder, day)
	})
	if err != nil {
		return dom.DailyNote{}, false, err
	}
	res := v.(ensureResult)
	return res.note, res.created, nil
}

func (s *Service) ensureDailyNote(ctx context.Context, founder dom.Founder, day time.Time) (ensureResult, error) {
	existing, err := s.notes.FindByDate(ctx, founder.ID, day)
	if err == nil {
		return ensureResult{note: existing}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return ensureResult{}, fmt.Errorf("look up existing note: %w", err)
	}

	since := s.now().Add(-recentWindowDays * 24 * time.Hour)

	var (
		events    []dom.CalendarEvent
		tasks     []dom.Task
		metrics   *dom.MetricsSnapshot
		decisions []dom.Decision
		wins      []dom.JournalEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.context.EventsForDay(gctx, founder.ID, day)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.context.ActiveTasks(gctx, founder.ID, activeTaskLimit)
		return err
	})
	g.Go(func() error {
		var err error
		metrics, err = s.context.LatestMetrics(gctx, founder.ID)
		return err
	})
	g.Go(func() error {
		var err error
		decisions, err = s.context.RecentDecisions(gctx, founder.ID, since, recentItemLimit)
		return err
	})
	g.Go(func() error {
		var err error
		wins, err = s.context.RecentWins(gctx, founder.ID, since, recentItemLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return ensureResult{}, fmt.Errorf("gather note context: %w", err)
	}

	input := BuildNoteInput(founder, day, events, tasks, metrics, decisions, wins)

	generated, err := s.gen.GenerateDailyNote(ctx, input)
	if err != nil {
		return ensureResult{}, err
	}

	created, err := s.notes.Create(ctx, dom.DailyNote{
		ID:                uuid.New().String(),
		FounderID:         founder.ID,
		Date:              day,
		DayType:           ClassifyDay(events),
		ExecutiveSummary:  generated.ExecutiveSummary,
		Schedule:          generated.Schedule,
		Decisions:         generated.Decisions,
		StrategicGuidance: generated.StrategicGuidance,
		Problems:          generated.Problems,
		Wins:              generated.Wins,
	})
	if err != nil {
		if repo.IsUniqueViolation(err) {
			// Another instance won the insert; serve its note.
			winner, ferr := s.notes.FindByDate(ctx, founder.ID, day)
			if ferr != nil {
				return ensureResult{}, fmt.Errorf("re-read note after conflict: %w", ferr)
			}
			return ensureResult{note: winner}, nil
		}
		return ensureResult{}, fmt.Errorf("persist note: %w", err)
	}

	s.invalidateDashboard(ctx, founder.ID)
	return ensureResult{note: created, created: true}, nil
}

// GetDailyNote returns the note for the target day, stamping viewed_at on
// first read. The returned note keeps its pre-read ViewedAt; a follow-up
// fetch observes the stamp.
func (s *Service) GetDailyNote(ctx context.Context, founderID string, target time.Time) (dom.DailyNote, error) {
	day := StartOfDay(target, s.loc)

	n, err := s.notes.FindByDate(ctx, founderID, day)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.DailyNote{}, ErrNoteNotFound
	}
	if err != nil {
		return dom.DailyNote{}, err
	}

	if n.ViewedAt == nil {
		if err := s.notes.MarkViewed(ctx, n.ID, s.now()); err != nil {
			log.Printf("mark note %s viewed: %v", n.ID, err)
		} else {
			s.invalidateDashboard(ctx, founderID)
		}
	}
	return n, nil
}

func (s *Service) invalidateDashboard(ctx context.Context, founderID string) {
	if s.dash != nil {
		if err := s.dash.Invalidate(ctx, founderID); err != nil {
			log.Printf("invalidate dashboard cache for %s: %v", founderID, err)
		}
	}
}
