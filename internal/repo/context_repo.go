package repo

import (
	"context"
	"errors"
	"time"

	dom "github.com/foundrylabs/daybrief/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContextRepo exposes the five read-only context sets a daily note is built
// from. All queries are scoped to one founder.
type ContextRepo interface {
	EventsForDay(ctx context.Context, founderID string, dayStart time.Time) ([]dom.CalendarEvent, error)
	ActiveTasks(ctx context.Context, founderID string, limit int) ([]dom.Task, error)
	LatestMetrics(ctx context.Context, founderID string) (*dom.MetricsSnapshot, error)
	RecentDecisions(ctx context.Context, founderID string, since time.Time, limit int) ([]dom.Decision, error)
	RecentWins(ctx context.Context, founderID string, since time.Time, limit int) ([]dom.JournalEntry, error)
}

type PGContextRepo struct {
	db *pgxpool.Pool
}

func NewPGContextRepo(db *pgxpool.Pool) *PGContextRepo {
	return &PGContextRepo{db: db}
}

func (r *PGContextRepo) EventsForDay(ctx context.Context, founderID string, dayStart time.Time) ([]dom.CalendarEvent, error) {
	query := `
		SELECT id, founder_id, title, start_time, end_time, event_type, attendees, created_at
		FROM calendar_events
		WHERE founder_id = $1 AND start_time >= $2 AND start_time < $3
		ORDER BY start_time ASC`
	rows, err := r.db.Query(ctx, query, founderID, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []dom.CalendarEvent
	for rows.Next() {
		var e dom.CalendarEvent
		if err := rows.Scan(&e.ID, &e.FounderID, &e.Title, &e.StartTime, &e.EndTime, &e.EventType, &e.Attendees, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *PGContextRepo) ActiveTasks(ctx context.Context, founderID string, limit int) ([]dom.Task, error) {
	query := `
		SELECT id, founder_id, title, priority, status, due_date, context, created_at
		FROM tasks
		WHERE founder_id = $1 AND status IN ('TODO', 'IN_PROGRESS')
		ORDER BY priority ASC, due_date ASC NULLS LAST
		LIMIT $2`
	rows, err := r.db.Query(ctx, query, founderID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []dom.Task
	for rows.Next() {
		var t dom.Task
		if err := rows.Scan(&t.ID, &t.FounderID, &t.Title, &t.Priority, &t.Status, &t.DueDate, &t.Context, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// LatestMetrics returns the newest snapshot or nil when the founder has none.
func (r *PGContextRepo) LatestMetrics(ctx context.Context, founderID string) (*dom.MetricsSnapshot, error) {
	query := `
		SELECT id, founder_id, date, runway_months, mrr, users, burn_rate, team_size
		FROM company_metrics
		WHERE founder_id = $1
		ORDER BY date DESC
		LIMIT 1`
	var m dom.MetricsSnapshot
	err := r.db.QueryRow(ctx, query, founderID).Scan(
		&m.ID, &m.FounderID, &m.Date, &m.RunwayMonths, &m.MRR, &m.Users, &m.BurnRate, &m.TeamSize,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PGContextRepo) RecentDecisions(ctx context.Context, founderID string, since time.Time, limit int) ([]dom.Decision, error) {
	query := `
		SELECT id, founder_id, title, made_at, created_at
		FROM decisions
		WHERE founder_id = $1 AND created_at >= $2
		ORDER BY created_at DESC
		LIMIT $3`
	rows, err := r.db.Query(ctx, query, founderID, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decisions []dom.Decision
	for rows.Next() {
		var d dom.Decision
		if err := rows.Scan(&d.ID, &d.FounderID, &d.Title, &d.MadeAt, &d.CreatedAt); err != nil {
			return nil, err
		}
		decisions = append(decisions, d)
	}
	return decisions, rows.Err()
}

// RecentWins lists WIN journal entries created since the cutoff, newest first
// by the entry's own date field.
func (r *PGContextRepo) RecentWins(ctx context.Context, founderID string, since time.Time, limit int) ([]dom.JournalEntry, error) {
	query := `
		SELECT id, founder_id, type, content, date, created_at
		FROM journal_entries
		WHERE founder_id = $1 AND type = 'WIN' AND created_at >= $2
		ORDER BY date DESC
		LIMIT $3`
	rows, err := r.db.Query(ctx, query, founderID, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []dom.JournalEntry
	for rows.Next() {
		var e dom.JournalEntry
		if err := rows.Scan(&e.ID, &e.FounderID, &e.Type, &e.Content, &e.Date, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
