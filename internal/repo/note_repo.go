package repo

import (
	"context"
	"time"

	dom "github.com/foundrylabs/daybrief/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NoteRepo persists daily notes. The daily_notes table carries
// UNIQUE (founder_id, date); Create surfaces the violation so callers can
// resolve the loser of a concurrent create by re-reading.
type NoteRepo interface {
	FindByDate(ctx context.Context, founderID string, date time.Time) (dom.DailyNote, error)
	Create(ctx context.Context, n dom.DailyNote) (dom.DailyNote, error)
	MarkViewed(ctx context.Context, id string, at time.Time) error
}

type PGNoteRepo struct {
	db *pgxpool.Pool
}

func NewPGNoteRepo(db *pgxpool.Pool) *PGNoteRepo {
	return &PGNoteRepo{db: db}
}

const noteColumns = `id, founder_id, date, day_type, executive_summary, schedule,
	decisions, strategic_guidance, problems, wins, viewed_at, created_at`

func (r *PGNoteRepo) FindByDate(ctx context.Context, founderID string, date time.Time) (dom.DailyNote, error) {
	query := `SELECT ` + noteColumns + ` FROM daily_notes WHERE founder_id = $1 AND date = $2`
	var n dom.DailyNote
	err := r.db.QueryRow(ctx, query, founderID, date).Scan(
		&n.ID, &n.FounderID, &n.Date, &n.DayType,
		&n.ExecutiveSummary, &n.Schedule, &n.Decisions, &n.StrategicGuidance,
		&n.Problems, &n.Wins, &n.ViewedAt, &n.CreatedAt,
	)
	return n, err
}

func (r *PGNoteRepo) Create(ctx context.Context, n dom.DailyNote) (dom.DailyNote, error) {
	query := `
		INSERT INTO daily_notes (id, founder_id, date, day_type, executive_summary,
			schedule, decisions, strategic_guidance, problems, wins)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + noteColumns
	var out dom.DailyNote
	err := r.db.QueryRow(ctx, query,
		n.ID, n.FounderID, n.Date, n.DayType,
		n.ExecutiveSummary, n.Schedule, n.Decisions, n.StrategicGuidance,
		n.Problems, n.Wins,
	).Scan(
		&out.ID, &out.FounderID, &out.Date, &out.DayType,
		&out.ExecutiveSummary, &out.Schedule, &out.Decisions, &out.StrategicGuidance,
		&out.Problems, &out.Wins, &out.ViewedAt, &out.CreatedAt,
	)
	return out, err
}

// MarkViewed stamps viewed_at once; later calls are no-ops.
func (r *PGNoteRepo) MarkViewed(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE daily_notes SET viewed_at = $2 WHERE id = $1 AND viewed_at IS NULL`
	_, err := r.db.Exec(ctx, query, id, at)
	return err
}
