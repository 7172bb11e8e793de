package repo

import (
	"context"
	"time"

	dom "github.com/foundrylabs/daybrief/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InsightRepo persists strategic insights.
type InsightRepo interface {
	Create(ctx context.Context, i dom.Insight) (dom.Insight, error)
	ListActive(ctx context.Context, founderID string, limit int) ([]dom.Insight, error)
	Dismiss(ctx context.Context, founderID, id string, at time.Time) (bool, error)
}

type PGInsightRepo struct {
	db *pgxpool.Pool
}

func NewPGInsightRepo(db *pgxpool.Pool) *PGInsightRepo {
	return &PGInsightRepo{db: db}
}

func (r *PGInsightRepo) Create(ctx context.Context, i dom.Insight) (dom.Insight, error) {
	query := `
		INSERT INTO insights (id, founder_id, type, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, founder_id, type, content, generated_at, dismissed_at`
	var out dom.Insight
	err := r.db.QueryRow(ctx, query, i.ID, i.FounderID, i.Type, i.Content).Scan(
		&out.ID, &out.FounderID, &out.Type, &out.Content, &out.GeneratedAt, &out.DismissedAt,
	)
	return out, err
}

func (r *PGInsightRepo) ListActive(ctx context.Context, founderID string, limit int) ([]dom.Insight, error) {
	query := `
		SELECT id, founder_id, type, content, generated_at, dismissed_at
		FROM insights
		WHERE founder_id = $1 AND dismissed_at IS NULL
		ORDER BY generated_at DESC
		LIMIT $2`
	rows, err := r.db.Query(ctx, query, founderID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var insights []dom.Insight
	for rows.Next() {
		var i dom.Insight
		if err := rows.Scan(&i.ID, &i.FounderID, &i.Type, &i.Content, &i.GeneratedAt, &i.DismissedAt); err != nil {
			return nil, err
		}
		insights = append(insights, i)
	}
	return insights, rows.Err()
}

// Dismiss returns false when the insight does not exist or belongs to another founder.
func (r *PGInsightRepo) Dismiss(ctx context.Context, founderID, id string, at time.Time) (bool, error) {
	query := `
		UPDATE insights SET dismissed_at = $3
		WHERE id = $1 AND founder_id = $2 AND dismissed_at IS NULL`
	tag, err := r.db.Exec(ctx, query, id, founderID, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
