package repo

import (
	"context"

	dom "github.com/foundrylabs/daybrief/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FounderRepo provides founder profile persistence.
type FounderRepo interface {
	GetByID(ctx context.Context, id string) (dom.Founder, error)
	GetByEmail(ctx context.Context, email string) (dom.Founder, error)
	Create(ctx context.Context, f dom.Founder) (dom.Founder, error)
}

type PGFounderRepo struct {
	db *pgxpool.Pool
}

func NewPGFounderRepo(db *pgxpool.Pool) *PGFounderRepo {
	return &PGFounderRepo{db: db}
}

func (r *PGFounderRepo) GetByID(ctx context.Context, id string) (dom.Founder, error) {
	query := `
		SELECT id, email, password_hash, name, company, created_at
		FROM founders WHERE id = $1`
	var f dom.Founder
	err := r.db.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Email, &f.PasswordHash, &f.Name, &f.Company, &f.CreatedAt,
	)
	return f, err
}

func (r *PGFounderRepo) GetByEmail(ctx context.Context, email string) (dom.Founder, error) {
	query := `
		SELECT id, email, password_hash, name, company, created_at
		FROM founders WHERE email = $1`
	var f dom.Founder
	err := r.db.QueryRow(ctx, query, email).Scan(
		&f.ID, &f.Email, &f.PasswordHash, &f.Name, &f.Company, &f.CreatedAt,
	)
	return f, err
}

func (r *PGFounderRepo) Create(ctx context.Context, f dom.Founder) (dom.Founder, error) {
	query := `
		INSERT INTO founders (id, email, password_hash, name, company)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, password_hash, name, company, created_at`
	var out dom.Founder
	err := r.db.QueryRow(ctx, query, f.ID, f.Email, f.PasswordHash, f.Name, f.Company).Scan(
		&out.ID, &out.Email, &out.PasswordHash, &out.Name, &out.Company, &out.CreatedAt,
	)
	return out, err
}
