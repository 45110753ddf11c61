package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type workExperienceRepo struct {
	db *pgxpool.Pool
}

func NewWorkExperienceRepository(db *pgxpool.Pool) domain.WorkExperienceRepository {
	return &workExperienceRepo{db: db}
}

func (r *workExperienceRepo) Create(ctx context.Context, exp *domain.WorkExperience) error {
	query := `INSERT INTO work_experiences (company_id, role, description, start_date, end_date, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRow(ctx, query,
		exp.CompanyID, exp.Role, exp.Description, exp.StartDate, exp.EndDate,
		exp.CreatedAt, exp.UpdatedAt,
	).Scan(&exp.ID)
}

func (r *workExperienceRepo) GetByID(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	query := `SELECT id, company_id, role, description, start_date, end_date, created_at, updated_at
              FROM work_experiences WHERE id = $1`
	var exp domain.WorkExperience
	err := r.db.QueryRow(ctx, query, id).Scan(
		&exp.ID, &exp.CompanyID, &exp.Role, &exp.Description, &exp.StartDate, &exp.EndDate,
		&exp.CreatedAt, &exp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &exp, nil
}
