package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (company_id, title, description, responsibilities, qualifications, salary, location, job_type, experience, is_active, website, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.CompanyID, job.Title, job.Description, job.Responsibilities, job.Qualifications,
		job.Salary, job.Location, job.JobType, job.Experience, job.IsActive, job.Website,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, company_id, title, description, responsibilities, qualifications, salary, location, job_type, experience, is_active, website, created_at, updated_at
              FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.CompanyID, &job.Title, &job.Description, &job.Responsibilities, &job.Qualifications,
		&job.Salary, &job.Location, &job.JobType, &job.Experience, &job.IsActive, &job.Website,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// GetDetail joins the owning company for the detail view.
func (r *jobRepo) GetDetail(ctx context.Context, id int64) (*domain.JobDetail, error) {
	query := `
		SELECT j.id, j.title, c.name, j.salary, j.location, j.job_type, j.experience,
		       j.is_active, j.updated_at, j.description, j.responsibilities, j.qualifications, j.website
		FROM jobs j
		JOIN companies c ON j.company_id = c.id
		WHERE j.id = $1`

	var d domain.JobDetail
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Title, &d.CompanyName, &d.Salary, &d.Location, &d.JobType, &d.Experience,
		&d.IsActive, &d.UpdatedAt, &d.Description, &d.Responsibilities, &d.Qualifications, &d.Website,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Fetch lists job summaries matching the filter, newest first, plus the
// total match count for pagination.
func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.JobSummary, int64, error) {
	var conds []string
	var args []any

	if len(filter.CompanyNames) > 0 {
		args = append(args, filter.CompanyNames)
		conds = append(conds, fmt.Sprintf("c.name = ANY($%d)", len(args)))
	}
	if len(filter.JobTypes) > 0 {
		args = append(args, filter.JobTypes)
		conds = append(conds, fmt.Sprintf("j.job_type = ANY($%d)", len(args)))
	}
	if len(filter.Experiences) > 0 {
		args = append(args, filter.Experiences)
		conds = append(conds, fmt.Sprintf("j.experience = ANY($%d)", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM jobs j JOIN companies c ON j.company_id = c.id` + where
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit)
	limitPos := len(args)
	args = append(args, offset)

	query := fmt.Sprintf(`
		SELECT j.id, j.title, c.name, j.salary, j.location, j.job_type, j.experience, j.is_active, j.updated_at
		FROM jobs j
		JOIN companies c ON j.company_id = c.id%s
		ORDER BY j.created_at DESC
		LIMIT $%d OFFSET $%d`, where, limitPos, limitPos+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobSummary
	for rows.Next() {
		var s domain.JobSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.CompanyName, &s.Salary, &s.Location, &s.JobType, &s.Experience, &s.IsActive, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}
