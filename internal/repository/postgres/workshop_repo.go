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

type workshopRepo struct {
	db *pgxpool.Pool
}

func NewWorkshopRepository(db *pgxpool.Pool) domain.WorkshopRepository {
	return &workshopRepo{db: db}
}

func (r *workshopRepo) Create(ctx context.Context, workshop *domain.Workshop) error {
	query := `INSERT INTO workshops (company_id, title, description, start_date, end_date, location, website, picture, saves, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRow(ctx, query,
		workshop.CompanyID, workshop.Title, workshop.Description, workshop.StartDate, workshop.EndDate,
		workshop.Location, workshop.Website, workshop.Picture, workshop.Saves,
		workshop.CreatedAt, workshop.UpdatedAt,
	).Scan(&workshop.ID)
}

func (r *workshopRepo) GetByID(ctx context.Context, id int64) (*domain.Workshop, error) {
	query := `SELECT id, company_id, title, description, start_date, end_date, location, website, picture, saves, created_at, updated_at
              FROM workshops WHERE id = $1`
	var w domain.Workshop
	err := r.db.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.CompanyID, &w.Title, &w.Description, &w.StartDate, &w.EndDate,
		&w.Location, &w.Website, &w.Picture, &w.Saves, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *workshopRepo) Fetch(ctx context.Context, filter domain.WorkshopFilter, limit, offset int) ([]domain.WorkshopSummary, int64, error) {
	var conds []string
	var args []any

	if len(filter.OrganizerNames) > 0 {
		args = append(args, filter.OrganizerNames)
		conds = append(conds, fmt.Sprintf("c.name = ANY($%d)", len(args)))
	}
	if len(filter.Locations) > 0 {
		args = append(args, filter.Locations)
		conds = append(conds, fmt.Sprintf("w.location = ANY($%d)", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM workshops w JOIN companies c ON w.company_id = c.id` + where
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit)
	limitPos := len(args)
	args = append(args, offset)

	query := fmt.Sprintf(`
		SELECT w.id, w.title, c.name, w.start_date, w.end_date, w.location, w.saves
		FROM workshops w
		JOIN companies c ON w.company_id = c.id%s
		ORDER BY w.start_date ASC
		LIMIT $%d OFFSET $%d`, where, limitPos, limitPos+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var workshops []domain.WorkshopSummary
	for rows.Next() {
		var s domain.WorkshopSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.CompanyName, &s.StartDate, &s.EndDate, &s.Location, &s.Saves); err != nil {
			return nil, 0, err
		}
		workshops = append(workshops, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return workshops, total, nil
}
