package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type bookmarkRepo struct {
	db *pgxpool.Pool
}

func NewBookmarkRepository(db *pgxpool.Pool) domain.BookmarkRepository {
	return &bookmarkRepo{db: db}
}

// Add inserts a membership row. Workshop saves also bump the save counter;
// the insert and the counter update share one transaction, and the
// composite unique index serializes concurrent saves so the counter can
// never outrun the membership set.
func (r *bookmarkRepo) Add(ctx context.Context, profileID int64, kind domain.ItemKind, itemID int64) error {
	insert := `INSERT INTO bookmarks (profile_id, item_kind, item_id)
               VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`

	if kind != domain.KindWorkshop {
		_, err := r.db.Exec(ctx, insert, profileID, kind, itemID)
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, insert, profileID, kind, itemID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAlreadyBookmarked
	}

	if _, err := tx.Exec(ctx, `UPDATE workshops SET saves = saves + 1 WHERE id = $1`, itemID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Remove deletes a membership row, decrementing the workshop counter in
// the same transaction. Missing rows are a silent no-op except for
// workshops, which report ErrNotBookmarked.
func (r *bookmarkRepo) Remove(ctx context.Context, profileID int64, kind domain.ItemKind, itemID int64) error {
	del := `DELETE FROM bookmarks WHERE profile_id = $1 AND item_kind = $2 AND item_id = $3`

	if kind != domain.KindWorkshop {
		_, err := r.db.Exec(ctx, del, profileID, kind, itemID)
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, del, profileID, kind, itemID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotBookmarked
	}

	if _, err := tx.Exec(ctx, `UPDATE workshops SET saves = saves - 1 WHERE id = $1 AND saves > 0`, itemID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *bookmarkRepo) ListIDs(ctx context.Context, profileID int64, kind domain.ItemKind) ([]int64, error) {
	query := `SELECT item_id FROM bookmarks WHERE profile_id = $1 AND item_kind = $2 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, profileID, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *bookmarkRepo) ListJobSummaries(ctx context.Context, profileID int64) ([]domain.JobSummary, error) {
	query := `
		SELECT j.id, j.title, c.name, j.salary, j.location, j.job_type, j.experience, j.is_active, j.updated_at
		FROM bookmarks b
		JOIN jobs j ON j.id = b.item_id
		JOIN companies c ON c.id = j.company_id
		WHERE b.profile_id = $1 AND b.item_kind = $2
		ORDER BY b.created_at`

	rows, err := r.db.Query(ctx, query, profileID, domain.KindJob)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.JobSummary{}
	for rows.Next() {
		var s domain.JobSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.CompanyName, &s.Salary, &s.Location, &s.JobType, &s.Experience, &s.IsActive, &s.UpdatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, s)
	}
	return jobs, rows.Err()
}

func (r *bookmarkRepo) ListWorkExperienceSummaries(ctx context.Context, profileID int64) ([]domain.WorkExperienceSummary, error) {
	query := `
		SELECT w.id, w.role, c.name, w.start_date, w.end_date
		FROM bookmarks b
		JOIN work_experiences w ON w.id = b.item_id
		JOIN companies c ON c.id = w.company_id
		WHERE b.profile_id = $1 AND b.item_kind = $2
		ORDER BY b.created_at`

	rows, err := r.db.Query(ctx, query, profileID, domain.KindWorkExperience)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exps := []domain.WorkExperienceSummary{}
	for rows.Next() {
		var s domain.WorkExperienceSummary
		if err := rows.Scan(&s.ID, &s.Role, &s.CompanyName, &s.StartDate, &s.EndDate); err != nil {
			return nil, err
		}
		exps = append(exps, s)
	}
	return exps, rows.Err()
}

func (r *bookmarkRepo) ListWorkshopSummaries(ctx context.Context, profileID int64) ([]domain.WorkshopSummary, error) {
	query := `
		SELECT w.id, w.title, c.name, w.start_date, w.end_date, w.location, w.saves
		FROM bookmarks b
		JOIN workshops w ON w.id = b.item_id
		JOIN companies c ON c.id = w.company_id
		WHERE b.profile_id = $1 AND b.item_kind = $2
		ORDER BY b.created_at`

	rows, err := r.db.Query(ctx, query, profileID, domain.KindWorkshop)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workshops := []domain.WorkshopSummary{}
	for rows.Next() {
		var s domain.WorkshopSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.CompanyName, &s.StartDate, &s.EndDate, &s.Location, &s.Saves); err != nil {
			return nil, err
		}
		workshops = append(workshops, s)
	}
	return workshops, rows.Err()
}
