package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type workshopUsecase struct {
	workshopRepo domain.WorkshopRepository
	companyRepo  domain.CompanyRepository
}

func NewWorkshopUsecase(workshopRepo domain.WorkshopRepository, companyRepo domain.CompanyRepository) domain.WorkshopUsecase {
	return &workshopUsecase{workshopRepo: workshopRepo, companyRepo: companyRepo}
}

func (u *workshopUsecase) CreateWorkshop(ctx context.Context, companyID int64, workshop *domain.Workshop) error {
	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return apperror.Internal(err)
	}
	workshop.CompanyID = company.ID

	if workshop.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if !workshop.EndDate.IsZero() && workshop.EndDate.Before(workshop.StartDate) {
		return apperror.BadRequest("End date must not precede start date")
	}

	// New workshops start unsaved.
	workshop.Saves = 0
	workshop.CreatedAt = time.Now()
	workshop.UpdatedAt = time.Now()

	if err := u.workshopRepo.Create(ctx, workshop); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *workshopUsecase) GetWorkshop(ctx context.Context, id int64) (*domain.Workshop, error) {
	workshop, err := u.workshopRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Workshop not found")
		}
		return nil, apperror.Internal(err)
	}
	return workshop, nil
}

func (u *workshopUsecase) ListWorkshops(ctx context.Context, filter domain.WorkshopFilter, page, pageSize int) ([]domain.WorkshopSummary, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.workshopRepo.Fetch(ctx, filter, pageSize, offset)
}
