package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type workExperienceUsecase struct {
	expRepo     domain.WorkExperienceRepository
	companyRepo domain.CompanyRepository
}

func NewWorkExperienceUsecase(expRepo domain.WorkExperienceRepository, companyRepo domain.CompanyRepository) domain.WorkExperienceUsecase {
	return &workExperienceUsecase{expRepo: expRepo, companyRepo: companyRepo}
}

func (u *workExperienceUsecase) CreateWorkExperience(ctx context.Context, companyID int64, exp *domain.WorkExperience) error {
	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return apperror.Internal(err)
	}
	exp.CompanyID = company.ID

	if exp.Role == "" {
		return apperror.BadRequest("Role is required")
	}
	if !exp.EndDate.IsZero() && exp.EndDate.Before(exp.StartDate) {
		return apperror.BadRequest("End date must not precede start date")
	}

	exp.CreatedAt = time.Now()
	exp.UpdatedAt = time.Now()

	if err := u.expRepo.Create(ctx, exp); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *workExperienceUsecase) GetWorkExperience(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	exp, err := u.expRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Work experience not found")
		}
		return nil, apperror.Internal(err)
	}
	return exp, nil
}
