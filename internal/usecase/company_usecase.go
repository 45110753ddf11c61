package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo}
}

func (u *companyUsecase) CreateCompany(ctx context.Context, company *domain.Company) error {
	if company.Name == "" {
		return apperror.BadRequest("Name is required")
	}
	if company.Description == "" {
		return apperror.BadRequest("Description is required")
	}

	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()

	if err := u.companyRepo.Create(ctx, company); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *companyUsecase) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}
