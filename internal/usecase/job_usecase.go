package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, companyRepo: companyRepo}
}

// CreateJob attaches the job to the resolved company. The company id is
// server-assigned: whatever CompanyID the caller put on the job struct
// is overwritten.
func (u *jobUsecase) CreateJob(ctx context.Context, companyID int64, job *domain.Job) error {
	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return apperror.Internal(err)
	}
	job.CompanyID = company.ID

	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Salary < 0 {
		return apperror.BadRequest("Salary must not be negative")
	}
	if job.JobType != "" && !domain.ValidJobType(job.JobType) {
		return apperror.BadRequest("Invalid job type")
	}
	if job.Experience != "" && !domain.ValidExperience(job.Experience) {
		return apperror.BadRequest("Invalid experience level")
	}

	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobDetail, error) {
	detail, err := u.jobRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return detail, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter, page, pageSize int) ([]domain.JobSummary, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.Fetch(ctx, filter, pageSize, offset)
}
