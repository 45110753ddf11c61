package domain

import (
	"context"
	"time"
)

type WorkExperience struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"company_id"`
	Role        string    `json:"role"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WorkExperienceSummary is the list/bookmark view.
type WorkExperienceSummary struct {
	ID          int64     `json:"id"`
	Role        string    `json:"role"`
	CompanyName string    `json:"company"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

type WorkExperienceRepository interface {
	Create(ctx context.Context, exp *WorkExperience) error
	GetByID(ctx context.Context, id int64) (*WorkExperience, error)
}

type WorkExperienceUsecase interface {
	CreateWorkExperience(ctx context.Context, companyID int64, exp *WorkExperience) error
	GetWorkExperience(ctx context.Context, id int64) (*WorkExperience, error)
}
