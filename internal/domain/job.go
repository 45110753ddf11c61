package domain

import (
	"context"
	"time"
)

// Job type choices.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeInternship = "Internship"
	JobTypeFreelance  = "Freelance"
	JobTypeOther      = "Other"
)

// Required experience choices: less than a year, 1-2 years, 2-6 years,
// more than 6 years.
const (
	ExperienceLessThan1    = "LT1"
	ExperienceBetween1And2 = "B12"
	ExperienceBetween2And6 = "B26"
	ExperienceGreaterThan6 = "GT6"
)

func ValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeFreelance, JobTypeOther:
		return true
	}
	return false
}

func ValidExperience(e string) bool {
	switch e {
	case ExperienceLessThan1, ExperienceBetween1And2, ExperienceBetween2And6, ExperienceGreaterThan6:
		return true
	}
	return false
}

type Job struct {
	ID               int64     `json:"id"`
	CompanyID        int64     `json:"company_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Responsibilities string    `json:"responsibilities"`
	Qualifications   string    `json:"qualifications"`
	Salary           int64     `json:"salary"`
	Location         string    `json:"location"`
	JobType          string    `json:"job_type"`
	Experience       string    `json:"experience"`
	IsActive         bool      `json:"is_active"`
	Website          string    `json:"website,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// JobSummary is the list/bookmark view of a job: no long-form text fields.
type JobSummary struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company"`
	Salary      int64     `json:"salary"`
	Location    string    `json:"location"`
	JobType     string    `json:"job_type"`
	Experience  string    `json:"experience"`
	IsActive    bool      `json:"is_active"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JobDetail extends the summary with the long-form fields.
type JobDetail struct {
	JobSummary
	Description      string `json:"description"`
	Responsibilities string `json:"responsibilities"`
	Qualifications   string `json:"qualifications"`
	Website          string `json:"website,omitempty"`
}

// JobFilter narrows a job listing. Empty slices mean no constraint on
// that dimension.
type JobFilter struct {
	CompanyNames []string
	JobTypes     []string
	Experiences  []string
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetDetail(ctx context.Context, id int64) (*JobDetail, error)
	Fetch(ctx context.Context, filter JobFilter, limit, offset int) ([]JobSummary, int64, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, companyID int64, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*JobDetail, error)
	ListJobs(ctx context.Context, filter JobFilter, page, pageSize int) ([]JobSummary, int64, error)
}
