package usecase_test

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) error {
	return m.Called(ctx, user, profile).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetDetail(ctx context.Context, id int64) (*domain.JobDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobDetail), args.Error(1)
}

func (m *MockJobRepo) Fetch(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.JobSummary, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	var jobs []domain.JobSummary
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.JobSummary)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}

type MockWorkExperienceRepo struct {
	mock.Mock
}

func (m *MockWorkExperienceRepo) Create(ctx context.Context, exp *domain.WorkExperience) error {
	return m.Called(ctx, exp).Error(0)
}

func (m *MockWorkExperienceRepo) GetByID(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkExperience), args.Error(1)
}

type MockWorkshopRepo struct {
	mock.Mock
}

func (m *MockWorkshopRepo) Create(ctx context.Context, workshop *domain.Workshop) error {
	return m.Called(ctx, workshop).Error(0)
}

func (m *MockWorkshopRepo) GetByID(ctx context.Context, id int64) (*domain.Workshop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workshop), args.Error(1)
}

func (m *MockWorkshopRepo) Fetch(ctx context.Context, filter domain.WorkshopFilter, limit, offset int) ([]domain.WorkshopSummary, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	var workshops []domain.WorkshopSummary
	if args.Get(0) != nil {
		workshops = args.Get(0).([]domain.WorkshopSummary)
	}
	return workshops, args.Get(1).(int64), args.Error(2)
}

type MockBookmarkRepo struct {
	mock.Mock
}

func (m *MockBookmarkRepo) Add(ctx context.Context, profileID int64, kind domain.ItemKind, itemID int64) error {
	return m.Called(ctx, profileID, kind, itemID).Error(0)
}

func (m *MockBookmarkRepo) Remove(ctx context.Context, profileID int64, kind domain.ItemKind, itemID int64) error {
	return m.Called(ctx, profileID, kind, itemID).Error(0)
}

func (m *MockBookmarkRepo) ListIDs(ctx context.Context, profileID int64, kind domain.ItemKind) ([]int64, error) {
	args := m.Called(ctx, profileID, kind)
	var ids []int64
	if args.Get(0) != nil {
		ids = args.Get(0).([]int64)
	}
	return ids, args.Error(1)
}

func (m *MockBookmarkRepo) ListJobSummaries(ctx context.Context, profileID int64) ([]domain.JobSummary, error) {
	args := m.Called(ctx, profileID)
	var jobs []domain.JobSummary
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.JobSummary)
	}
	return jobs, args.Error(1)
}

func (m *MockBookmarkRepo) ListWorkExperienceSummaries(ctx context.Context, profileID int64) ([]domain.WorkExperienceSummary, error) {
	args := m.Called(ctx, profileID)
	var exps []domain.WorkExperienceSummary
	if args.Get(0) != nil {
		exps = args.Get(0).([]domain.WorkExperienceSummary)
	}
	return exps, args.Error(1)
}

func (m *MockBookmarkRepo) ListWorkshopSummaries(ctx context.Context, profileID int64) ([]domain.WorkshopSummary, error) {
	args := m.Called(ctx, profileID)
	var workshops []domain.WorkshopSummary
	if args.Get(0) != nil {
		workshops = args.Get(0).([]domain.WorkshopSummary)
	}
	return workshops, args.Error(1)
}
