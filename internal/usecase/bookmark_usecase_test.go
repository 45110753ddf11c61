package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type bookmarkMocks struct {
	bookmarks *MockBookmarkRepo
	users     *MockUserRepo
	jobs      *MockJobRepo
	exps      *MockWorkExperienceRepo
	workshops *MockWorkshopRepo
}

func newBookmarkUC() (bookmarkMocks, domain.BookmarkUsecase) {
	m := bookmarkMocks{
		bookmarks: new(MockBookmarkRepo),
		users:     new(MockUserRepo),
		jobs:      new(MockJobRepo),
		exps:      new(MockWorkExperienceRepo),
		workshops: new(MockWorkshopRepo),
	}
	uc := usecase.NewBookmarkUsecase(m.bookmarks, m.users, m.jobs, m.exps, m.workshops)
	return m, uc
}

func TestToggleBookmark(t *testing.T) {
	ctx := context.Background()

	t.Run("Saving an existing job succeeds", func(t *testing.T) {
		m, uc := newBookmarkUC()
		m.jobs.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1}, nil)
		m.bookmarks.On("Add", ctx, int64(10), domain.KindJob, int64(1)).Return(nil)

		msg, err := uc.Toggle(ctx, 10, domain.KindJob, 1, true)
		assert.NoError(t, err)
		assert.Equal(t, "Job saved successfully", msg)
	})

	t.Run("Saving a missing job is 404 and never touches the ledger", func(t *testing.T) {
		m, uc := newBookmarkUC()
		m.jobs.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.Toggle(ctx, 10, domain.KindJob, 99, true)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
		m.bookmarks.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unsaving a job that was never saved is a silent no-op", func(t *testing.T) {
		m, uc := newBookmarkUC()
		m.jobs.On("GetByID", ctx, int64(1)).Return(&domain.Job{ID: 1}, nil)
		m.bookmarks.On("Remove", ctx, int64(10), domain.KindJob, int64(1)).Return(nil)

		msg, err := uc.Toggle(ctx, 10, domain.KindJob, 1, false)
		assert.NoError(t, err)
		assert.Equal(t, "Job unsaved successfully", msg)
	})

	t.Run("Double-saving a workshop fails with 400", func(t *testing.T) {
		m, uc := newBookmarkUC()
		m.workshops.On("GetByID", ctx, int64(2)).Return(&domain.Workshop{ID: 2}, nil)
		m.bookmarks.On("Add", ctx, int64(10), domain.KindWorkshop, int64(2)).Return(domain.ErrAlreadyBookmarked)

		_, err := uc.Toggle(ctx, 10, domain.KindWorkshop, 2, true)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
		assert.Contains(t, appErr.Message, "already saved")
	})

	t.Run("Unsaving an unsaved workshop fails with 400", func(t *testing.T) {
		m, uc := newBookmarkUC()
		m.workshops.On("GetByID", ctx, int64(2)).Return(&domain.Workshop{ID: 2}, nil)
		m.bookmarks.On("Remove", ctx, int64(10), domain.KindWorkshop, int64(2)).Return(domain.ErrNotBookmarked)

		_, err := uc.Toggle(ctx, 10, domain.KindWorkshop, 2, false)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
		assert.Contains(t, appErr.Message, "not saved")
	})

	t.Run("Unknown kind is rejected", func(t *testing.T) {
		_, uc := newBookmarkUC()
		_, err := uc.Toggle(ctx, 10, domain.ItemKind("poster"), 1, true)
		assert.Error(t, err)
	})
}

func TestListSaved(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns saved job summaries for the user", func(t *testing.T) {
		m, uc := newBookmarkUC()
		m.users.On("GetByUsername", ctx, "alice").Return(&domain.User{ID: 10, Username: "alice"}, nil)
		m.bookmarks.On("ListJobSummaries", ctx, int64(10)).Return([]domain.JobSummary{{ID: 1, Title: "Eng"}}, nil)

		jobs, err := uc.ListSavedJobs(ctx, "alice")
		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
		assert.Equal(t, int64(1), jobs[0].ID)
	})

	t.Run("Unknown user is 404", func(t *testing.T) {
		m, uc := newBookmarkUC()
		m.users.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.ListSavedWorkshops(ctx, "ghost")
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
	})
}
