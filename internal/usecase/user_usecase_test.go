package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/hash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should include all three bookmark sets", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		mockBookmarks := new(MockBookmarkRepo)
		uc := usecase.NewUserUsecase(mockUsers, mockBookmarks)

		mockUsers.On("GetByUsername", ctx, "alice").Return(&domain.User{ID: 1, Username: "alice", Email: "alice@x.com"}, nil)
		mockUsers.On("GetProfile", ctx, int64(1)).Return(&domain.Profile{UserID: 1, Name: "Alice", Description: "bio"}, nil)
		mockBookmarks.On("ListIDs", ctx, int64(1), domain.KindJob).Return([]int64{3, 7}, nil)
		mockBookmarks.On("ListIDs", ctx, int64(1), domain.KindWorkExperience).Return([]int64{}, nil)
		mockBookmarks.On("ListIDs", ctx, int64(1), domain.KindWorkshop).Return([]int64{2}, nil)

		view, err := uc.GetProfile(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, []int64{3, 7}, view.SavedJobs)
		assert.Empty(t, view.SavedWorkExperiences)
		assert.Equal(t, []int64{2}, view.SavedWorkshops)
	})

	t.Run("Should return 404 for unknown user", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockUsers, new(MockBookmarkRepo))

		mockUsers.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)

		_, err := uc.GetProfile(ctx, "ghost")
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestUpdateProfileMergeSemantics(t *testing.T) {
	ctx := context.Background()

	setup := func() (*MockUserRepo, domain.UserUsecase) {
		mockUsers := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockUsers, new(MockBookmarkRepo))
		return mockUsers, uc
	}

	hashed, _ := hash.Password("pw123")

	t.Run("Blank description keeps the stored value", func(t *testing.T) {
		mockUsers, uc := setup()
		mockUsers.On("GetByUsername", ctx, "alice").Return(&domain.User{ID: 1, Username: "alice", Email: "alice@x.com", PasswordHash: hashed}, nil)
		mockUsers.On("GetProfile", ctx, int64(1)).Return(&domain.Profile{UserID: 1, Name: "Alice", Description: "old bio"}, nil)
		mockUsers.On("UpdateProfile", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, "old bio", p.Description)
		})

		err := uc.UpdateProfile(ctx, 1, "alice", &domain.ProfilePatch{Description: ""})
		assert.NoError(t, err)
		mockUsers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Non-blank description overwrites", func(t *testing.T) {
		mockUsers, uc := setup()
		mockUsers.On("GetByUsername", ctx, "alice").Return(&domain.User{ID: 1, Username: "alice", Email: "alice@x.com", PasswordHash: hashed}, nil)
		mockUsers.On("GetProfile", ctx, int64(1)).Return(&domain.Profile{UserID: 1, Name: "Alice", Description: "old bio"}, nil)
		mockUsers.On("UpdateProfile", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, "new bio", p.Description)
		})

		err := uc.UpdateProfile(ctx, 1, "alice", &domain.ProfilePatch{Description: "new bio"})
		assert.NoError(t, err)
	})

	t.Run("Unchanged email does not touch the account row", func(t *testing.T) {
		mockUsers, uc := setup()
		mockUsers.On("GetByUsername", ctx, "alice").Return(&domain.User{ID: 1, Username: "alice", Email: "alice@x.com", PasswordHash: hashed}, nil)
		mockUsers.On("GetProfile", ctx, int64(1)).Return(&domain.Profile{UserID: 1, Name: "Alice"}, nil)
		mockUsers.On("UpdateProfile", ctx, mock.Anything).Return(nil)

		err := uc.UpdateProfile(ctx, 1, "alice", &domain.ProfilePatch{Email: "alice@x.com"})
		assert.NoError(t, err)
		mockUsers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("New email updates the account row", func(t *testing.T) {
		mockUsers, uc := setup()
		mockUsers.On("GetByUsername", ctx, "alice").Return(&domain.User{ID: 1, Username: "alice", Email: "alice@x.com", PasswordHash: hashed}, nil)
		mockUsers.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "new@x.com", u.Email)
		})
		mockUsers.On("GetProfile", ctx, int64(1)).Return(&domain.Profile{UserID: 1, Name: "Alice"}, nil)
		mockUsers.On("UpdateProfile", ctx, mock.Anything).Return(nil)

		err := uc.UpdateProfile(ctx, 1, "alice", &domain.ProfilePatch{Email: "new@x.com"})
		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
	})

	t.Run("Only the owner may update", func(t *testing.T) {
		mockUsers, uc := setup()
		mockUsers.On("GetByUsername", ctx, "alice").Return(&domain.User{ID: 1, Username: "alice", PasswordHash: hashed}, nil)

		err := uc.UpdateProfile(ctx, 99, "alice", &domain.ProfilePatch{Name: "Mallory"})
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 401, appErr.Code)
		mockUsers.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})
}
