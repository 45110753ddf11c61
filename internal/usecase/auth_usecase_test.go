package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/hash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testTokens() *auth.Manager {
	return auth.NewManager("test-secret", time.Minute, time.Hour)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create account with profile and return tokens", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("CreateWithProfile", ctx, mock.AnythingOfType("*domain.User"), mock.AnythingOfType("*domain.Profile")).
			Return(nil).
			Run(func(args mock.Arguments) {
				u := args.Get(1).(*domain.User)
				p := args.Get(2).(*domain.Profile)
				u.ID = 1
				// the stored credential must be a hash, never the raw password
				assert.NotEqual(t, "pw123", u.PasswordHash)
				assert.True(t, hash.Verify("pw123", u.PasswordHash))
				assert.Equal(t, "Alice", p.Name)
				assert.Empty(t, p.Description)
				assert.Empty(t, p.Picture)
			})

		registered, err := uc.Register(ctx, "alice", "alice@x.com", "pw123", "Alice")
		assert.NoError(t, err)
		assert.Equal(t, "alice", registered.Username)
		assert.Equal(t, "alice@x.com", registered.Email)
		assert.Equal(t, "Alice", registered.Name)
		assert.NotEmpty(t, registered.AccessToken)
		assert.NotEmpty(t, registered.RefreshToken)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should surface duplicate identity from storage", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		dup := apperror.Conflict("Username or email already exists. Please choose a different username/email.")
		mockRepo.On("CreateWithProfile", ctx, mock.Anything, mock.Anything).Return(dup)

		_, err := uc.Register(ctx, "alice", "alice@x.com", "pw123", "Alice")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("Should reject missing fields", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		_, err := uc.Register(ctx, "alice", "", "pw123", "Alice")
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "CreateWithProfile", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hashed, _ := hash.Password("pw123")
	account := &domain.User{ID: 1, Username: "alice", Email: "alice@x.com", PasswordHash: hashed}

	t.Run("Should match identifier with @ as email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByEmail", ctx, "alice@x.com").Return(account, nil)

		pair, err := uc.Login(ctx, "alice@x.com", "pw123")
		assert.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		mockRepo.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
	})

	t.Run("Should match identifier without @ as username", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByUsername", ctx, "alice").Return(account, nil)

		_, err := uc.Login(ctx, "alice", "pw123")
		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Should return 404 for unknown account", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByUsername", ctx, "bob").Return(nil, domain.ErrNotFound)

		_, err := uc.Login(ctx, "bob", "pw123")
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("Should return 401 for wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByUsername", ctx, "alice").Return(account, nil)

		_, err := uc.Login(ctx, "alice", "wrong")
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 401, appErr.Code)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	tokens := testTokens()
	account := &domain.User{ID: 1, Username: "alice", Email: "alice@x.com"}

	t.Run("Should issue a fresh pair for a valid refresh token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		pair, err := tokens.IssuePair(1, "alice")
		assert.NoError(t, err)

		mockRepo.On("GetByID", ctx, int64(1)).Return(account, nil)

		fresh, err := uc.Refresh(ctx, pair.RefreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, fresh.AccessToken)
		assert.NotEmpty(t, fresh.RefreshToken)
	})

	t.Run("Should reject an access token used as refresh", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		pair, err := tokens.IssuePair(1, "alice")
		assert.NoError(t, err)

		_, err = uc.Refresh(ctx, pair.AccessToken)
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 401, appErr.Code)
	})
}
