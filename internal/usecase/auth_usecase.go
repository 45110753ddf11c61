package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/hash"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.Manager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.Manager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

// Register creates the account and its empty profile atomically, then
// issues a session pair. Duplicate username/email surfaces as a 400.
func (u *authUsecase) Register(ctx context.Context, username, email, password, name string) (*domain.RegisteredUser, error) {
	if username == "" || email == "" || password == "" || name == "" {
		return nil, apperror.BadRequest("username, email, password and name are required")
	}

	hashed, err := hash.Password(password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &domain.Profile{
		Name:        name,
		Description: "",
		Picture:     "",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	pair, err := u.tokens.IssuePair(user.ID, user.Username)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.RegisteredUser{
		Username: user.Username,
		Email:    user.Email,
		Name:     profile.Name,
		TokenPair: domain.TokenPair{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		},
	}, nil
}

// Login matches the identifier against email when it contains '@',
// otherwise against username.
func (u *authUsecase) Login(ctx context.Context, identifier, password string) (*domain.TokenPair, error) {
	if identifier == "" || password == "" {
		return nil, apperror.BadRequest("identifier and password are required")
	}

	var user *domain.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = u.userRepo.GetByEmail(ctx, identifier)
	} else {
		user, err = u.userRepo.GetByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("No account matches the given username or email")
		}
		return nil, apperror.Internal(err)
	}

	if !hash.Verify(password, user.PasswordHash) {
		return nil, apperror.Unauthorized("Incorrect password")
	}

	pair, err := u.tokens.IssuePair(user.ID, user.Username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.TokenPair{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := u.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired refresh token")
	}

	// Account must still exist; tokens outlive nothing else here.
	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid or expired refresh token")
		}
		return nil, apperror.Internal(err)
	}

	pair, err := u.tokens.IssuePair(user.ID, user.Username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.TokenPair{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}
