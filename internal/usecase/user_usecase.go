package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/hash"
)

type userUsecase struct {
	userRepo     domain.UserRepository
	bookmarkRepo domain.BookmarkRepository
}

func NewUserUsecase(userRepo domain.UserRepository, bookmarkRepo domain.BookmarkRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo, bookmarkRepo: bookmarkRepo}
}

func (u *userUsecase) GetProfile(ctx context.Context, username string) (*domain.ProfileView, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	profile, err := u.userRepo.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	view := &domain.ProfileView{
		Username:    user.Username,
		Email:       user.Email,
		Name:        profile.Name,
		Description: profile.Description,
		Picture:     profile.Picture,
		Location:    profile.Location,
	}

	if view.SavedJobs, err = u.bookmarkRepo.ListIDs(ctx, user.ID, domain.KindJob); err != nil {
		return nil, apperror.Internal(err)
	}
	if view.SavedWorkExperiences, err = u.bookmarkRepo.ListIDs(ctx, user.ID, domain.KindWorkExperience); err != nil {
		return nil, apperror.Internal(err)
	}
	if view.SavedWorkshops, err = u.bookmarkRepo.ListIDs(ctx, user.ID, domain.KindWorkshop); err != nil {
		return nil, apperror.Internal(err)
	}

	return view, nil
}

// UpdateProfile applies merge semantics: blank patch fields leave the
// stored values untouched, and email/password only change when they
// actually differ. Only the account owner may update.
func (u *userUsecase) UpdateProfile(ctx context.Context, actingUserID int64, username string, patch *domain.ProfilePatch) error {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	if user.ID != actingUserID {
		return apperror.Unauthorized("You can only update your own profile")
	}

	now := time.Now()

	userChanged := false
	if patch.Email != "" && patch.Email != user.Email {
		user.Email = patch.Email
		userChanged = true
	}
	if patch.Password != "" && !hash.Verify(patch.Password, user.PasswordHash) {
		hashed, err := hash.Password(patch.Password)
		if err != nil {
			return apperror.Internal(err)
		}
		user.PasswordHash = hashed
		userChanged = true
	}
	if userChanged {
		user.UpdatedAt = now
		if err := u.userRepo.Update(ctx, user); err != nil {
			return err
		}
	}

	profile, err := u.userRepo.GetProfile(ctx, user.ID)
	if err != nil {
		return apperror.Internal(err)
	}

	if patch.Name != "" {
		profile.Name = patch.Name
	}
	if patch.Description != "" {
		profile.Description = patch.Description
	}
	if patch.Picture != "" {
		profile.Picture = patch.Picture
	}
	if patch.Location != "" {
		profile.Location = patch.Location
	}
	profile.UpdatedAt = now

	if err := u.userRepo.UpdateProfile(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
