package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type bookmarkUsecase struct {
	bookmarkRepo domain.BookmarkRepository
	userRepo     domain.UserRepository
	jobRepo      domain.JobRepository
	expRepo      domain.WorkExperienceRepository
	workshopRepo domain.WorkshopRepository
}

func NewBookmarkUsecase(
	bookmarkRepo domain.BookmarkRepository,
	userRepo domain.UserRepository,
	jobRepo domain.JobRepository,
	expRepo domain.WorkExperienceRepository,
	workshopRepo domain.WorkshopRepository,
) domain.BookmarkUsecase {
	return &bookmarkUsecase{
		bookmarkRepo: bookmarkRepo,
		userRepo:     userRepo,
		jobRepo:      jobRepo,
		expRepo:      expRepo,
		workshopRepo: workshopRepo,
	}
}

func kindLabel(kind domain.ItemKind) string {
	switch kind {
	case domain.KindJob:
		return "Job"
	case domain.KindWorkExperience:
		return "Work experience"
	case domain.KindWorkshop:
		return "Workshop"
	}
	return "Item"
}

// Toggle saves or unsaves an item for the profile. The item must exist.
// Jobs and work experiences toggle idempotently; workshops reject
// duplicate saves and absent unsaves so the save counter stays honest.
func (u *bookmarkUsecase) Toggle(ctx context.Context, profileID int64, kind domain.ItemKind, itemID int64, save bool) (string, error) {
	if err := u.resolveItem(ctx, kind, itemID); err != nil {
		return "", err
	}

	label := kindLabel(kind)

	if save {
		err := u.bookmarkRepo.Add(ctx, profileID, kind, itemID)
		switch {
		case errors.Is(err, domain.ErrAlreadyBookmarked):
			return "", apperror.BadRequest(label + " is already saved")
		case err != nil:
			return "", apperror.Internal(err)
		}
		return label + " saved successfully", nil
	}

	err := u.bookmarkRepo.Remove(ctx, profileID, kind, itemID)
	switch {
	case errors.Is(err, domain.ErrNotBookmarked):
		return "", apperror.BadRequest(label + " is not saved")
	case err != nil:
		return "", apperror.Internal(err)
	}
	return label + " unsaved successfully", nil
}

func (u *bookmarkUsecase) resolveItem(ctx context.Context, kind domain.ItemKind, itemID int64) error {
	var err error
	switch kind {
	case domain.KindJob:
		_, err = u.jobRepo.GetByID(ctx, itemID)
	case domain.KindWorkExperience:
		_, err = u.expRepo.GetByID(ctx, itemID)
	case domain.KindWorkshop:
		_, err = u.workshopRepo.GetByID(ctx, itemID)
	default:
		return apperror.BadRequest("Unknown item kind")
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound(kindLabel(kind) + " not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *bookmarkUsecase) ListSavedJobs(ctx context.Context, username string) ([]domain.JobSummary, error) {
	user, err := u.lookupUser(ctx, username)
	if err != nil {
		return nil, err
	}
	jobs, err := u.bookmarkRepo.ListJobSummaries(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *bookmarkUsecase) ListSavedWorkExperiences(ctx context.Context, username string) ([]domain.WorkExperienceSummary, error) {
	user, err := u.lookupUser(ctx, username)
	if err != nil {
		return nil, err
	}
	exps, err := u.bookmarkRepo.ListWorkExperienceSummaries(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return exps, nil
}

func (u *bookmarkUsecase) ListSavedWorkshops(ctx context.Context, username string) ([]domain.WorkshopSummary, error) {
	user, err := u.lookupUser(ctx, username)
	if err != nil {
		return nil, err
	}
	workshops, err := u.bookmarkRepo.ListWorkshopSummaries(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return workshops, nil
}

func (u *bookmarkUsecase) lookupUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
