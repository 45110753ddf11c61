package domain

import (
	"context"
	"errors"
)

// ItemKind discriminates the bookmark join rows.
type ItemKind string

const (
	KindJob            ItemKind = "job"
	KindWorkExperience ItemKind = "work_experience"
	KindWorkshop       ItemKind = "workshop"
)

// Workshop toggles are strict: a duplicate save or an absent unsave is an
// error and must not move the save counter. Job and work-experience
// toggles are idempotent and never return these.
var (
	ErrAlreadyBookmarked = errors.New("already bookmarked")
	ErrNotBookmarked     = errors.New("not bookmarked")
)

type BookmarkRepository interface {
	// Add inserts a membership row. For jobs and work experiences a
	// duplicate insert is a no-op. For workshops the row insert and the
	// saves increment run in one transaction; a duplicate returns
	// ErrAlreadyBookmarked without touching the counter.
	Add(ctx context.Context, profileID int64, kind ItemKind, itemID int64) error
	// Remove deletes a membership row with the mirror-image semantics:
	// silent no-op for jobs/work experiences, ErrNotBookmarked plus no
	// counter change for workshops.
	Remove(ctx context.Context, profileID int64, kind ItemKind, itemID int64) error
	ListIDs(ctx context.Context, profileID int64, kind ItemKind) ([]int64, error)
	ListJobSummaries(ctx context.Context, profileID int64) ([]JobSummary, error)
	ListWorkExperienceSummaries(ctx context.Context, profileID int64) ([]WorkExperienceSummary, error)
	ListWorkshopSummaries(ctx context.Context, profileID int64) ([]WorkshopSummary, error)
}

type BookmarkUsecase interface {
	// Toggle saves (save=true) or unsaves (save=false) an item for the
	// profile and returns the human status message for the response body.
	Toggle(ctx context.Context, profileID int64, kind ItemKind, itemID int64, save bool) (string, error)
	ListSavedJobs(ctx context.Context, username string) ([]JobSummary, error)
	ListSavedWorkExperiences(ctx context.Context, username string) ([]WorkExperienceSummary, error)
	ListSavedWorkshops(ctx context.Context, username string) ([]WorkshopSummary, error)
}
