package domain

import (
	"context"
	"time"
)

// Workshop is an event-style listing. Saves tracks how many profiles
// currently bookmark it and must always equal the membership count in
// the bookmarks table.
type Workshop struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"company_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Location    string    `json:"location"`
	Website     string    `json:"website,omitempty"`
	Picture     string    `json:"picture,omitempty"`
	Saves       int64     `json:"saves"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WorkshopSummary is the list/bookmark view.
type WorkshopSummary struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"organizer"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Location    string    `json:"location"`
	Saves       int64     `json:"saves"`
}

// WorkshopFilter narrows a workshop listing. Empty slices mean no
// constraint on that dimension.
type WorkshopFilter struct {
	OrganizerNames []string
	Locations      []string
}

type WorkshopRepository interface {
	Create(ctx context.Context, workshop *Workshop) error
	GetByID(ctx context.Context, id int64) (*Workshop, error)
	Fetch(ctx context.Context, filter WorkshopFilter, limit, offset int) ([]WorkshopSummary, int64, error)
}

type WorkshopUsecase interface {
	CreateWorkshop(ctx context.Context, companyID int64, workshop *Workshop) error
	GetWorkshop(ctx context.Context, id int64) (*Workshop, error)
	ListWorkshops(ctx context.Context, filter WorkshopFilter, page, pageSize int) ([]WorkshopSummary, int64, error)
}
