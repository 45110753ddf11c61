package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile carries the user-facing profile data. Exactly one per User,
// created together with the account at registration.
type Profile struct {
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Picture     string    `json:"picture"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileView is the shape returned by GET /user/:username, including
// the three bookmark id sets.
type ProfileView struct {
	Username             string  `json:"username"`
	Email                string  `json:"email"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	Picture              string  `json:"picture"`
	Location             string  `json:"location"`
	SavedJobs            []int64 `json:"saved_jobs"`
	SavedWorkExperiences []int64 `json:"saved_work_experiences"`
	SavedWorkshops       []int64 `json:"saved_workshops"`
}

// ProfilePatch holds a partial profile update. Empty strings mean
// "leave the current value unchanged".
type ProfilePatch struct {
	Email       string
	Password    string
	Name        string
	Description string
	Picture     string
	Location    string
}

// TokenPair is the session credential pair issued on register/login/refresh.
type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// RegisteredUser is the register response payload. The raw password and
// its hash are never part of it.
type RegisteredUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	TokenPair
}

type UserRepository interface {
	// CreateWithProfile inserts the user row and its empty profile in one
	// transaction. Unique violations on username/email surface as a
	// Conflict app error.
	CreateWithProfile(ctx context.Context, user *User, profile *Profile) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	Update(ctx context.Context, user *User) error
	UpdateProfile(ctx context.Context, profile *Profile) error
}

type AuthUsecase interface {
	Register(ctx context.Context, username, email, password, name string) (*RegisteredUser, error)
	Login(ctx context.Context, identifier, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type UserUsecase interface {
	GetProfile(ctx context.Context, username string) (*ProfileView, error)
	UpdateProfile(ctx context.Context, actingUserID int64, username string, patch *ProfilePatch) error
}
