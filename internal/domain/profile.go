package domain

import (
	"context"
	"time"
)

// Education is a child record of a job seeker. Plain CRUD, no cross-entity
// rules beyond the owning user existing.
type Education struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	Institution  string     `json:"institution" validate:"required,max=200"`
	Degree       string     `json:"degree" validate:"required,max=200"`
	FieldOfStudy string     `json:"field_of_study"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Experience is a prior-employment record of a job seeker.
type Experience struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	CompanyName string     `json:"company_name" validate:"required,max=200"`
	JobTitle    string     `json:"job_title" validate:"required,max=200"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type EducationRepository interface {
	Create(ctx context.Context, edu *Education) error
	GetByUserID(ctx context.Context, userID int64) ([]Education, error)
	Update(ctx context.Context, edu *Education) error
	Delete(ctx context.Context, id int64) error
}

type ExperienceRepository interface {
	Create(ctx context.Context, exp *Experience) error
	GetByUserID(ctx context.Context, userID int64) ([]Experience, error)
	Update(ctx context.Context, exp *Experience) error
	Delete(ctx context.Context, id int64) error
}

// ProfileUsecase groups the job-seeker child-record operations.
type ProfileUsecase interface {
	AddEducation(ctx context.Context, edu *Education) error
	ListEducation(ctx context.Context, userID int64) ([]Education, error)
	UpdateEducation(ctx context.Context, edu *Education) error
	DeleteEducation(ctx context.Context, id int64) error

	AddExperience(ctx context.Context, exp *Experience) error
	ListExperience(ctx context.Context, userID int64) ([]Experience, error)
	UpdateExperience(ctx context.Context, exp *Experience) error
	DeleteExperience(ctx context.Context, id int64) error
}
