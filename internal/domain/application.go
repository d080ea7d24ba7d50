package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusApplied  = "applied"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Application joins a job seeker to a job posting.
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	UserID      int64     `json:"user_id"`
	Status      string    `json:"status"` // applied → reviewed → accepted / rejected
	CoverLetter *string   `json:"cover_letter,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined data for list responses
	ApplicantName *string `json:"applicant_name,omitempty"`
	JobTitle      *string `json:"job_title,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByUserID(ctx context.Context, userID int64) ([]Application, error)
	CheckExists(ctx context.Context, jobID, userID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type ApplicationUsecase interface {
	ApplyToJob(ctx context.Context, userID, jobID int64, coverLetter string) (*Application, error)
	GetUserApplications(ctx context.Context, userID int64) ([]Application, error)
	ListByJobID(ctx context.Context, jobID int64) ([]Application, error)
	UpdateApplicationStatus(ctx context.Context, applicationID int64, status string) error
	WithdrawApplication(ctx context.Context, applicationID int64) error
}
