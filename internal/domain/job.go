package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Effective job statuses, derived from the application deadline.
const (
	JobStatusActive   = "Active"
	JobStatusInactive = "Inactive"
)

type Job struct {
	ID                  int64      `json:"id"`
	CompanyID           int64      `json:"company_id"`
	PostedByUserID      int64      `json:"posted_by_user_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Requirements        string     `json:"requirements"`
	JobType             *string    `json:"job_type"`
	EmploymentType      *string    `json:"employment_type"`
	Location            string     `json:"location"`
	SalaryMin           float64    `json:"salary_min"`
	SalaryMax           float64    `json:"salary_max"`
	Skills              []string   `json:"skills"`
	Published           bool       `json:"published"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`

	// Status is computed from ApplicationDeadline on every read path and
	// never persisted. See ProjectStatus.
	Status string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectStatus sets the effective status from the application deadline
// compared to now, date-only in UTC. Idempotent; a stored status value is
// never trusted.
func (j *Job) ProjectStatus(now time.Time) {
	if j.ApplicationDeadline == nil {
		j.Status = JobStatusActive
		return
	}
	today := now.UTC().Truncate(24 * time.Hour)
	deadline := j.ApplicationDeadline.UTC().Truncate(24 * time.Hour)
	if deadline.Before(today) {
		j.Status = JobStatusInactive
	} else {
		j.Status = JobStatusActive
	}
}

// JobWithCompany extends Job with company profile information for list pages.
type JobWithCompany struct {
	Job
	CompanyName    string  `json:"company_name"`
	CompanyLogoURL *string `json:"company_logo_url"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithCompany(ctx context.Context, id int64) (*JobWithCompany, error)
	Fetch(ctx context.Context, limit, offset int) ([]JobWithCompany, int64, error)
	FetchPublished(ctx context.Context, limit, offset int) ([]JobWithCompany, int64, error)
	FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*JobWithCompany, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]JobWithCompany, int64, error)
	ListPublishedJobs(ctx context.Context, page, pageSize int) ([]JobWithCompany, int64, error)
	ListJobsByCompany(ctx context.Context, companyID int64, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, job *Job) error
	DeleteJob(ctx context.Context, id int64) error
}
