package usecase

import (
	"context"
	"time"

	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	userRepo        domain.UserRepository
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
	}
}

// ApplyToJob lets a job seeker apply to a published, still-active job.
func (uc *applicationUsecase) ApplyToJob(ctx context.Context, userID, jobID int64, coverLetter string) (*domain.Application, error) {
	// 1. Validate job exists and is still open
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if !job.Published {
		return nil, apperror.BadRequest("Cannot apply to an unpublished job")
	}
	job.ProjectStatus(time.Now())
	if job.Status != domain.JobStatusActive {
		return nil, apperror.BadRequest("The application deadline for this job has passed")
	}

	// 2. Validate applicant
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	if user.UserType != domain.UserTypeJobSeeker {
		return nil, apperror.Forbidden("Only job seekers can apply to jobs")
	}

	// 3. Duplicate check
	exists, err := uc.applicationRepo.CheckExists(ctx, jobID, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.BadRequest("You have already applied to this job")
	}

	// 4. Create application
	var coverLetterPtr *string
	if coverLetter != "" {
		coverLetterPtr = &coverLetter
	}

	now := time.Now()
	app := &domain.Application{
		JobID:       jobID,
		UserID:      userID,
		Status:      domain.ApplicationStatusApplied,
		CoverLetter: coverLetterPtr,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (uc *applicationUsecase) GetUserApplications(ctx context.Context, userID int64) ([]domain.Application, error) {
	return uc.applicationRepo.GetByUserID(ctx, userID)
}

func (uc *applicationUsecase) ListByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	return uc.applicationRepo.GetByJobID(ctx, jobID)
}

// UpdateApplicationStatus moves an application along
// applied → reviewed → accepted / rejected.
func (uc *applicationUsecase) UpdateApplicationStatus(ctx context.Context, applicationID int64, status string) error {
	validStatuses := map[string]bool{
		domain.ApplicationStatusReviewed: true,
		domain.ApplicationStatusAccepted: true,
		domain.ApplicationStatusRejected: true,
	}
	if !validStatuses[status] {
		return apperror.BadRequest("Invalid status. Must be: reviewed, accepted, or rejected")
	}

	if _, err := uc.applicationRepo.GetByID(ctx, applicationID); err != nil {
		return apperror.NotFound("Application not found")
	}

	return uc.applicationRepo.UpdateStatus(ctx, applicationID, status)
}

func (uc *applicationUsecase) WithdrawApplication(ctx context.Context, applicationID int64) error {
	if err := uc.applicationRepo.Delete(ctx, applicationID); err != nil {
		return apperror.NotFound("Application not found")
	}
	return nil
}
