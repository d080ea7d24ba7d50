package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/internal/usecase"
)

func openJob() *domain.Job {
	deadline := time.Now().Add(72 * time.Hour)
	return &domain.Job{
		ID:                  10,
		Title:               "Backend Engineer",
		Published:           true,
		ApplicationDeadline: &deadline,
	}
}

func seeker() *domain.User {
	return &domain.User{ID: 1, UserType: domain.UserTypeJobSeeker, Email: "ana@example.com"}
}

func TestApplyToJob(t *testing.T) {
	t.Run("Should create an application in applied status", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)

		jobRepo.On("GetByID", mock.Anything, int64(10)).Return(openJob(), nil).Once()
		userRepo.On("GetByID", mock.Anything, int64(1)).Return(seeker(), nil).Once()
		appRepo.On("CheckExists", mock.Anything, int64(10), int64(1)).Return(false, nil).Once()
		appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil).Once()

		app, err := uc.ApplyToJob(context.Background(), 1, 10, "I would love this role")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
		if assert.NotNil(t, app.CoverLetter) {
			assert.Equal(t, "I would love this role", *app.CoverLetter)
		}
		appRepo.AssertExpectations(t)
	})

	t.Run("Should refuse an unpublished job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)

		job := openJob()
		job.Published = false
		jobRepo.On("GetByID", mock.Anything, int64(10)).Return(job, nil).Once()

		_, err := uc.ApplyToJob(context.Background(), 1, 10, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unpublished")
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should refuse a job past its deadline", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)

		job := openJob()
		expired := time.Now().Add(-72 * time.Hour)
		job.ApplicationDeadline = &expired
		jobRepo.On("GetByID", mock.Anything, int64(10)).Return(job, nil).Once()

		_, err := uc.ApplyToJob(context.Background(), 1, 10, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "deadline for this job has passed")
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should refuse non job seeker applicants", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)

		staff := seeker()
		staff.UserType = domain.UserTypeStaff
		jobRepo.On("GetByID", mock.Anything, int64(10)).Return(openJob(), nil).Once()
		userRepo.On("GetByID", mock.Anything, int64(1)).Return(staff, nil).Once()

		_, err := uc.ApplyToJob(context.Background(), 1, 10, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only job seekers can apply")
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should refuse a duplicate application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)

		jobRepo.On("GetByID", mock.Anything, int64(10)).Return(openJob(), nil).Once()
		userRepo.On("GetByID", mock.Anything, int64(1)).Return(seeker(), nil).Once()
		appRepo.On("CheckExists", mock.Anything, int64(10), int64(1)).Return(true, nil).Once()

		_, err := uc.ApplyToJob(context.Background(), 1, 10, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)

	t.Run("Should reject an unknown status", func(t *testing.T) {
		err := uc.UpdateApplicationStatus(context.Background(), 3, "shortlisted")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status")
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should move an existing application forward", func(t *testing.T) {
		appRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Application{ID: 3}, nil).Once()
		appRepo.On("UpdateStatus", mock.Anything, int64(3), "accepted").Return(nil).Once()

		err := uc.UpdateApplicationStatus(context.Background(), 3, "accepted")
		assert.NoError(t, err)
		appRepo.AssertExpectations(t)
	})
}
