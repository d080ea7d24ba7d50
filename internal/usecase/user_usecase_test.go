package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/internal/usecase"
	"go-jobtrack-backend/pkg/apperror"
)

func TestGetUser(t *testing.T) {
	t.Run("Should return the user", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3, FirstName: "Ana"}, nil).Once()
		uc := usecase.NewUserUsecase(userRepo)

		user, err := uc.GetUser(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, "Ana", user.FirstName)
	})

	t.Run("Should map a missing user to 404", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, int64(3)).Return(nil, domain.ErrNotFound).Once()
		uc := usecase.NewUserUsecase(userRepo)

		_, err := uc.GetUser(context.Background(), 3)
		var appErr *apperror.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, http.StatusNotFound, appErr.Code)
			assert.Equal(t, "User not found", appErr.Message)
		}
	})

	t.Run("Should not report a repository outage as not found", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, int64(3)).Return(nil, errors.New("connection refused")).Once()
		uc := usecase.NewUserUsecase(userRepo)

		_, err := uc.GetUser(context.Background(), 3)
		var appErr *apperror.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		}
		assert.NotContains(t, err.Error(), "not found")
	})
}

func TestUpdateUserNormalizesSkills(t *testing.T) {
	userRepo := new(MockUserRepo)
	userRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once().Run(func(args mock.Arguments) {
		user := args.Get(1).(*domain.User)
		assert.Equal(t, []string{"go", "sql"}, user.Skills)
	})
	uc := usecase.NewUserUsecase(userRepo)

	err := uc.UpdateUser(context.Background(), &domain.User{
		ID:        3,
		FirstName: "Ana",
		LastName:  "Ionescu",
		Skills:    []string{" Go ", "SQL", "go"},
	})
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}
