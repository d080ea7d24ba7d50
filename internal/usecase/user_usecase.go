package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
)

type userUsecase struct {
	userRepo domain.UserRepository
}

func NewUserUsecase(userRepo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, user *domain.User) error {
	if user.FirstName == "" || user.LastName == "" {
		return apperror.BadRequest("First and last name are required")
	}
	// Skill tokens are normalized at the boundary; re-normalize here so a
	// direct API update cannot introduce mixed-case or padded tokens.
	user.Skills = domain.ParseSkillList(domain.JoinSkillList(user.Skills))
	user.UpdatedAt = time.Now()
	return u.userRepo.Update(ctx, user)
}

func (u *userUsecase) SetProfilePhoto(ctx context.Context, userID int64, photoURL string) (*string, error) {
	return u.userRepo.UpdateProfilePhoto(ctx, userID, photoURL)
}
