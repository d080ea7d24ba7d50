package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
)

type profileUsecase struct {
	educationRepo  domain.EducationRepository
	experienceRepo domain.ExperienceRepository
	userRepo       domain.UserRepository
	validate       *validator.Validate
}

func NewProfileUsecase(
	educationRepo domain.EducationRepository,
	experienceRepo domain.ExperienceRepository,
	userRepo domain.UserRepository,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		educationRepo:  educationRepo,
		experienceRepo: experienceRepo,
		userRepo:       userRepo,
		validate:       validate,
	}
}

func (uc *profileUsecase) ownerExists(ctx context.Context, userID int64) error {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return apperror.NotFound("User not found")
	}
	return nil
}

func (uc *profileUsecase) AddEducation(ctx context.Context, edu *domain.Education) error {
	if err := uc.validate.Struct(edu); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if err := uc.ownerExists(ctx, edu.UserID); err != nil {
		return err
	}
	edu.CreatedAt = time.Now()
	edu.UpdatedAt = time.Now()
	return uc.educationRepo.Create(ctx, edu)
}

func (uc *profileUsecase) ListEducation(ctx context.Context, userID int64) ([]domain.Education, error) {
	return uc.educationRepo.GetByUserID(ctx, userID)
}

func (uc *profileUsecase) UpdateEducation(ctx context.Context, edu *domain.Education) error {
	if err := uc.validate.Struct(edu); err != nil {
		return apperror.BadRequest(err.Error())
	}
	edu.UpdatedAt = time.Now()
	return uc.educationRepo.Update(ctx, edu)
}

func (uc *profileUsecase) DeleteEducation(ctx context.Context, id int64) error {
	return uc.educationRepo.Delete(ctx, id)
}

func (uc *profileUsecase) AddExperience(ctx context.Context, exp *domain.Experience) error {
	if err := uc.validate.Struct(exp); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if err := uc.ownerExists(ctx, exp.UserID); err != nil {
		return err
	}
	exp.CreatedAt = time.Now()
	exp.UpdatedAt = time.Now()
	return uc.experienceRepo.Create(ctx, exp)
}

func (uc *profileUsecase) ListExperience(ctx context.Context, userID int64) ([]domain.Experience, error) {
	return uc.experienceRepo.GetByUserID(ctx, userID)
}

func (uc *profileUsecase) UpdateExperience(ctx context.Context, exp *domain.Experience) error {
	if err := uc.validate.Struct(exp); err != nil {
		return apperror.BadRequest(err.Error())
	}
	exp.UpdatedAt = time.Now()
	return uc.experienceRepo.Update(ctx, exp)
}

func (uc *profileUsecase) DeleteExperience(ctx context.Context, id int64) error {
	return uc.experienceRepo.Delete(ctx, id)
}
