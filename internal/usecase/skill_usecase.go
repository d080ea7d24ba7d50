package usecase

import (
	"context"
	"strings"

	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
}

func NewSkillUsecase(skillRepo domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo}
}

func (u *skillUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return u.skillRepo.Fetch(ctx)
}

func (u *skillUsecase) CreateSkill(ctx context.Context, skill *domain.Skill) error {
	skill.Name = strings.ToLower(strings.TrimSpace(skill.Name))
	if skill.Name == "" {
		return apperror.BadRequest("Skill name is required")
	}
	return u.skillRepo.Create(ctx, skill)
}

func (u *skillUsecase) DeleteSkill(ctx context.Context, id int64) error {
	return u.skillRepo.Delete(ctx, id)
}
