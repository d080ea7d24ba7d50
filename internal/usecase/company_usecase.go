package usecase

import (
	"context"
	"time"

	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo}
}

func (u *companyUsecase) CreateCompany(ctx context.Context, company *domain.Company) error {
	if company.Name == "" {
		return apperror.BadRequest("Company name is required")
	}
	if company.Status == "" {
		company.Status = "active"
	}
	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()
	return u.companyRepo.Create(ctx, company)
}

func (u *companyUsecase) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	return u.companyRepo.GetByID(ctx, id)
}

func (u *companyUsecase) ListCompanies(ctx context.Context, page, pageSize int) ([]domain.Company, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.companyRepo.Fetch(ctx, limit, offset)
}

func (u *companyUsecase) UpdateCompany(ctx context.Context, company *domain.Company) error {
	if company.Name == "" {
		return apperror.BadRequest("Company name is required")
	}
	company.UpdatedAt = time.Now()
	return u.companyRepo.Update(ctx, company)
}

func (u *companyUsecase) SetLogo(ctx context.Context, companyID int64, logoURL string) (*string, error) {
	return u.companyRepo.UpdateLogo(ctx, companyID, logoURL)
}

func (u *companyUsecase) DeleteCompany(ctx context.Context, id int64) error {
	return u.companyRepo.Delete(ctx, id)
}
