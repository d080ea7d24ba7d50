package domain

import (
	"context"
	"time"
)

type Company struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	Website      *string    `json:"website,omitempty"`
	ContactEmail string     `json:"contact_email"`
	ContactPhone *string    `json:"contact_phone,omitempty"`
	LogoURL      *string    `json:"logo_url,omitempty"`
	FoundedDate  *time.Time `json:"founded_date,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CompanyPayload is the embedded company section of a company-type
// registration request.
type CompanyPayload struct {
	Name         string `json:"name" validate:"required,max=200"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Website      string `json:"website" validate:"omitempty,url"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Fetch(ctx context.Context, limit, offset int) ([]Company, int64, error)
	Update(ctx context.Context, company *Company) error
	UpdateLogo(ctx context.Context, companyID int64, logoURL string) (old *string, err error)
	Delete(ctx context.Context, id int64) error
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, company *Company) error
	GetCompany(ctx context.Context, id int64) (*Company, error)
	ListCompanies(ctx context.Context, page, pageSize int) ([]Company, int64, error)
	UpdateCompany(ctx context.Context, company *Company) error
	SetLogo(ctx context.Context, companyID int64, logoURL string) (old *string, err error)
	DeleteCompany(ctx context.Context, id int64) error
}
