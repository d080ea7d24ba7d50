package domain

import (
	"context"
	"time"
)

// User type codes
const (
	UserTypeJobSeeker = "job_seeker"
	UserTypeCompany   = "company"
	UserTypeStaff     = "staff"
	UserTypeAdmin     = "admin"
)

type User struct {
	ID              int64     `json:"id"`
	CompanyID       *int64    `json:"company_id,omitempty"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	UserType        string    `json:"user_type"`
	Phone           *string   `json:"phone,omitempty"`
	Location        string    `json:"location"`
	ProfilePhotoURL *string   `json:"profile_photo_url,omitempty"`
	Skills          []string  `json:"skills"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RegisterRequest is the registration payload. CompanyPayload is required
// for company-type registrations, CompanyID for staff-type ones.
type RegisterRequest struct {
	FirstName   string          `json:"firstName" validate:"required,max=100"`
	LastName    string          `json:"lastName" validate:"required,max=100"`
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=8"`
	PhoneNumber string          `json:"phoneNumber" validate:"omitempty,max=20"`
	Location    string          `json:"location"`
	CompanyID   *int64          `json:"companyId,omitempty"`
	UserType    string          `json:"userType" validate:"required"`
	Company     *CompanyPayload `json:"companyDto,omitempty"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	// CreateWithCompany inserts the company and the owning user in a single
	// transaction. The user's CompanyID is set to the new company id.
	CreateWithCompany(ctx context.Context, user *User, company *Company) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Update(ctx context.Context, user *User) error
	UpdateProfilePhoto(ctx context.Context, userID int64, photoURL string) (old *string, err error)
	// FindBySkills returns users whose declared skill tokens intersect the
	// given set, in stable id order.
	FindBySkills(ctx context.Context, tokens []string) ([]User, error)
}

type RegistrationUsecase interface {
	Register(ctx context.Context, req *RegisterRequest) (int64, error)
}

type UserUsecase interface {
	GetUser(ctx context.Context, id int64) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
	SetProfilePhoto(ctx context.Context, userID int64, photoURL string) (old *string, err error)
}
