package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
	"go-jobtrack-backend/pkg/auth"
)

type registrationUsecase struct {
	userRepo    domain.UserRepository
	companyRepo domain.CompanyRepository
	validate    *validator.Validate
}

func NewRegistrationUsecase(
	userRepo domain.UserRepository,
	companyRepo domain.CompanyRepository,
	validate *validator.Validate,
) domain.RegistrationUsecase {
	return &registrationUsecase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		validate:    validate,
	}
}

// Register creates the base user row, and for company-type registrations the
// company row as well, atomically. Returns the new user id.
func (uc *registrationUsecase) Register(ctx context.Context, req *domain.RegisterRequest) (int64, error) {
	if err := uc.validate.Struct(req); err != nil {
		return 0, apperror.BadRequest(err.Error())
	}

	// 1. Duplicate email (case-insensitive)
	emailTaken, err := uc.userRepo.ExistsByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return 0, apperror.Internal(err)
	}
	if emailTaken {
		return 0, apperror.BadRequest("Email is already registered.")
	}

	// 2. Duplicate phone, only when supplied
	if req.PhoneNumber != "" {
		phoneTaken, err := uc.userRepo.ExistsByPhone(ctx, req.PhoneNumber)
		if err != nil {
			return 0, apperror.Internal(err)
		}
		if phoneTaken {
			return 0, apperror.BadRequest("Phone number already in use.")
		}
	}

	// 3. Hash the password before anything is persisted
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		Location:     req.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.PhoneNumber != "" {
		user.Phone = &req.PhoneNumber
	}

	// 4. Branch on user type
	switch req.UserType {
	case domain.UserTypeCompany:
		if req.Company == nil {
			return 0, apperror.BadRequest("Company details are required for company registration")
		}
		user.UserType = domain.UserTypeCompany
		company := &domain.Company{
			Name:         req.Company.Name,
			Description:  req.Company.Description,
			Location:     req.Company.Location,
			ContactEmail: req.Company.ContactEmail,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if req.Company.Website != "" {
			company.Website = &req.Company.Website
		}
		if req.Company.ContactPhone != "" {
			company.ContactPhone = &req.Company.ContactPhone
		}
		// Single transaction: a failed user insert must not leave an
		// orphan company row.
		if err := uc.userRepo.CreateWithCompany(ctx, user, company); err != nil {
			return 0, err
		}
		return user.ID, nil

	case domain.UserTypeStaff:
		if req.CompanyID == nil {
			return 0, apperror.BadRequest("A company id is required for staff registration")
		}
		exists, err := uc.companyRepo.Exists(ctx, *req.CompanyID)
		if err != nil {
			return 0, apperror.Internal(err)
		}
		if !exists {
			return 0, apperror.BadRequest("The referenced company does not exist")
		}
		user.UserType = domain.UserTypeStaff
		user.CompanyID = req.CompanyID

	case domain.UserTypeJobSeeker:
		user.UserType = domain.UserTypeJobSeeker

	case domain.UserTypeAdmin:
		user.UserType = domain.UserTypeAdmin

	default:
		return 0, apperror.BadRequest("Invalid user type specified.")
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}
