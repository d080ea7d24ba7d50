package usecase_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/internal/usecase"
)

func validSeekerRequest() *domain.RegisterRequest {
	return &domain.RegisterRequest{
		FirstName:   "Ana",
		LastName:    "Silva",
		Email:       "Ana.Silva@example.com",
		Password:    "supersecret",
		PhoneNumber: "555-0101",
		Location:    "Lisbon",
		UserType:    domain.UserTypeJobSeeker,
	}
}

func TestRegisterValidation(t *testing.T) {
	userRepo := new(MockUserRepo)
	companyRepo := new(MockCompanyRepo)
	uc := usecase.NewRegistrationUsecase(userRepo, companyRepo, validator.New())

	t.Run("Should fail when required fields are missing", func(t *testing.T) {
		_, err := uc.Register(context.Background(), &domain.RegisterRequest{})
		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should fail on short password", func(t *testing.T) {
		req := validSeekerRequest()
		req.Password = "short"
		_, err := uc.Register(context.Background(), req)
		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should fail on unknown user type", func(t *testing.T) {
		req := validSeekerRequest()
		req.UserType = "superuser"
		userRepo.On("ExistsByEmail", mock.Anything, "ana.silva@example.com").Return(false, nil).Once()
		userRepo.On("ExistsByPhone", mock.Anything, "555-0101").Return(false, nil).Once()

		_, err := uc.Register(context.Background(), req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid user type")
		userRepo.AssertNotCalled(t, "Create")
	})
}

func TestRegisterDuplicateChecks(t *testing.T) {
	t.Run("Should reject a duplicate email before any insert", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewRegistrationUsecase(userRepo, companyRepo, validator.New())

		userRepo.On("ExistsByEmail", mock.Anything, "ana.silva@example.com").Return(true, nil).Once()

		_, err := uc.Register(context.Background(), validSeekerRequest())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Email is already registered.")
		userRepo.AssertNotCalled(t, "Create")
		userRepo.AssertNotCalled(t, "CreateWithCompany")
	})

	t.Run("Should reject a duplicate phone before any insert", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewRegistrationUsecase(userRepo, companyRepo, validator.New())

		userRepo.On("ExistsByEmail", mock.Anything, "ana.silva@example.com").Return(false, nil).Once()
		userRepo.On("ExistsByPhone", mock.Anything, "555-0101").Return(true, nil).Once()

		_, err := uc.Register(context.Background(), validSeekerRequest())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Phone number already in use.")
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should skip the phone check when no phone is supplied", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewRegistrationUsecase(userRepo, companyRepo, validator.New())

		req := validSeekerRequest()
		req.PhoneNumber = ""
		userRepo.On("ExistsByEmail", mock.Anything, "ana.silva@example.com").Return(false, nil).Once()
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once()

		_, err := uc.Register(context.Background(), req)
		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "ExistsByPhone")
	})
}

func TestRegisterJobSeeker(t *testing.T) {
	userRepo := new(MockUserRepo)
	companyRepo := new(MockCompanyRepo)
	uc := usecase.NewRegistrationUsecase(userRepo, companyRepo, validator.New())

	userRepo.On("ExistsByEmail", mock.Anything, "ana.silva@example.com").Return(false, nil).Once()
	userRepo.On("ExistsByPhone", mock.Anything, "555-0101").Return(false, nil).Once()
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once().Run(func(args mock.Arguments) {
		u := args.Get(1).(*domain.User)
		u.ID = 42
		assert.Equal(t, domain.UserTypeJobSeeker, u.UserType)
		assert.Equal(t, "ana.silva@example.com", u.Email)
		assert.NotEqual(t, "supersecret", u.PasswordHash)
		assert.NotEmpty(t, u.PasswordHash)
	})

	id, err := uc.Register(context.Background(), validSeekerRequest())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	userRepo.AssertExpectations(t)
}

func TestRegisterCompany(t *testing.T) {
	t.Run("Should fail when company details are missing", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewRegistrationUsecase(userRepo, companyRepo, validator.New())

		req := validSeekerRequest()
		req.UserType = domain.UserTypeCompany
		userRepo.On("ExistsByEmail", mock.Anything, "ana.silva@example.com").Return(false, nil).Once()
		userRepo.On("ExistsByPhone", mock.Anything, "555-0101").Return(false, nil).Once()

		_, err := uc.Register(context.Background(), req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Company details are required")
		userRepo.AssertNotCalled(t, "CreateWithCompany")
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should insert company and owner atomically", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewRegistrationUsecase(userRepo, companyRepo, validator.New())

		req := validSeekerRequest()
		req.UserType = domain.UserTypeCompany
		req.Company = &domain.CompanyPayload{Name: "Acme Hiring", Location: "Porto"}

		userRepo.On("ExistsByEmail", mock.Anything, "ana.silva@example.com").Return(false, nil).Once()
		userRepo.On("ExistsByPhone", mock.Anything, "555-0101").Return(false, nil).Once()
		userRepo.On("CreateWithCompany", mock.Anything, mock.AnythingOfType("*domain.User"), mock.AnythingOfType("*domain.Company")).
			Return(nil).Once().Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			co := args.Get(2).(*domain.Company)
			u.ID = 7
			assert.Equal(t, domain.UserTypeCompany, u.UserType)
			assert.Equal(t, "Acme Hiring", co.Name)
			assert.Equal(t, "active", co.Status)
		})

		id, err := uc.Register(context.Background(), req)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), id)
		userRepo.AssertNotCalled(t, "Create")
		userRepo.AssertExpectations(t)
	})
}

func TestRegisterStaff(t *testing.T) {
	t.Run("Should fail when the referenced company does not exist", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewRegistrationUsecase(userRepo, companyRepo, validator.New())

		companyID := int64(99)
		req := validSeekerRequest()
		req.UserType = domain.UserTypeStaff
		req.CompanyID = &companyID

		userRepo.On("ExistsByEmail", mock.Anything, "ana.silva@example.com").Return(false, nil).Once()
		userRepo.On("ExistsByPhone", mock.Anything, "555-0101").Return(false, nil).Once()
		companyRepo.On("Exists", mock.Anything, companyID).Return(false, nil).Once()

		_, err := uc.Register(context.Background(), req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "The referenced company does not exist")
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should fail without a company id", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewRegistrationUsecase(userRepo, companyRepo, validator.New())

		req := validSeekerRequest()
		req.UserType = domain.UserTypeStaff

		userRepo.On("ExistsByEmail", mock.Anything, "ana.silva@example.com").Return(false, nil).Once()
		userRepo.On("ExistsByPhone", mock.Anything, "555-0101").Return(false, nil).Once()

		_, err := uc.Register(context.Background(), req)
		assert.Error(t, err)
		companyRepo.AssertNotCalled(t, "Exists")
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should attach the company id on success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewRegistrationUsecase(userRepo, companyRepo, validator.New())

		companyID := int64(12)
		req := validSeekerRequest()
		req.UserType = domain.UserTypeStaff
		req.CompanyID = &companyID

		userRepo.On("ExistsByEmail", mock.Anything, "ana.silva@example.com").Return(false, nil).Once()
		userRepo.On("ExistsByPhone", mock.Anything, "555-0101").Return(false, nil).Once()
		companyRepo.On("Exists", mock.Anything, companyID).Return(true, nil).Once()
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once().Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, domain.UserTypeStaff, u.UserType)
			if assert.NotNil(t, u.CompanyID) {
				assert.Equal(t, companyID, *u.CompanyID)
			}
		})

		_, err := uc.Register(context.Background(), req)
		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})
}
