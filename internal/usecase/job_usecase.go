package usecase

import (
	"context"
	"time"

	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) error {
	exists, err := u.companyRepo.Exists(ctx, job.CompanyID)
	if err != nil {
		return apperror.Internal(err)
	}
	if !exists {
		return apperror.BadRequest("The referenced company does not exist")
	}

	// Business Validation
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.SalaryMin > job.SalaryMax {
		return apperror.BadRequest("SalaryMin cannot be greater than SalaryMax")
	}

	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return err
	}
	job.ProjectStatus(time.Now())
	return nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	job, err := u.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	job.ProjectStatus(time.Now())
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]domain.JobWithCompany, int64, error) {
	limit, offset := paginate(page, pageSize)
	jobs, total, err := u.jobRepo.Fetch(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	projectAll(jobs)
	return jobs, total, nil
}

func (u *jobUsecase) ListPublishedJobs(ctx context.Context, page, pageSize int) ([]domain.JobWithCompany, int64, error) {
	limit, offset := paginate(page, pageSize)
	jobs, total, err := u.jobRepo.FetchPublished(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	projectAll(jobs)
	return jobs, total, nil
}

func (u *jobUsecase) ListJobsByCompany(ctx context.Context, companyID int64, page, pageSize int) ([]domain.Job, int64, error) {
	limit, offset := paginate(page, pageSize)
	jobs, total, err := u.jobRepo.FetchByCompanyID(ctx, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	now := time.Now()
	for i := range jobs {
		jobs[i].ProjectStatus(now)
	}
	return jobs, total, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, job *domain.Job) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.SalaryMin > job.SalaryMax {
		return apperror.BadRequest("SalaryMin cannot be greater than SalaryMax")
	}

	job.UpdatedAt = time.Now()

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return err
	}
	job.ProjectStatus(time.Now())
	return nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) error {
	return u.jobRepo.Delete(ctx, id)
}

// paginate converts 1-based page numbers into limit/offset with defaults.
func paginate(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}

// projectAll applies the status projection uniformly to a collection. Every
// read path goes through this or ProjectStatus directly.
func projectAll(jobs []domain.JobWithCompany) {
	now := time.Now()
	for i := range jobs {
		jobs[i].ProjectStatus(now)
	}
}
