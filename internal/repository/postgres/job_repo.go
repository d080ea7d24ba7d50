package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"go-jobtrack-backend/internal/domain"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, company_id, posted_by_user_id, title, description, requirements, job_type, employment_type, location, salary_min, salary_max, skills, published, application_deadline, created_at, updated_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	var skills []string
	err := row.Scan(
		&j.ID, &j.CompanyID, &j.PostedByUserID, &j.Title, &j.Description, &j.Requirements,
		&j.JobType, &j.EmploymentType, &j.Location, &j.SalaryMin, &j.SalaryMax,
		pq.Array(&skills), &j.Published, &j.ApplicationDeadline, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	j.Skills = skills
	return &j, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (company_id, posted_by_user_id, title, description, requirements, job_type, employment_type, location, salary_min, salary_max, skills, published, application_deadline, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.CompanyID, job.PostedByUserID, job.Title, job.Description, job.Requirements,
		job.JobType, job.EmploymentType, job.Location, job.SalaryMin, job.SalaryMax,
		job.Skills, job.Published, job.ApplicationDeadline, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

// GetByIDWithCompany retrieves a job with company profile details.
func (r *jobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	query := `
		SELECT
			j.id, j.company_id, j.posted_by_user_id, j.title, j.description, j.requirements,
			j.job_type, j.employment_type, j.location, j.salary_min, j.salary_max,
			j.skills, j.published, j.application_deadline, j.created_at, j.updated_at,
			COALESCE(c.name, 'Unknown Company') as company_name,
			c.logo_url
		FROM jobs j
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE j.id = $1`

	var job domain.JobWithCompany
	var skills []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.CompanyID, &job.PostedByUserID, &job.Title, &job.Description, &job.Requirements,
		&job.JobType, &job.EmploymentType, &job.Location, &job.SalaryMin, &job.SalaryMax,
		pq.Array(&skills), &job.Published, &job.ApplicationDeadline, &job.CreatedAt, &job.UpdatedAt,
		&job.CompanyName, &job.CompanyLogoURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	job.Skills = skills
	return &job, nil
}

func (r *jobRepo) fetchWithCompany(ctx context.Context, where string, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	query := `
		SELECT
			j.id, j.company_id, j.posted_by_user_id, j.title, j.description, j.requirements,
			j.job_type, j.employment_type, j.location, j.salary_min, j.salary_max,
			j.skills, j.published, j.application_deadline, j.created_at, j.updated_at,
			COALESCE(c.name, 'Unknown Company') as company_name,
			c.logo_url
		FROM jobs j
		LEFT JOIN companies c ON j.company_id = c.id
		` + where + `
		ORDER BY j.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobWithCompany
	for rows.Next() {
		var job domain.JobWithCompany
		var skills []string
		if err := rows.Scan(
			&job.ID, &job.CompanyID, &job.PostedByUserID, &job.Title, &job.Description, &job.Requirements,
			&job.JobType, &job.EmploymentType, &job.Location, &job.SalaryMin, &job.SalaryMax,
			pq.Array(&skills), &job.Published, &job.ApplicationDeadline, &job.CreatedAt, &job.UpdatedAt,
			&job.CompanyName, &job.CompanyLogoURL,
		); err != nil {
			return nil, 0, err
		}
		job.Skills = skills
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs j `+where).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	return r.fetchWithCompany(ctx, "", limit, offset)
}

// FetchPublished retrieves only published jobs for public listings. The
// filter is server-side; clients cannot bypass it.
func (r *jobRepo) FetchPublished(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	return r.fetchWithCompany(ctx, "WHERE j.published = true", limit, offset)
}

// FetchByCompanyID retrieves jobs for a specific company.
func (r *jobRepo) FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE company_id = $1`, companyID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		description = $3,
		requirements = $4,
		job_type = $5,
		employment_type = $6,
		location = $7,
		salary_min = $8,
		salary_max = $9,
		skills = $10,
		published = $11,
		application_deadline = $12,
		updated_at = $13
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Requirements, job.JobType, job.EmploymentType,
		job.Location, job.SalaryMin, job.SalaryMax, job.Skills, job.Published,
		job.ApplicationDeadline, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
