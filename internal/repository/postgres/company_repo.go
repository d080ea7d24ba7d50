package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobtrack-backend/internal/domain"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

const companyColumns = `id, name, description, location, website, contact_email, contact_phone, logo_url, founded_date, status, created_at, updated_at`

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Location, &c.Website, &c.ContactEmail,
		&c.ContactPhone, &c.LogoURL, &c.FoundedDate, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (name, description, location, website, contact_email, contact_phone, logo_url, founded_date, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRow(ctx, query,
		company.Name, company.Description, company.Location, company.Website,
		company.ContactEmail, company.ContactPhone, company.LogoURL, company.FoundedDate,
		company.Status, company.CreatedAt, company.UpdatedAt,
	).Scan(&company.ID)
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	company, err := scanCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return company, nil
}

func (r *companyRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *companyRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Company, int64, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, *c)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET
		name = $2,
		description = $3,
		location = $4,
		website = $5,
		contact_email = $6,
		contact_phone = $7,
		founded_date = $8,
		status = $9,
		updated_at = $10
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Description, company.Location, company.Website,
		company.ContactEmail, company.ContactPhone, company.FoundedDate, company.Status,
		company.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) UpdateLogo(ctx context.Context, companyID int64, logoURL string) (*string, error) {
	var old *string
	err := r.db.QueryRow(ctx, `SELECT logo_url FROM companies WHERE id = $1`, companyID).Scan(&old)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	_, err = r.db.Exec(ctx, `UPDATE companies SET logo_url = $2, updated_at = NOW() WHERE id = $1`, companyID, logoURL)
	if err != nil {
		return nil, err
	}
	return old, nil
}

func (r *companyRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
