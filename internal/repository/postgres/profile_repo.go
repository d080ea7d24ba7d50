package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobtrack-backend/internal/domain"
)

type educationRepo struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

func (r *educationRepo) Create(ctx context.Context, edu *domain.Education) error {
	query := `INSERT INTO education (user_id, institution, degree, field_of_study, start_date, end_date, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRow(ctx, query,
		edu.UserID, edu.Institution, edu.Degree, edu.FieldOfStudy,
		edu.StartDate, edu.EndDate, edu.CreatedAt, edu.UpdatedAt,
	).Scan(&edu.ID)
}

func (r *educationRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Education, error) {
	query := `SELECT id, user_id, institution, degree, field_of_study, start_date, end_date, created_at, updated_at
              FROM education WHERE user_id = $1 ORDER BY start_date DESC NULLS LAST`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Education
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Institution, &e.Degree, &e.FieldOfStudy,
			&e.StartDate, &e.EndDate, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, e)
	}
	return records, rows.Err()
}

func (r *educationRepo) Update(ctx context.Context, edu *domain.Education) error {
	query := `UPDATE education SET institution = $2, degree = $3, field_of_study = $4, start_date = $5, end_date = $6, updated_at = $7 WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		edu.ID, edu.Institution, edu.Degree, edu.FieldOfStudy, edu.StartDate, edu.EndDate, edu.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *educationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

func (r *experienceRepo) Create(ctx context.Context, exp *domain.Experience) error {
	query := `INSERT INTO experience (user_id, company_name, job_title, description, start_date, end_date, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRow(ctx, query,
		exp.UserID, exp.CompanyName, exp.JobTitle, exp.Description,
		exp.StartDate, exp.EndDate, exp.CreatedAt, exp.UpdatedAt,
	).Scan(&exp.ID)
}

func (r *experienceRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Experience, error) {
	query := `SELECT id, user_id, company_name, job_title, description, start_date, end_date, created_at, updated_at
              FROM experience WHERE user_id = $1 ORDER BY start_date DESC NULLS LAST`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.CompanyName, &e.JobTitle, &e.Description,
			&e.StartDate, &e.EndDate, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, e)
	}
	return records, rows.Err()
}

func (r *experienceRepo) Update(ctx context.Context, exp *domain.Experience) error {
	query := `UPDATE experience SET company_name = $2, job_title = $3, description = $4, start_date = $5, end_date = $6, updated_at = $7 WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		exp.ID, exp.CompanyName, exp.JobTitle, exp.Description, exp.StartDate, exp.EndDate, exp.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *experienceRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM experience WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
