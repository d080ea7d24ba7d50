package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, company_id, first_name, last_name, email, password_hash, user_type, phone, location, profile_photo_url, skills, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var skills []string
	err := row.Scan(
		&u.ID, &u.CompanyID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.UserType, &u.Phone, &u.Location, &u.ProfilePhotoURL, pq.Array(&skills),
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Skills = skills
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (company_id, first_name, last_name, email, password_hash, user_type, phone, location, skills, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		user.CompanyID, user.FirstName, user.LastName, strings.ToLower(user.Email),
		user.PasswordHash, user.UserType, user.Phone, user.Location, user.Skills,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this email or phone already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

// CreateWithCompany inserts the company row and the owning user row in one
// transaction, so a failed user insert never leaves an orphan company.
func (r *userRepo) CreateWithCompany(ctx context.Context, user *domain.User, company *domain.Company) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	companyQuery := `INSERT INTO companies (name, description, location, website, contact_email, contact_phone, status, created_at, updated_at)
                     VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err = tx.QueryRow(ctx, companyQuery,
		company.Name, company.Description, company.Location, company.Website,
		company.ContactEmail, company.ContactPhone, company.Status,
		company.CreatedAt, company.UpdatedAt,
	).Scan(&company.ID)
	if err != nil {
		return apperror.Internal(err)
	}

	user.CompanyID = &company.ID
	userQuery := `INSERT INTO users (company_id, first_name, last_name, email, password_hash, user_type, phone, location, skills, created_at, updated_at)
                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err = tx.QueryRow(ctx, userQuery,
		user.CompanyID, user.FirstName, user.LastName, strings.ToLower(user.Email),
		user.PasswordHash, user.UserType, user.Phone, user.Location, user.Skills,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this email or phone already exists")
		}
		return apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = lower($1)`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = lower($1))`, email).Scan(&exists)
	return exists, err
}

func (r *userRepo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE phone = $1)`, phone).Scan(&exists)
	return exists, err
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET first_name = $2, last_name = $3, phone = $4, location = $5, skills = $6, updated_at = $7 WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Phone, user.Location, user.Skills, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Phone number already in use.")
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateProfilePhoto swaps the stored photo URL and returns the previous one
// so the caller can remove the old file.
func (r *userRepo) UpdateProfilePhoto(ctx context.Context, userID int64, photoURL string) (*string, error) {
	var old *string
	err := r.db.QueryRow(ctx, `SELECT profile_photo_url FROM users WHERE id = $1`, userID).Scan(&old)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	_, err = r.db.Exec(ctx, `UPDATE users SET profile_photo_url = $2, updated_at = NOW() WHERE id = $1`, userID, photoURL)
	if err != nil {
		return nil, err
	}
	return old, nil
}

// FindBySkills matches users whose skill tokens intersect the given set,
// case-insensitive, ordered by id for deterministic fan-out.
func (r *userRepo) FindBySkills(ctx context.Context, tokens []string) ([]domain.User, error) {
	lowered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(t)))
	}

	query := `SELECT ` + userColumns + ` FROM users
              WHERE EXISTS (SELECT 1 FROM unnest(skills) AS s WHERE lower(s) = ANY($1))
              ORDER BY id`
	rows, err := r.db.Query(ctx, query, lowered)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}
