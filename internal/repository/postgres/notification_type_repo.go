package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobtrack-backend/internal/domain"
)

type notificationTypeRepo struct {
	db *pgxpool.Pool
}

func NewNotificationTypeRepository(db *pgxpool.Pool) domain.NotificationTypeRepository {
	return &notificationTypeRepo{db: db}
}

func (r *notificationTypeRepo) Fetch(ctx context.Context) ([]domain.NotificationType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description, priority FROM notification_types ORDER BY priority DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.NotificationType
	for rows.Next() {
		var t domain.NotificationType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Priority); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *notificationTypeRepo) GetByName(ctx context.Context, name string) (*domain.NotificationType, error) {
	var t domain.NotificationType
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, priority FROM notification_types WHERE name = $1`,
		name,
	).Scan(&t.ID, &t.Name, &t.Description, &t.Priority)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *notificationTypeRepo) Create(ctx context.Context, t *domain.NotificationType) error {
	query := `INSERT INTO notification_types (name, description, priority) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRow(ctx, query, t.Name, t.Description, t.Priority).Scan(&t.ID)
}
