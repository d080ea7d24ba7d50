package domain

import (
	"context"
	"time"
)

// NotificationTypeEmail is the seeded type used by the skill matcher.
const NotificationTypeEmail = "email"

// Notification belongs to exactly one user and references exactly one type.
// Lifecycle: created unread → marked read → deleted.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	TypeID    int64     `json:"type_id"`
	JobID     *int64    `json:"job_id,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	LinkURL   *string   `json:"link_url,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationType is a small reference table.
type NotificationType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

// JobNotificationResult is the aggregate outcome of a skill-match fan-out.
// Per-user failures are collected in Errors rather than aborting the batch.
type JobNotificationResult struct {
	NotificationsSent int      `json:"notifications_sent"`
	MatchedUsers      int      `json:"matched_users"`
	Errors            []string `json:"errors"`
}

// JobAlertEmail carries the template data for a single skill-match email.
type JobAlertEmail struct {
	FirstName      string
	JobTitle       string
	JobType        string
	EmploymentType string
	Location       string
	MatchedSkills  []string
	JobURL         string
}

// EmailSender transmits a single templated message. Implementations wrap an
// SMTP client.
type EmailSender interface {
	IsConfigured() bool
	SendJobAlert(ctx context.Context, to string, data JobAlertEmail) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id int64) (*Notification, error)
	GetByUserID(ctx context.Context, userID int64) ([]Notification, error)
	GetUnreadByUserID(ctx context.Context, userID int64) ([]Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	// MarkAllRead flips every unread notification owned by userID and must
	// not touch any other user's rows.
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type NotificationTypeRepository interface {
	Fetch(ctx context.Context) ([]NotificationType, error)
	GetByName(ctx context.Context, name string) (*NotificationType, error)
	Create(ctx context.Context, t *NotificationType) error
}

type NotificationUsecase interface {
	SendJobSkillNotifications(ctx context.Context, jobID int64) (*JobNotificationResult, error)

	CreateNotification(ctx context.Context, n *Notification) error
	GetNotification(ctx context.Context, id int64) (*Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]Notification, error)
	ListUnreadByUser(ctx context.Context, userID int64) ([]Notification, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	DeleteNotification(ctx context.Context, id int64) error
}
