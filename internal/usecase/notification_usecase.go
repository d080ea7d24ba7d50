package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
	"go-jobtrack-backend/pkg/logger"
)

const (
	unreadCountKeyPrefix = "notif:unread:"
	unreadCountTTL       = 30 * time.Second
)

type notificationUsecase struct {
	notificationRepo domain.NotificationRepository
	typeRepo         domain.NotificationTypeRepository
	jobRepo          domain.JobRepository
	userRepo         domain.UserRepository
	emailSender      domain.EmailSender
	redis            *goredis.Client // optional unread-count cache, may be nil
	frontendURL      string
	emailTimeout     time.Duration
}

func NewNotificationUsecase(
	notificationRepo domain.NotificationRepository,
	typeRepo domain.NotificationTypeRepository,
	jobRepo domain.JobRepository,
	userRepo domain.UserRepository,
	emailSender domain.EmailSender,
	redisClient *goredis.Client,
	frontendURL string,
	emailTimeout time.Duration,
) domain.NotificationUsecase {
	if emailTimeout <= 0 {
		emailTimeout = 10 * time.Second
	}
	return &notificationUsecase{
		notificationRepo: notificationRepo,
		typeRepo:         typeRepo,
		jobRepo:          jobRepo,
		userRepo:         userRepo,
		emailSender:      emailSender,
		redis:            redisClient,
		frontendURL:      frontendURL,
		emailTimeout:     emailTimeout,
	}
}

// SendJobSkillNotifications fans out to every user whose declared skills
// intersect the job's. Per-user failures are collected and never abort the
// batch; users are processed sequentially in repository order so the
// aggregate accounting is deterministic.
func (uc *notificationUsecase) SendJobSkillNotifications(ctx context.Context, jobID int64) (*domain.JobNotificationResult, error) {
	// 1. Load the job
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if len(job.Skills) == 0 {
		return nil, apperror.BadRequest("Job has no skills defined")
	}

	// 2. Match users on skill intersection
	users, err := uc.userRepo.FindBySkills(ctx, job.Skills)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	result := &domain.JobNotificationResult{
		MatchedUsers: len(users),
		Errors:       []string{},
	}
	if len(users) == 0 {
		return result, nil
	}

	emailType, err := uc.typeRepo.GetByName(ctx, domain.NotificationTypeEmail)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("notification type %q missing: %w", domain.NotificationTypeEmail, err))
	}

	jobURL := fmt.Sprintf("%s/jobs/%d", uc.frontendURL, job.ID)

	// An unconfigured sender is reported once, not once per matched user.
	emailEnabled := uc.emailSender.IsConfigured()
	if !emailEnabled {
		logger.Log.Warn("email sender not configured, skipping job alert emails", "job_id", job.ID, "matched_users", len(users))
		result.Errors = append(result.Errors, "email sending skipped: email sender is not configured")
	}

	// 3. Per matched user: persist the notification, then attempt the email.
	for _, user := range users {
		matched := domain.MatchSkills(job.Skills, user.Skills)

		message := fmt.Sprintf("Hi %s, a new %s position in %s matches your profile", user.FirstName, job.Title, job.Location)
		if job.EmploymentType != nil {
			message += fmt.Sprintf(" (%s)", *job.EmploymentType)
		}
		if len(matched) > 0 {
			message += ". Matching skills: " + domain.JoinSkillList(matched)
		}

		n := &domain.Notification{
			UserID:    user.ID,
			TypeID:    emailType.ID,
			JobID:     &job.ID,
			Title:     "New job match: " + job.Title,
			Message:   message,
			LinkURL:   &jobURL,
			CreatedAt: time.Now(),
		}
		if err := uc.notificationRepo.Create(ctx, n); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to create notification for %s: %v", user.Email, err))
			continue
		}
		uc.invalidateUnreadCount(ctx, user.ID)

		if !emailEnabled {
			continue
		}

		alert := domain.JobAlertEmail{
			FirstName:     user.FirstName,
			JobTitle:      job.Title,
			Location:      job.Location,
			MatchedSkills: matched,
			JobURL:        jobURL,
		}
		if job.JobType != nil {
			alert.JobType = *job.JobType
		}
		if job.EmploymentType != nil {
			alert.EmploymentType = *job.EmploymentType
		}

		// A stuck SMTP server counts as a per-item failure, not a batch abort.
		sendCtx, cancel := context.WithTimeout(ctx, uc.emailTimeout)
		err := uc.emailSender.SendJobAlert(sendCtx, user.Email, alert)
		cancel()
		if err != nil {
			logger.Log.Warn("job alert email failed", "job_id", job.ID, "email", user.Email, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("failed to send email to %s: %v", user.Email, err))
			continue
		}
		result.NotificationsSent++
	}

	return result, nil
}

func (uc *notificationUsecase) CreateNotification(ctx context.Context, n *domain.Notification) error {
	if n.UserID == 0 {
		return apperror.BadRequest("A target user is required")
	}
	if n.Title == "" || n.Message == "" {
		return apperror.BadRequest("Title and message are required")
	}
	if n.TypeID == 0 {
		return apperror.BadRequest("A notification type is required")
	}
	n.IsRead = false
	n.CreatedAt = time.Now()
	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		return apperror.Internal(err)
	}
	uc.invalidateUnreadCount(ctx, n.UserID)
	return nil
}

func (uc *notificationUsecase) GetNotification(ctx context.Context, id int64) (*domain.Notification, error) {
	n, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Notification not found")
		}
		return nil, apperror.Internal(err)
	}
	return n, nil
}

func (uc *notificationUsecase) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return uc.notificationRepo.GetByUserID(ctx, userID)
}

func (uc *notificationUsecase) ListUnreadByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return uc.notificationRepo.GetUnreadByUserID(ctx, userID)
}

// UnreadCount serves from the redis cache when available, falling through to
// SQL on miss or when redis is not configured.
func (uc *notificationUsecase) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	key := unreadCountKey(userID)
	if uc.redis != nil {
		if cached, err := uc.redis.Get(ctx, key).Result(); err == nil {
			if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return count, nil
			}
		}
	}

	count, err := uc.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, apperror.Internal(err)
	}

	if uc.redis != nil {
		if err := uc.redis.Set(ctx, key, count, unreadCountTTL).Err(); err != nil {
			logger.Log.Warn("failed to cache unread count", "user_id", userID, "error", err)
		}
	}
	return count, nil
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, id int64) error {
	n, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Notification not found")
		}
		return apperror.Internal(err)
	}
	if err := uc.notificationRepo.MarkRead(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	uc.invalidateUnreadCount(ctx, n.UserID)
	return nil
}

func (uc *notificationUsecase) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	updated, err := uc.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	uc.invalidateUnreadCount(ctx, userID)
	return updated, nil
}

func (uc *notificationUsecase) DeleteNotification(ctx context.Context, id int64) error {
	n, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Notification not found")
		}
		return apperror.Internal(err)
	}
	if err := uc.notificationRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	uc.invalidateUnreadCount(ctx, n.UserID)
	return nil
}

func unreadCountKey(userID int64) string {
	return unreadCountKeyPrefix + strconv.FormatInt(userID, 10)
}

func (uc *notificationUsecase) invalidateUnreadCount(ctx context.Context, userID int64) {
	if uc.redis == nil {
		return
	}
	if err := uc.redis.Del(ctx, unreadCountKey(userID)).Err(); err != nil {
		logger.Log.Warn("failed to invalidate unread count cache", "user_id", userID, "error", err)
	}
}
