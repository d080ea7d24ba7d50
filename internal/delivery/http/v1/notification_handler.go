package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-jobtrack-backend/internal/delivery/http/response"
	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
)

type NotificationHandler struct {
	notificationUC domain.NotificationUsecase
}

// NewNotificationHandler registers notification routes.
func NewNotificationHandler(r *gin.RouterGroup, notificationUC domain.NotificationUsecase) {
	handler := &NotificationHandler{notificationUC: notificationUC}

	notifications := r.Group("/notifications")
	{
		notifications.POST("/send-job-notifications", handler.SendJobNotifications)
		notifications.POST("", handler.Create)
		notifications.GET("/:id", handler.GetByID)
		notifications.DELETE("/:id", handler.Delete)
		notifications.PUT("/:id/mark-read", handler.MarkRead)
	}

	users := r.Group("/users")
	{
		users.GET("/:id/notifications", handler.ListByUser)
		users.GET("/:id/notifications/unread", handler.ListUnread)
		users.GET("/:id/notifications/unread-count", handler.UnreadCount)
		users.PUT("/:id/notifications/mark-all-read", handler.MarkAllRead)
	}
}

// SendJobNotificationsRequest identifies the job to fan out for.
type SendJobNotificationsRequest struct {
	JobID int64 `json:"jobId" binding:"required"`
}

// SendJobNotifications godoc
// @Summary      Send skill-match notifications for a job
// @Description  Notify every user whose skills intersect the job's; per-user failures are collected, not fatal
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body      SendJobNotificationsRequest  true  "Job reference"
// @Success      200   {object}  response.Envelope{data=domain.JobNotificationResult}
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /notifications/send-job-notifications [post]
func (h *NotificationHandler) SendJobNotifications(c *gin.Context) {
	var req SendJobNotificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.notificationUC.SendJobSkillNotifications(c, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}

	// Zero matches is a valid terminal state, not a failure.
	message := fmt.Sprintf("Sent %d of %d notifications", result.NotificationsSent, result.MatchedUsers)
	if result.MatchedUsers == 0 {
		message = "No users found with matching skills"
	}
	response.Success(c, http.StatusOK, message, result)
}

// Create godoc
// @Summary      Create a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Notification  true  "Notification"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Router       /notifications [post]
func (h *NotificationHandler) Create(c *gin.Context) {
	var n domain.Notification
	if err := c.ShouldBindJSON(&n); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.notificationUC.CreateNotification(c, &n); err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithID(c, http.StatusCreated, "Notification created", n.ID)
}

// GetByID godoc
// @Summary      Get a notification
// @Tags         notifications
// @Produce      json
// @Param        id  path      int  true  "Notification ID"
// @Success      200 {object}  response.Envelope{data=domain.Notification}
// @Failure      404 {object}  response.Envelope
// @Router       /notifications/{id} [get]
func (h *NotificationHandler) GetByID(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	n, err := h.notificationUC.GetNotification(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notification retrieved", n)
}

// Delete godoc
// @Summary      Delete a notification
// @Tags         notifications
// @Produce      json
// @Param        id  path      int  true  "Notification ID"
// @Success      200 {object}  response.Envelope
// @Failure      404 {object}  response.Envelope
// @Router       /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	if err := h.notificationUC.DeleteNotification(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notification deleted", nil)
}

// MarkRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Param        id  path      int  true  "Notification ID"
// @Success      200 {object}  response.Envelope
// @Failure      404 {object}  response.Envelope
// @Router       /notifications/{id}/mark-read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	if err := h.notificationUC.MarkRead(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notification marked as read", nil)
}

// ListByUser godoc
// @Summary      List a user's notifications
// @Tags         notifications
// @Produce      json
// @Param        id  path      int  true  "User ID"
// @Success      200 {object}  response.Envelope{data=[]domain.Notification}
// @Router       /users/{id}/notifications [get]
func (h *NotificationHandler) ListByUser(c *gin.Context) {
	userID, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	notifications, err := h.notificationUC.ListByUser(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notifications retrieved", notifications)
}

// ListUnread godoc
// @Summary      List a user's unread notifications
// @Tags         notifications
// @Produce      json
// @Param        id  path      int  true  "User ID"
// @Success      200 {object}  response.Envelope{data=[]domain.Notification}
// @Router       /users/{id}/notifications/unread [get]
func (h *NotificationHandler) ListUnread(c *gin.Context) {
	userID, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	notifications, err := h.notificationUC.ListUnreadByUser(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Unread notifications retrieved", notifications)
}

// UnreadCount godoc
// @Summary      Count a user's unread notifications
// @Tags         notifications
// @Produce      json
// @Param        id  path      int  true  "User ID"
// @Success      200 {object}  response.Envelope
// @Router       /users/{id}/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	count, err := h.notificationUC.UnreadCount(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Unread count retrieved", gin.H{"count": count})
}

// MarkAllRead godoc
// @Summary      Mark all of a user's notifications as read
// @Description  Only the addressed user's unread notifications are affected
// @Tags         notifications
// @Produce      json
// @Param        id  path      int  true  "User ID"
// @Success      200 {object}  response.Envelope
// @Router       /users/{id}/notifications/mark-all-read [put]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	updated, err := h.notificationUC.MarkAllRead(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, fmt.Sprintf("Marked %d notifications as read", updated), nil)
}

// parseID parses a positive int64 path parameter.
func parseID(c *gin.Context, name string) (int64, *apperror.AppError) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperror.BadRequest("Invalid " + name + " parameter")
	}
	return id, nil
}
