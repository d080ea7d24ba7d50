package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-jobtrack-backend/internal/delivery/http/middleware"
	"go-jobtrack-backend/internal/delivery/http/response"
	v1 "go-jobtrack-backend/internal/delivery/http/v1"
	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
)

type MockNotificationUsecase struct {
	mock.Mock
}

func (m *MockNotificationUsecase) SendJobSkillNotifications(ctx context.Context, jobID int64) (*domain.JobNotificationResult, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobNotificationResult), args.Error(1)
}
func (m *MockNotificationUsecase) CreateNotification(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockNotificationUsecase) GetNotification(ctx context.Context, id int64) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}
func (m *MockNotificationUsecase) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationUsecase) ListUnreadByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationUsecase) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockNotificationUsecase) MarkRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockNotificationUsecase) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockNotificationUsecase) DeleteNotification(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newNotificationRouter(uc domain.NotificationUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	v1.NewNotificationHandler(r.Group("/api/v1"), uc)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env response.Envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestGetNotificationByID(t *testing.T) {
	t.Run("Should return the notification", func(t *testing.T) {
		uc := new(MockNotificationUsecase)
		uc.On("GetNotification", mock.Anything, int64(7)).Return(&domain.Notification{ID: 7, UserID: 3, Title: "New job match"}, nil).Once()
		r := newNotificationRouter(uc)

		w, env := doRequest(t, r, http.MethodGet, "/api/v1/notifications/7", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.IsSuccess)
		assert.NotNil(t, env.Data)
		uc.AssertExpectations(t)
	})

	t.Run("Should reject a non-numeric id", func(t *testing.T) {
		uc := new(MockNotificationUsecase)
		r := newNotificationRouter(uc)

		w, env := doRequest(t, r, http.MethodGet, "/api/v1/notifications/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.IsSuccess)
		assert.Contains(t, env.Message, "Invalid id parameter")
		uc.AssertNotCalled(t, "GetNotification", mock.Anything, mock.Anything)
	})

	t.Run("Should map a missing notification to 404", func(t *testing.T) {
		uc := new(MockNotificationUsecase)
		uc.On("GetNotification", mock.Anything, int64(99)).Return(nil, apperror.NotFound("Notification not found")).Once()
		r := newNotificationRouter(uc)

		w, env := doRequest(t, r, http.MethodGet, "/api/v1/notifications/99", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Notification not found", env.Message)
	})
}

func TestSendJobNotificationsEndpoint(t *testing.T) {
	t.Run("Should report the sent count", func(t *testing.T) {
		uc := new(MockNotificationUsecase)
		uc.On("SendJobSkillNotifications", mock.Anything, int64(10)).Return(&domain.JobNotificationResult{
			NotificationsSent: 1,
			MatchedUsers:      1,
			Errors:            []string{},
		}, nil).Once()
		r := newNotificationRouter(uc)

		w, env := doRequest(t, r, http.MethodPost, "/api/v1/notifications/send-job-notifications", `{"jobId":10}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.IsSuccess)
		assert.Equal(t, "Sent 1 of 1 notifications", env.Message)
		uc.AssertExpectations(t)
	})

	t.Run("Should report zero matches as a success", func(t *testing.T) {
		uc := new(MockNotificationUsecase)
		uc.On("SendJobSkillNotifications", mock.Anything, int64(10)).Return(&domain.JobNotificationResult{
			NotificationsSent: 0,
			MatchedUsers:      0,
			Errors:            []string{},
		}, nil).Once()
		r := newNotificationRouter(uc)

		w, env := doRequest(t, r, http.MethodPost, "/api/v1/notifications/send-job-notifications", `{"jobId":10}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.IsSuccess)
		assert.Equal(t, "No users found with matching skills", env.Message)
	})

	t.Run("Should reject a missing job id", func(t *testing.T) {
		uc := new(MockNotificationUsecase)
		r := newNotificationRouter(uc)

		w, env := doRequest(t, r, http.MethodPost, "/api/v1/notifications/send-job-notifications", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.IsSuccess)
		uc.AssertNotCalled(t, "SendJobSkillNotifications", mock.Anything, mock.Anything)
	})
}

func TestUserNotificationRoutes(t *testing.T) {
	t.Run("Should list a user's notifications", func(t *testing.T) {
		uc := new(MockNotificationUsecase)
		uc.On("ListByUser", mock.Anything, int64(5)).Return([]domain.Notification{{ID: 1, UserID: 5}}, nil).Once()
		r := newNotificationRouter(uc)

		w, env := doRequest(t, r, http.MethodGet, "/api/v1/users/5/notifications", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.IsSuccess)
		uc.AssertExpectations(t)
	})

	t.Run("Should return the unread count", func(t *testing.T) {
		uc := new(MockNotificationUsecase)
		uc.On("UnreadCount", mock.Anything, int64(5)).Return(int64(3), nil).Once()
		r := newNotificationRouter(uc)

		w, env := doRequest(t, r, http.MethodGet, "/api/v1/users/5/notifications/unread-count", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.IsSuccess)
		uc.AssertExpectations(t)
	})

	t.Run("Should mark all notifications read", func(t *testing.T) {
		uc := new(MockNotificationUsecase)
		uc.On("MarkAllRead", mock.Anything, int64(5)).Return(int64(4), nil).Once()
		r := newNotificationRouter(uc)

		w, env := doRequest(t, r, http.MethodPut, "/api/v1/users/5/notifications/mark-all-read", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Marked 4 notifications as read", env.Message)
		uc.AssertExpectations(t)
	})

	t.Run("Should reject a zero user id", func(t *testing.T) {
		uc := new(MockNotificationUsecase)
		r := newNotificationRouter(uc)

		w, env := doRequest(t, r, http.MethodGet, "/api/v1/users/0/notifications/unread", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Message, "Invalid id parameter")
		uc.AssertNotCalled(t, "ListUnreadByUser", mock.Anything, mock.Anything)
	})
}
