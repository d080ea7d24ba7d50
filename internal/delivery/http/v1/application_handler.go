package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobtrack-backend/internal/delivery/http/response"
	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes.
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	r.POST("/jobs/:id/apply", handler.ApplyToJob)
	r.GET("/jobs/:id/applications", handler.ListJobApplications)
	r.GET("/users/:id/applications", handler.ListUserApplications)
	r.PATCH("/applications/:id/status", handler.UpdateStatus)
	r.DELETE("/applications/:id", handler.Withdraw)
}

// ApplyToJobRequest is the request payload for applying to a job.
type ApplyToJobRequest struct {
	UserID      int64  `json:"userId" binding:"required"`
	CoverLetter string `json:"coverLetter"`
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Job ID"
// @Param        body  body      ApplyToJobRequest  true  "Application data"
// @Success      201   {object}  response.Envelope{data=domain.Application}
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /jobs/{id}/apply [post]
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	jobID, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	var req ApplyToJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.ApplyToJob(c, req.UserID, jobID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Job ID"
// @Success      200 {object}  response.Envelope{data=[]domain.Application}
// @Failure      404 {object}  response.Envelope
// @Router       /jobs/{id}/applications [get]
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	jobID, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	applications, err := h.applicationUC.ListByJobID(c, jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListUserApplications godoc
// @Summary      List a user's applications
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "User ID"
// @Success      200 {object}  response.Envelope{data=[]domain.Application}
// @Router       /users/{id}/applications [get]
func (h *ApplicationHandler) ListUserApplications(c *gin.Context) {
	userID, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	applications, err := h.applicationUC.GetUserApplications(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// UpdateStatusRequest is the request payload for updating application status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=reviewed accepted rejected"`
}

// UpdateStatus godoc
// @Summary      Update application status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "Status update"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.applicationUC.UpdateApplicationStatus(c, id, req.Status); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", nil)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Application ID"
// @Success      200 {object}  response.Envelope
// @Failure      404 {object}  response.Envelope
// @Router       /applications/{id} [delete]
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	if err := h.applicationUC.WithdrawApplication(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application withdrawn", nil)
}
