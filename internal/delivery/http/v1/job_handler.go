package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobtrack-backend/internal/delivery/http/response"
	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers job routes.
func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.GetByID)
		jobs.POST("", handler.Create)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}

	r.GET("/companies/:id/jobs", handler.ListByCompany)
}

// JobRequest is the create/update payload. Skills arrive as a
// comma-separated string and are normalized into tokens.
type JobRequest struct {
	CompanyID           int64    `json:"companyId" binding:"required"`
	PostedByUserID      int64    `json:"postedByUserId" binding:"required"`
	Title               string   `json:"title" binding:"required"`
	Description         string   `json:"description"`
	Requirements        string   `json:"requirements"`
	JobType             *string  `json:"jobType"`
	EmploymentType      *string  `json:"employmentType"`
	Location            string   `json:"location"`
	SalaryMin           float64  `json:"salaryMin"`
	SalaryMax           float64  `json:"salaryMax"`
	Skills              string   `json:"skills"`
	Published           bool     `json:"published"`
	ApplicationDeadline *string  `json:"applicationDeadline"` // YYYY-MM-DD
}

func (req *JobRequest) toDomain() (*domain.Job, error) {
	job := &domain.Job{
		CompanyID:      req.CompanyID,
		PostedByUserID: req.PostedByUserID,
		Title:          req.Title,
		Description:    req.Description,
		Requirements:   req.Requirements,
		JobType:        req.JobType,
		EmploymentType: req.EmploymentType,
		Location:       req.Location,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Skills:         domain.ParseSkillList(req.Skills),
		Published:      req.Published,
	}
	if req.ApplicationDeadline != nil && *req.ApplicationDeadline != "" {
		deadline, err := time.Parse("2006-01-02", *req.ApplicationDeadline)
		if err != nil {
			return nil, apperror.BadRequest("applicationDeadline must be YYYY-MM-DD")
		}
		job.ApplicationDeadline = &deadline
	}
	return job, nil
}

// List godoc
// @Summary      List published jobs
// @Tags         jobs
// @Produce      json
// @Param        page      query     int  false  "Page number"
// @Param        pageSize  query     int  false  "Page size"
// @Success      200       {object}  response.Envelope{data=[]domain.JobWithCompany}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	jobs, total, err := h.jobUC.ListPublishedJobs(c, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", gin.H{"jobs": jobs, "total": total})
}

// GetByID godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id  path      int  true  "Job ID"
// @Success      200 {object}  response.Envelope{data=domain.JobWithCompany}
// @Failure      404 {object}  response.Envelope
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetByID(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	job, err := h.jobUC.GetJobDetails(c, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Job not found"))
		} else {
			c.Error(err)
		}
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// Create godoc
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      JobRequest  true  "Job data"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.jobUC.CreateJob(c, job); err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithID(c, http.StatusCreated, "Job created", job.ID)
}

// Update godoc
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int         true  "Job ID"
// @Param        body  body      JobRequest  true  "Job data"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}
	job.ID = id

	if err := h.jobUC.UpdateJob(c, job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job posting
// @Tags         jobs
// @Produce      json
// @Param        id  path      int  true  "Job ID"
// @Success      200 {object}  response.Envelope
// @Failure      404 {object}  response.Envelope
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	if err := h.jobUC.DeleteJob(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// ListByCompany godoc
// @Summary      List a company's jobs
// @Tags         jobs
// @Produce      json
// @Param        id        path      int  true   "Company ID"
// @Param        page      query     int  false  "Page number"
// @Param        pageSize  query     int  false  "Page size"
// @Success      200       {object}  response.Envelope{data=[]domain.Job}
// @Router       /companies/{id}/jobs [get]
func (h *JobHandler) ListByCompany(c *gin.Context) {
	companyID, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	jobs, total, err := h.jobUC.ListJobsByCompany(c, companyID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", gin.H{"jobs": jobs, "total": total})
}
