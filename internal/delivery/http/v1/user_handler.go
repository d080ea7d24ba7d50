package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobtrack-backend/config"
	"go-jobtrack-backend/internal/delivery/http/response"
	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
)

type UserHandler struct {
	userUC    domain.UserUsecase
	profileUC domain.ProfileUsecase
	cfg       *config.Config
}

// NewUserHandler registers user profile routes, including the education and
// experience child records.
func NewUserHandler(r *gin.RouterGroup, userUC domain.UserUsecase, profileUC domain.ProfileUsecase, cfg *config.Config) {
	handler := &UserHandler{userUC: userUC, profileUC: profileUC, cfg: cfg}

	users := r.Group("/users")
	{
		users.GET("/:id", handler.GetByID)
		users.PUT("/:id", handler.Update)
		users.POST("/:id/photo", handler.UploadPhoto)

		users.GET("/:id/education", handler.ListEducation)
		users.POST("/:id/education", handler.AddEducation)
		users.PUT("/:id/education/:recordId", handler.UpdateEducation)
		users.DELETE("/:id/education/:recordId", handler.DeleteEducation)

		users.GET("/:id/experience", handler.ListExperience)
		users.POST("/:id/experience", handler.AddExperience)
		users.PUT("/:id/experience/:recordId", handler.UpdateExperience)
		users.DELETE("/:id/experience/:recordId", handler.DeleteExperience)
	}
}

// UpdateUserRequest is the profile update payload. Email, password and user
// type are not editable through this endpoint.
type UpdateUserRequest struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	PhoneNumber *string `json:"phoneNumber"`
	Location    string  `json:"location"`
	Skills      string  `json:"skills"` // comma-separated
}

// DateRangeRequest carries the shared education/experience date fields.
type DateRangeRequest struct {
	StartDate *string `json:"startDate"` // YYYY-MM-DD
	EndDate   *string `json:"endDate"`
}

func parseDate(value *string, field string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, apperror.BadRequest(field + " must be YYYY-MM-DD")
	}
	return &parsed, nil
}

func (r *DateRangeRequest) dates() (start, end *time.Time, err error) {
	if start, err = parseDate(r.StartDate, "startDate"); err != nil {
		return nil, nil, err
	}
	if end, err = parseDate(r.EndDate, "endDate"); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

type EducationRequest struct {
	Institution  string `json:"institution" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldOfStudy"`
	DateRangeRequest
}

type ExperienceRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	JobTitle    string `json:"jobTitle" binding:"required"`
	Description string `json:"description"`
	DateRangeRequest
}

// GetByID godoc
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Param        id  path      int  true  "User ID"
// @Success      200 {object}  response.Envelope{data=domain.User}
// @Failure      404 {object}  response.Envelope
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	user, err := h.userUC.GetUser(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved", user)
}

// Update godoc
// @Summary      Update a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User ID"
// @Param        body  body      UpdateUserRequest  true  "Profile data"
// @Success      200   {object}  response.Envelope{data=domain.User}
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.userUC.GetUser(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.PhoneNumber
	user.Location = req.Location
	user.Skills = domain.ParseSkillList(req.Skills)

	if err := h.userUC.UpdateUser(c, user); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

// UploadPhoto godoc
// @Summary      Upload a profile photo
// @Description  Accepts jpg/jpeg/png/gif/webp up to 5MB; the previous photo file is removed
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      int   true  "User ID"
// @Param        file  formData  file  true  "Profile photo"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /users/{id}/photo [post]
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("A file is required"))
		return
	}

	url, err := saveUploadedImage(file, h.cfg.UploadDir, "profiles", h.cfg.PublicBaseURL)
	if err != nil {
		c.Error(err)
		return
	}

	old, err := h.userUC.SetProfilePhoto(c, id, url)
	if err != nil {
		c.Error(err)
		return
	}
	removeStoredFile(old, h.cfg.UploadDir, h.cfg.PublicBaseURL)

	response.Success(c, http.StatusOK, "Profile photo uploaded", gin.H{"profile_photo_url": url})
}

// ListEducation godoc
// @Summary      List education records for a user
// @Tags         profile
// @Produce      json
// @Param        id  path      int  true  "User ID"
// @Success      200 {object}  response.Envelope{data=[]domain.Education}
// @Router       /users/{id}/education [get]
func (h *UserHandler) ListEducation(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	records, err := h.profileUC.ListEducation(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education records retrieved", records)
}

// AddEducation godoc
// @Summary      Add an education record
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "User ID"
// @Param        body  body      EducationRequest  true  "Education data"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Router       /users/{id}/education [post]
func (h *UserHandler) AddEducation(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	start, end, err := req.dates()
	if err != nil {
		c.Error(err)
		return
	}

	edu := &domain.Education{
		UserID:       id,
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    start,
		EndDate:      end,
	}
	if err := h.profileUC.AddEducation(c, edu); err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithID(c, http.StatusCreated, "Education record created", edu.ID)
}

// UpdateEducation godoc
// @Summary      Update an education record
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id        path      int               true  "User ID"
// @Param        recordId  path      int               true  "Education record ID"
// @Param        body      body      EducationRequest  true  "Education data"
// @Success      200       {object}  response.Envelope
// @Failure      400       {object}  response.Envelope
// @Failure      404       {object}  response.Envelope
// @Router       /users/{id}/education/{recordId} [put]
func (h *UserHandler) UpdateEducation(c *gin.Context) {
	userID, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}
	recordID, appErr := parseID(c, "recordId")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	start, end, err := req.dates()
	if err != nil {
		c.Error(err)
		return
	}

	edu := &domain.Education{
		ID:           recordID,
		UserID:       userID,
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    start,
		EndDate:      end,
	}
	if err := h.profileUC.UpdateEducation(c, edu); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education record updated", edu)
}

// DeleteEducation godoc
// @Summary      Delete an education record
// @Tags         profile
// @Produce      json
// @Param        id        path      int  true  "User ID"
// @Param        recordId  path      int  true  "Education record ID"
// @Success      200       {object}  response.Envelope
// @Failure      404       {object}  response.Envelope
// @Router       /users/{id}/education/{recordId} [delete]
func (h *UserHandler) DeleteEducation(c *gin.Context) {
	recordID, appErr := parseID(c, "recordId")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	if err := h.profileUC.DeleteEducation(c, recordID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education record deleted", nil)
}

// ListExperience godoc
// @Summary      List experience records for a user
// @Tags         profile
// @Produce      json
// @Param        id  path      int  true  "User ID"
// @Success      200 {object}  response.Envelope{data=[]domain.Experience}
// @Router       /users/{id}/experience [get]
func (h *UserHandler) ListExperience(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	records, err := h.profileUC.ListExperience(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience records retrieved", records)
}

// AddExperience godoc
// @Summary      Add an experience record
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User ID"
// @Param        body  body      ExperienceRequest  true  "Experience data"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Router       /users/{id}/experience [post]
func (h *UserHandler) AddExperience(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	start, end, err := req.dates()
	if err != nil {
		c.Error(err)
		return
	}

	exp := &domain.Experience{
		UserID:      id,
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
	}
	if err := h.profileUC.AddExperience(c, exp); err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithID(c, http.StatusCreated, "Experience record created", exp.ID)
}

// UpdateExperience godoc
// @Summary      Update an experience record
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id        path      int                true  "User ID"
// @Param        recordId  path      int                true  "Experience record ID"
// @Param        body      body      ExperienceRequest  true  "Experience data"
// @Success      200       {object}  response.Envelope
// @Failure      400       {object}  response.Envelope
// @Failure      404       {object}  response.Envelope
// @Router       /users/{id}/experience/{recordId} [put]
func (h *UserHandler) UpdateExperience(c *gin.Context) {
	userID, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}
	recordID, appErr := parseID(c, "recordId")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	start, end, err := req.dates()
	if err != nil {
		c.Error(err)
		return
	}

	exp := &domain.Experience{
		ID:          recordID,
		UserID:      userID,
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		Description: req.Description,
		StartDate:   start,
		EndDate:     end,
	}
	if err := h.profileUC.UpdateExperience(c, exp); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience record updated", exp)
}

// DeleteExperience godoc
// @Summary      Delete an experience record
// @Tags         profile
// @Produce      json
// @Param        id        path      int  true  "User ID"
// @Param        recordId  path      int  true  "Experience record ID"
// @Success      200       {object}  response.Envelope
// @Failure      404       {object}  response.Envelope
// @Router       /users/{id}/experience/{recordId} [delete]
func (h *UserHandler) DeleteExperience(c *gin.Context) {
	recordID, appErr := parseID(c, "recordId")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	if err := h.profileUC.DeleteExperience(c, recordID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience record deleted", nil)
}
