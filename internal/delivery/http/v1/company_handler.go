package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobtrack-backend/config"
	"go-jobtrack-backend/internal/delivery/http/response"
	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
	cfg       *config.Config
}

// NewCompanyHandler registers company routes.
func NewCompanyHandler(r *gin.RouterGroup, companyUC domain.CompanyUsecase, cfg *config.Config) {
	handler := &CompanyHandler{companyUC: companyUC, cfg: cfg}

	companies := r.Group("/companies")
	{
		companies.GET("", handler.List)
		companies.GET("/:id", handler.GetByID)
		companies.POST("", handler.Create)
		companies.PUT("/:id", handler.Update)
		companies.DELETE("/:id", handler.Delete)
		companies.POST("/:id/logo", handler.UploadLogo)
	}
}

// CompanyRequest is the create/update payload.
type CompanyRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Website      *string `json:"website"`
	ContactEmail string  `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
	FoundedDate  *string `json:"foundedDate"` // YYYY-MM-DD
	Status       string  `json:"status"`
}

func (req *CompanyRequest) toDomain() (*domain.Company, error) {
	company := &domain.Company{
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		Website:      req.Website,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Status:       req.Status,
	}
	if req.FoundedDate != nil && *req.FoundedDate != "" {
		founded, err := time.Parse("2006-01-02", *req.FoundedDate)
		if err != nil {
			return nil, apperror.BadRequest("foundedDate must be YYYY-MM-DD")
		}
		company.FoundedDate = &founded
	}
	return company, nil
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        page      query     int  false  "Page number"
// @Param        pageSize  query     int  false  "Page size"
// @Success      200       {object}  response.Envelope{data=[]domain.Company}
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	companies, total, err := h.companyUC.ListCompanies(c, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Companies retrieved", gin.H{"companies": companies, "total": total})
}

// GetByID godoc
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Param        id  path      int  true  "Company ID"
// @Success      200 {object}  response.Envelope{data=domain.Company}
// @Failure      404 {object}  response.Envelope
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	company, err := h.companyUC.GetCompany(c, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("Company not found"))
		} else {
			c.Error(err)
		}
		return
	}
	response.Success(c, http.StatusOK, "Company retrieved", company)
}

// Create godoc
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      CompanyRequest  true  "Company data"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.companyUC.CreateCompany(c, company); err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithID(c, http.StatusCreated, "Company created", company.ID)
}

// Update godoc
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Company ID"
// @Param        body  body      CompanyRequest  true  "Company data"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /companies/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}
	company.ID = id

	if err := h.companyUC.UpdateCompany(c, company); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company updated", company)
}

// Delete godoc
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Param        id  path      int  true  "Company ID"
// @Success      200 {object}  response.Envelope
// @Failure      404 {object}  response.Envelope
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	if err := h.companyUC.DeleteCompany(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company deleted", nil)
}

// UploadLogo godoc
// @Summary      Upload a company logo
// @Description  Accepts jpg/jpeg/png/gif/webp up to 5MB; the previous logo file is removed
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      int   true  "Company ID"
// @Param        file  formData  file  true  "Logo image"
// @Success      200   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      404   {object}  response.Envelope
// @Router       /companies/{id}/logo [post]
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
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

	url, err := saveUploadedImage(file, h.cfg.UploadDir, "logos", h.cfg.PublicBaseURL)
	if err != nil {
		c.Error(err)
		return
	}

	old, err := h.companyUC.SetLogo(c, id, url)
	if err != nil {
		c.Error(err)
		return
	}
	removeStoredFile(old, h.cfg.UploadDir, h.cfg.PublicBaseURL)

	response.Success(c, http.StatusOK, "Logo uploaded", gin.H{"logo_url": url})
}
