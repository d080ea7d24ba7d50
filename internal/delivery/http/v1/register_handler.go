package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobtrack-backend/internal/delivery/http/response"
	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
)

type RegisterHandler struct {
	registrationUC domain.RegistrationUsecase
}

// NewRegisterHandler registers the registration route.
func NewRegisterHandler(r *gin.RouterGroup, registrationUC domain.RegistrationUsecase) {
	handler := &RegisterHandler{registrationUC: registrationUC}
	r.POST("/register-user", handler.Register)
}

// Register godoc
// @Summary      Register a user
// @Description  Create a job seeker, company, staff, or admin account
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        body  body      domain.RegisterRequest  true  "Registration data"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Router       /register-user [post]
func (h *RegisterHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID, err := h.registrationUC.Register(c, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.SuccessWithID(c, http.StatusCreated, "User registered successfully", userID)
}
