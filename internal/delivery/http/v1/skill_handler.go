package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobtrack-backend/internal/delivery/http/response"
	"go-jobtrack-backend/internal/domain"
	"go-jobtrack-backend/pkg/apperror"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(r *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	skills := r.Group("/skills")
	{
		skills.GET("", handler.List)
		skills.POST("", handler.Create)
		skills.DELETE("/:id", handler.Delete)
	}
}

type SkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

// List godoc
// @Summary      List the skill master list
// @Tags         skills
// @Produce      json
// @Success      200 {object}  response.Envelope{data=[]domain.Skill}
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.ListSkills(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills retrieved", skills)
}

// Create godoc
// @Summary      Add a skill to the master list
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        body  body      SkillRequest  true  "Skill data"
// @Success      201   {object}  response.Envelope
// @Failure      400   {object}  response.Envelope
// @Failure      409   {object}  response.Envelope
// @Router       /skills [post]
func (h *SkillHandler) Create(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill := &domain.Skill{Name: req.Name, Category: req.Category}
	if err := h.skillUC.CreateSkill(c, skill); err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithID(c, http.StatusCreated, "Skill created", skill.ID)
}

// Delete godoc
// @Summary      Remove a skill from the master list
// @Tags         skills
// @Produce      json
// @Param        id  path      int  true  "Skill ID"
// @Success      200 {object}  response.Envelope
// @Failure      404 {object}  response.Envelope
// @Router       /skills/{id} [delete]
func (h *SkillHandler) Delete(c *gin.Context) {
	id, appErr := parseID(c, "id")
	if appErr != nil {
		c.Error(appErr)
		return
	}

	if err := h.skillUC.DeleteSkill(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill deleted", nil)
}
