package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-jobtrack-backend/config"
	"go-jobtrack-backend/internal/delivery/http/middleware"
	"go-jobtrack-backend/internal/delivery/http/response"
	"go-jobtrack-backend/internal/domain"
)

type RouterDeps struct {
	RegistrationUC domain.RegistrationUsecase
	UserUC         domain.UserUsecase
	ProfileUC      domain.ProfileUsecase
	CompanyUC      domain.CompanyUsecase
	JobUC          domain.JobUsecase
	ApplicationUC  domain.ApplicationUsecase
	SkillUC        domain.SkillUsecase
	NotificationUC domain.NotificationUsecase
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold, deps.Config.RateLimitWindowSeconds)))

	// Uploaded files (profile photos, company logos)
	r.Static("/static", deps.Config.UploadDir)

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewRegisterHandler(v1, deps.RegistrationUC)
	NewUserHandler(v1, deps.UserUC, deps.ProfileUC, deps.Config)
	NewCompanyHandler(v1, deps.CompanyUC, deps.Config)
	NewJobHandler(v1, deps.JobUC)
	NewApplicationHandler(v1, deps.ApplicationUC)
	NewSkillHandler(v1, deps.SkillUC)
	NewNotificationHandler(v1, deps.NotificationUC)

	return r
}
