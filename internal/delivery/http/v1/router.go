package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	UserUC       domain.UserUsecase
	CompanyUC    domain.CompanyUsecase
	JobUC        domain.JobUsecase
	WorkExpUC    domain.WorkExperienceUsecase
	WorkshopUC   domain.WorkshopUsecase
	BookmarkUC   domain.BookmarkUsecase
	TokenManager *auth.Manager
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	registerValidators()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	root := r.Group("")

	// Health Check
	root.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	root.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	NewPublicHandler(root)

	authGroup := root.Group("")
	authGroup.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitLoginThreshold,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:auth:",
	}))
	NewAuthHandler(authGroup, deps.AuthUC)

	// Protected routes
	protected := root.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenManager))
	{
		NewUserHandler(protected, deps.UserUC, deps.BookmarkUC)
		NewJobHandler(protected, deps.JobUC)
		NewWorkExperienceHandler(protected, deps.WorkExpUC)
		NewWorkshopHandler(protected, deps.WorkshopUC)
		NewSaveHandler(protected, deps.BookmarkUC)
	}

	// Company creation was originally open; protect it unless config says otherwise.
	companyCreate := root.Group("")
	if deps.Config.CompanyCreateRequiresAuth {
		companyCreate.Use(middleware.AuthMiddleware(deps.TokenManager))
	}
	NewCompanyHandler(companyCreate, protected, deps.CompanyUC)

	return r
}
