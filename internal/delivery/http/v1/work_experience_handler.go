package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type WorkExperienceHandler struct {
	expUC domain.WorkExperienceUsecase
}

func NewWorkExperienceHandler(protected *gin.RouterGroup, expUC domain.WorkExperienceUsecase) {
	handler := &WorkExperienceHandler{expUC: expUC}

	exps := protected.Group("/work_experience")
	{
		exps.POST("", handler.Create)
		exps.GET("/:id", handler.Get)
	}
}

type CreateWorkExperienceRequest struct {
	Role        string    `json:"role" binding:"required,max=155"`
	Description string    `json:"description" binding:"required"`
	CompanyID   int64     `json:"company_id" binding:"required"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date"`
}

// Create godoc
// @Summary      Create a work-experience listing
// @Tags         work-experiences
// @Accept       json
// @Produce      json
// @Param        work_experience  body      CreateWorkExperienceRequest  true  "Work experience details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /work_experience [post]
// @Security     BearerAuth
func (h *WorkExperienceHandler) Create(c *gin.Context) {
	var req CreateWorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	exp := &domain.WorkExperience{
		Role:        req.Role,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := h.expUC.CreateWorkExperience(c.Request.Context(), req.CompanyID, exp); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Work experience created", exp)
}

func (h *WorkExperienceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid work experience id"))
		return
	}

	exp, err := h.expUC.GetWorkExperience(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Work experience details", exp)
}
