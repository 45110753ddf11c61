package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SaveHandler struct {
	bookmarkUC domain.BookmarkUsecase
}

func NewSaveHandler(protected *gin.RouterGroup, bookmarkUC domain.BookmarkUsecase) {
	handler := &SaveHandler{bookmarkUC: bookmarkUC}

	save := protected.Group("/save")
	{
		save.POST("/job", handler.ToggleJob)
		save.POST("/work_experience", handler.ToggleWorkExperience)
		save.POST("/workshop", handler.ToggleWorkshop)
	}
}

// Save is a pointer so that an explicit false survives binding.
type SaveJobRequest struct {
	JobID int64 `json:"job_id" binding:"required"`
	Save  *bool `json:"save" binding:"required"`
}

type SaveWorkExperienceRequest struct {
	WorkExperienceID int64 `json:"work_experience_id" binding:"required"`
	Save             *bool `json:"save" binding:"required"`
}

type SaveWorkshopRequest struct {
	WorkshopID int64 `json:"workshop_id" binding:"required"`
	Save       *bool `json:"save" binding:"required"`
}

// ToggleJob godoc
// @Summary      Save or unsave a job
// @Description  Idempotent: re-saving or unsaving an absent bookmark is a no-op.
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        toggle  body      SaveJobRequest  true  "Toggle"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /save/job [post]
// @Security     BearerAuth
func (h *SaveHandler) ToggleJob(c *gin.Context) {
	var req SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	h.toggle(c, domain.KindJob, req.JobID, *req.Save)
}

func (h *SaveHandler) ToggleWorkExperience(c *gin.Context) {
	var req SaveWorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	h.toggle(c, domain.KindWorkExperience, req.WorkExperienceID, *req.Save)
}

// ToggleWorkshop godoc
// @Summary      Save or unsave a workshop
// @Description  Strict: duplicate saves and absent unsaves fail with 400 and leave the save counter untouched.
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        toggle  body      SaveWorkshopRequest  true  "Toggle"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /save/workshop [post]
// @Security     BearerAuth
func (h *SaveHandler) ToggleWorkshop(c *gin.Context) {
	var req SaveWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	h.toggle(c, domain.KindWorkshop, req.WorkshopID, *req.Save)
}

func (h *SaveHandler) toggle(c *gin.Context, kind domain.ItemKind, itemID int64, save bool) {
	msg, err := h.bookmarkUC.Toggle(c.Request.Context(), middleware.UserID(c), kind, itemID, save)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, msg, nil)
}
