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

type WorkshopHandler struct {
	workshopUC domain.WorkshopUsecase
}

func NewWorkshopHandler(protected *gin.RouterGroup, workshopUC domain.WorkshopUsecase) {
	handler := &WorkshopHandler{workshopUC: workshopUC}

	workshops := protected.Group("/workshop")
	{
		workshops.POST("", handler.Create)
		workshops.GET("", handler.List)
		workshops.GET("/:id", handler.Get)
	}
}

type CreateWorkshopRequest struct {
	Title       string    `json:"title" binding:"required,max=155"`
	Description string    `json:"description" binding:"required"`
	CompanyID   int64     `json:"company_id" binding:"required"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date"`
	Location    string    `json:"location" binding:"max=155"`
	Website     string    `json:"website" binding:"omitempty,url,max=155"`
	Picture     string    `json:"picture" binding:"omitempty,url,max=155"`
}

// Create godoc
// @Summary      Create a workshop listing
// @Tags         workshops
// @Accept       json
// @Produce      json
// @Param        workshop  body      CreateWorkshopRequest  true  "Workshop details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /workshop [post]
// @Security     BearerAuth
func (h *WorkshopHandler) Create(c *gin.Context) {
	var req CreateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	workshop := &domain.Workshop{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Website:     req.Website,
		Picture:     req.Picture,
	}

	if err := h.workshopUC.CreateWorkshop(c.Request.Context(), req.CompanyID, workshop); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Workshop created", workshop)
}

// List godoc
// @Summary      List workshops
// @Description  Filterable by organizer and location (repeatable query params).
// @Tags         workshops
// @Produce      json
// @Param        page       query  int       false  "Page number"
// @Param        page_size  query  int       false  "Page size"
// @Param        organizer  query  []string  false  "Organizer names"
// @Param        location   query  []string  false  "Locations"
// @Success      200  {object}  response.Response
// @Router       /workshop [get]
// @Security     BearerAuth
func (h *WorkshopHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	filter := domain.WorkshopFilter{
		OrganizerNames: c.QueryArray("organizer"),
		Locations:      c.QueryArray("location"),
	}

	workshops, total, err := h.workshopUC.ListWorkshops(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Workshop list", gin.H{
		"workshops": workshops,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *WorkshopHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid workshop id"))
		return
	}

	workshop, err := h.workshopUC.GetWorkshop(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Workshop details", workshop)
}
