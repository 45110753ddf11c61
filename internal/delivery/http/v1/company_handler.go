package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

// NewCompanyHandler registers company routes. createGroup decides whether
// creation needs a bearer token (configurable, tightened by default).
func NewCompanyHandler(createGroup, protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	createGroup.POST("/company", handler.Create)
	protected.GET("/company/:id", handler.Get)
}

type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required,max=155"`
	Description string `json:"description" binding:"required"`
	Picture     string `json:"picture" binding:"omitempty,url,max=155"`
	Website     string `json:"website" binding:"omitempty,url,max=155"`
}

// Create godoc
// @Summary      Register a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company  body      CreateCompanyRequest  true  "Company details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /company [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company := &domain.Company{
		Name:        req.Name,
		Description: req.Description,
		Picture:     req.Picture,
		Website:     req.Website,
	}

	if err := h.companyUC.CreateCompany(c.Request.Context(), company); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Company created", company)
}

// Get godoc
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /company/{id} [get]
// @Security     BearerAuth
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid company id"))
		return
	}

	company, err := h.companyUC.GetCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company details", company)
}
