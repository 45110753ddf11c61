package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := protected.Group("/job")
	{
		jobs.POST("", handler.Create)
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.GetDetails)
	}
}

type CreateJobRequest struct {
	Title            string `json:"title" binding:"required,max=155"`
	Description      string `json:"description" binding:"required"`
	Responsibilities string `json:"responsibilities"`
	Qualifications   string `json:"qualifications"`
	CompanyID        int64  `json:"company_id" binding:"required"`
	Salary           int64  `json:"salary" binding:"gte=0"`
	Location         string `json:"location" binding:"max=155"`
	JobType          string `json:"job_type" binding:"omitempty,jobtype"`
	Experience       string `json:"experience" binding:"omitempty,experience"`
	Website          string `json:"website" binding:"omitempty,url,max=155"`
}

// Create godoc
// @Summary      Create a job posting
// @Description  The job is attached to the company resolved from company_id.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:            req.Title,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
		Qualifications:   req.Qualifications,
		Salary:           req.Salary,
		Location:         req.Location,
		JobType:          req.JobType,
		Experience:       req.Experience,
		IsActive:         true,
		Website:          req.Website,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), req.CompanyID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// List godoc
// @Summary      List jobs
// @Description  Filterable by company, job_type and experience (repeatable query params).
// @Tags         jobs
// @Produce      json
// @Param        page       query  int       false  "Page number"
// @Param        page_size  query  int       false  "Page size"
// @Param        company    query  []string  false  "Company names"
// @Param        job_type   query  []string  false  "Job types"
// @Param        experience query  []string  false  "Experience levels"
// @Success      200  {object}  response.Response
// @Router       /job [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	filter := domain.JobFilter{
		CompanyNames: c.QueryArray("company"),
		JobTypes:     c.QueryArray("job_type"),
		Experiences:  c.QueryArray("experience"),
	}

	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	detail, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", detail)
}
