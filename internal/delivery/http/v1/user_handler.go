package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC     domain.UserUsecase
	bookmarkUC domain.BookmarkUsecase
}

func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase, bookmarkUC domain.BookmarkUsecase) {
	handler := &UserHandler{userUC: userUC, bookmarkUC: bookmarkUC}

	users := protected.Group("/user")
	{
		users.GET("", handler.GetOwnProfile)
		users.PUT("", handler.UpdateOwnProfile)
		users.GET("/:username", handler.GetProfile)
		users.PUT("/:username", handler.UpdateProfile)
		users.GET("/:username/saved_jobs", handler.SavedJobs)
		users.GET("/:username/saved_work_experiences", handler.SavedWorkExperiences)
		users.GET("/:username/saved_workshops", handler.SavedWorkshops)
	}
}

type UpdateProfileRequest struct {
	Email       string `json:"email" binding:"omitempty,email,max=155"`
	Password    string `json:"password" binding:"omitempty,min=6,max=155"`
	Name        string `json:"name" binding:"max=155"`
	Description string `json:"description" binding:"max=155"`
	Picture     string `json:"picture" binding:"omitempty,url,max=155"`
	Location    string `json:"location" binding:"max=155"`
}

// GetOwnProfile godoc
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /user [get]
// @Security     BearerAuth
func (h *UserHandler) GetOwnProfile(c *gin.Context) {
	view, err := h.userUC.GetProfile(c.Request.Context(), middleware.Username(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User profile", view)
}

// UpdateOwnProfile godoc
// @Summary      Update the authenticated user's profile
// @Description  Partial update: blank fields keep their stored values.
// @Accept       json
// @Tags         users
// @Success      204
// @Router       /user [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateOwnProfile(c *gin.Context) {
	h.update(c, middleware.Username(c))
}

// GetProfile godoc
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /user/{username} [get]
// @Security     BearerAuth
func (h *UserHandler) GetProfile(c *gin.Context) {
	view, err := h.userUC.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User profile", view)
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Partial update: blank fields keep their stored values.
// @Tags         users
// @Accept       json
// @Param        username  path  string                true  "Username"
// @Param        patch     body  UpdateProfileRequest  true  "Fields to change"
// @Success      204
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /user/{username} [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	h.update(c, c.Param("username"))
}

func (h *UserHandler) update(c *gin.Context, username string) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	patch := &domain.ProfilePatch{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Description: req.Description,
		Picture:     req.Picture,
		Location:    req.Location,
	}

	if err := h.userUC.UpdateProfile(c.Request.Context(), middleware.UserID(c), username, patch); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SavedJobs godoc
// @Summary      List a user's saved jobs
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200  {object}  response.Response
// @Router       /user/{username}/saved_jobs [get]
// @Security     BearerAuth
func (h *UserHandler) SavedJobs(c *gin.Context) {
	jobs, err := h.bookmarkUC.ListSavedJobs(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved jobs", jobs)
}

func (h *UserHandler) SavedWorkExperiences(c *gin.Context) {
	exps, err := h.bookmarkUC.ListSavedWorkExperiences(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved work experiences", exps)
}

func (h *UserHandler) SavedWorkshops(c *gin.Context) {
	workshops, err := h.bookmarkUC.ListSavedWorkshops(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved workshops", workshops)
}
