package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoutout_backend/internal/middleware"
	"shoutout_backend/internal/models"
	"shoutout_backend/internal/repositories"
	"shoutout_backend/internal/services"
	"shoutout_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public submission
	r.POST("/applications", h.Submit)

	// Admin review queue
	admin := r.Group("/admin/applications")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.GET("/stats", h.Stats)
		admin.GET("/:id", h.Get)
		admin.POST("/:id/review", h.Review)
	}
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Submit(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	page, limit := ParsePagination(c)
	filter := repositories.ApplicationFilter{
		Status: models.ApplicationStatus(c.Query("status")),
		Page:   page,
		Limit:  limit,
	}

	apps, pagination, err := h.applicationService.List(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "pagination": pagination})
}

func (h *ApplicationHandler) Stats(c *gin.Context) {
	stats, err := h.applicationService.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.applicationService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Review(c *gin.Context) {
	reviewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReviewApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Review(reviewerID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
