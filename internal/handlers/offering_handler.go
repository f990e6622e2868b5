package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoutout_backend/internal/middleware"
	"shoutout_backend/internal/models"
	"shoutout_backend/internal/services"
	"shoutout_backend/internal/services/dto"
)

type OfferingHandler struct {
	*BaseHandler
	offeringService services.OfferingService
}

func NewOfferingHandler(base *BaseHandler, offeringService services.OfferingService) *OfferingHandler {
	return &OfferingHandler{BaseHandler: base, offeringService: offeringService}
}

func (h *OfferingHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public catalog
	r.GET("/services", h.ListActive)

	// Admin CRUD
	admin := r.Group("/admin/services")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.ListAll)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *OfferingHandler) ListActive(c *gin.Context) {
	items, err := h.offeringService.List(true)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": items})
}

func (h *OfferingHandler) ListAll(c *gin.Context) {
	items, err := h.offeringService.List(false)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": items})
}

func (h *OfferingHandler) Create(c *gin.Context) {
	var req dto.CreateOfferingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	offering, err := h.offeringService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offering)
}

func (h *OfferingHandler) Update(c *gin.Context) {
	var req dto.UpdateOfferingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	offering, err := h.offeringService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, offering)
}

func (h *OfferingHandler) Delete(c *gin.Context) {
	if err := h.offeringService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Offering removed"})
}
