package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoutout_backend/internal/middleware"
	"shoutout_backend/internal/models"
	"shoutout_backend/internal/services"
	"shoutout_backend/internal/services/dto"
)

type SupportHandler struct {
	*BaseHandler
	supportService services.SupportService
}

func NewSupportHandler(base *BaseHandler, supportService services.SupportService) *SupportHandler {
	return &SupportHandler{BaseHandler: base, supportService: supportService}
}

func (h *SupportHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public contact form
	r.POST("/support", h.Submit)

	admin := r.Group("/admin/support")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.POST("/:id/close", h.Close)
	}
}

func (h *SupportHandler) Submit(c *gin.Context) {
	var req dto.CreateSupportTicketRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	ticket, err := h.supportService.Submit(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

func (h *SupportHandler) List(c *gin.Context) {
	page, limit := ParsePagination(c)

	tickets, pagination, err := h.supportService.List(c.Query("status"), page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets, "pagination": pagination})
}

func (h *SupportHandler) Close(c *gin.Context) {
	if err := h.supportService.Close(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ticket closed"})
}
