package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoutout_backend/internal/middleware"
	"shoutout_backend/internal/models"
	"shoutout_backend/internal/services"
	"shoutout_backend/internal/services/dto"
)

type CelebrityHandler struct {
	*BaseHandler
	celebrityService services.CelebrityService
}

func NewCelebrityHandler(base *BaseHandler, celebrityService services.CelebrityService) *CelebrityHandler {
	return &CelebrityHandler{BaseHandler: base, celebrityService: celebrityService}
}

func (h *CelebrityHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public discovery routes
	public := r.Group("/celebrities")
	{
		public.GET("", h.Search)
		public.GET("/featured", h.Featured)
		public.GET("/categories", h.Categories)
		public.GET("/:slug", h.GetBySlug)
	}

	// Celebrity self-service
	me := r.Group("/celebrity/profile")
	me.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCelebrity))
	{
		me.GET("", h.GetOwnProfile)
		me.PATCH("", h.UpdateOwnProfile)
	}

	// Admin moderation
	admin := r.Group("/admin/celebrities")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.PATCH("/:id", h.AdminUpdate)
	}
}

// Search is the discovery listing endpoint. All filters are optional;
// defaults mean "no filter".
func (h *CelebrityHandler) Search(c *gin.Context) {
	var req models.SearchCelebritiesRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	result, err := h.celebrityService.Search(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CelebrityHandler) Featured(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 8)

	items, err := h.celebrityService.ListFeatured(limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"celebrities": items})
}

func (h *CelebrityHandler) Categories(c *gin.Context) {
	categories, err := h.celebrityService.ListCategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CelebrityHandler) GetBySlug(c *gin.Context) {
	celeb, err := h.celebrityService.GetBySlug(c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, celeb)
}

func (h *CelebrityHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	celeb, err := h.celebrityService.GetOwnProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, celeb)
}

func (h *CelebrityHandler) UpdateOwnProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCelebrityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	celeb, err := h.celebrityService.UpdateOwnProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, celeb)
}

func (h *CelebrityHandler) AdminUpdate(c *gin.Context) {
	var req dto.AdminUpdateCelebrityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	celeb, err := h.celebrityService.AdminUpdate(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, celeb)
}
