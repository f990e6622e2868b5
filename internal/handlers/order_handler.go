package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoutout_backend/internal/middleware"
	"shoutout_backend/internal/models"
	"shoutout_backend/internal/repositories"
	"shoutout_backend/internal/services"
	"shoutout_backend/internal/services/dto"
	"shoutout_backend/pkg/apperrors"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
	tipService   services.TipService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService, tipService services.TipService) *OrderHandler {
	return &OrderHandler{BaseHandler: base, orderService: orderService, tipService: tipService}
}

func (h *OrderHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Customer routes
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCustomer))
	{
		orders.POST("", h.Create)
		orders.GET("", h.ListMine)
		orders.GET("/:orderNumber", h.Get)
		orders.POST("/:orderNumber/confirm", h.ConfirmPayment)
		orders.POST("/:orderNumber/approve", h.Approve)
		orders.POST("/:orderNumber/decline", h.Decline)
		orders.POST("/:orderNumber/revision", h.RequestRevision)
		orders.POST("/:orderNumber/cancel", h.Cancel)
		orders.GET("/:orderNumber/video/download", h.DownloadVideo)
		orders.POST("/:orderNumber/tips", h.CreateTip)
		orders.GET("/:orderNumber/tips", h.ListTips)
	}

	// Celebrity routes
	work := r.Group("/celebrity/orders")
	work.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCelebrity))
	{
		work.GET("", h.ListAssigned)
		work.POST("/:orderNumber/accept", h.Accept)
		work.POST("/:orderNumber/start", h.Start)
		work.POST("/:orderNumber/video", h.UploadVideo)
	}

	// Admin routes
	admin := r.Group("/admin/orders")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.ListAll)
		admin.POST("/:orderNumber/fail", h.Fail)
	}
}

// ---------------- Customer ----------------

func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	order, err := h.orderService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, limit := ParsePagination(c)
	orders, pagination, err := h.orderService.ListForCustomer(userID, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "pagination": pagination})
}

func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetForCustomer(userID, c.Param("orderNumber"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	h.customerAction(c, h.orderService.ConfirmPayment)
}

func (h *OrderHandler) Approve(c *gin.Context) {
	h.customerAction(c, h.orderService.Approve)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	h.customerAction(c, h.orderService.Cancel)
}

func (h *OrderHandler) customerAction(c *gin.Context, action func(customerID, orderNumber string) (*dto.OrderDTO, error)) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	order, err := action(userID, c.Param("orderNumber"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Decline(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.DeclineOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	order, err := h.orderService.Decline(userID, c.Param("orderNumber"), req.Reason)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) RequestRevision(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RevisionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	order, err := h.orderService.RequestRevision(userID, c.Param("orderNumber"), req.Reason)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DownloadVideo redirects to a short-lived signed URL once the order is
// approved; before approval it returns the watermarked preview link.
func (h *OrderHandler) DownloadVideo(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	link, err := h.orderService.VideoLink(c.Request.Context(), userID, c.Param("orderNumber"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if link.Watermarked {
		c.JSON(http.StatusOK, link)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, link.URL)
}

func (h *OrderHandler) CreateTip(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTipRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	tip, err := h.tipService.Create(userID, c.Param("orderNumber"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tip)
}

func (h *OrderHandler) ListTips(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	tips, err := h.tipService.ListForOrder(userID, c.Param("orderNumber"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

// ---------------- Celebrity ----------------

func (h *OrderHandler) ListAssigned(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	page, limit := ParsePagination(c)
	status := models.OrderStatus(c.Query("status"))

	orders, pagination, err := h.orderService.ListForCelebrity(userID, status, page, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "pagination": pagination})
}

func (h *OrderHandler) Accept(c *gin.Context) {
	h.customerAction(c, h.orderService.Accept)
}

func (h *OrderHandler) Start(c *gin.Context) {
	h.customerAction(c, h.orderService.Start)
}

func (h *OrderHandler) UploadVideo(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("video")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing video file"))
		return
	}

	src, err := file.Open()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	order, uploadErr := h.orderService.UploadVideo(
		c.Request.Context(), userID, c.Param("orderNumber"), src, contentType, file.Size)
	if uploadErr != nil {
		h.HandleServiceError(c, uploadErr)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ---------------- Admin ----------------

func (h *OrderHandler) ListAll(c *gin.Context) {
	page, limit := ParsePagination(c)
	filter := repositories.OrderFilter{
		CustomerID:  c.Query("customerId"),
		CelebrityID: c.Query("celebrityId"),
		Status:      models.OrderStatus(c.Query("status")),
		Page:        page,
		Limit:       limit,
	}

	orders, pagination, err := h.orderService.ListAll(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders, "pagination": pagination})
}

func (h *OrderHandler) Fail(c *gin.Context) {
	order, err := h.orderService.Fail(c.Param("orderNumber"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
