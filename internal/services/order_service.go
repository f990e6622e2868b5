package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"shoutout_backend/internal/config"
	"shoutout_backend/internal/email"
	"shoutout_backend/internal/lifecycle"
	"shoutout_backend/internal/logger"
	"shoutout_backend/internal/models"
	"shoutout_backend/internal/repositories"
	"shoutout_backend/internal/services/dto"
	"shoutout_backend/internal/storage"
	"shoutout_backend/pkg/apperrors"
)

const signedVideoTTL = 15 * time.Minute

type OrderService interface {
	Create(customerID string, req *dto.CreateOrderRequest) (*dto.OrderDTO, error)
	Get(orderNumber string) (*dto.OrderDTO, error)
	GetForCustomer(customerID, orderNumber string) (*dto.OrderDTO, error)
	ListForCustomer(customerID string, page, limit int) ([]dto.OrderDTO, models.Pagination, error)
	ListForCelebrity(celebrityUserID string, status models.OrderStatus, page, limit int) ([]dto.OrderDTO, models.Pagination, error)

	// Customer lifecycle actions
	ConfirmPayment(customerID, orderNumber string) (*dto.OrderDTO, error)
	Approve(customerID, orderNumber string) (*dto.OrderDTO, error)
	Decline(customerID, orderNumber, reason string) (*dto.OrderDTO, error)
	RequestRevision(customerID, orderNumber, reason string) (*dto.OrderDTO, error)
	Cancel(customerID, orderNumber string) (*dto.OrderDTO, error)
	VideoLink(ctx context.Context, customerID, orderNumber string) (*dto.VideoLinkDTO, error)

	// Celebrity lifecycle actions
	Accept(celebrityUserID, orderNumber string) (*dto.OrderDTO, error)
	Start(celebrityUserID, orderNumber string) (*dto.OrderDTO, error)
	Deliver(ctx context.Context, celebrityUserID, orderNumber, videoKey string) (*dto.OrderDTO, error)
	UploadVideo(ctx context.Context, celebrityUserID, orderNumber string, r io.Reader, contentType string, size int64) (*dto.OrderDTO, error)

	// Admin
	ListAll(filter repositories.OrderFilter) ([]dto.OrderDTO, models.Pagination, error)
	Fail(orderNumber string) (*dto.OrderDTO, error)
}

type orderService struct {
	orderRepo repositories.OrderRepository
	celebRepo repositories.CelebrityRepository
	userRepo  repositories.UserRepository
	notifRepo repositories.NotificationRepository
	store     storage.Storage
	email     email.Provider
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	celebRepo repositories.CelebrityRepository,
	userRepo repositories.UserRepository,
	notifRepo repositories.NotificationRepository,
	store storage.Storage,
	emailProvider email.Provider,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		celebRepo: celebRepo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
		store:     store,
		email:     emailProvider,
	}
}

// ---------------- Creation and Reads ----------------

func (s *orderService) Create(customerID string, req *dto.CreateOrderRequest) (*dto.OrderDTO, error) {
	celeb, err := s.celebRepo.FindByID(req.CelebrityID)
	if err != nil {
		if errors.Is(err, repositories.ErrCelebrityNotFound) {
			return nil, apperrors.CelebrityNotFound(req.CelebrityID)
		}
		return nil, err
	}
	if celeb.Availability == models.AvailabilityUnavailable {
		return nil, apperrors.NewConflictError("order", "Celebrity is not taking orders right now")
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	order := &models.Order{
		OrderNumber:     generateOrderNumber(time.Now()),
		CustomerID:      customerID,
		CelebrityID:     celeb.ID,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		TotalAmount:     celeb.Price,
		Currency:        currency,
		RecipientName:   req.RecipientName,
		Occasion:        req.Occasion,
		ScheduledFor:    req.ScheduledFor,
		PersonalMessage: req.PersonalMessage,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	order.Celebrity = celeb
	return toOrderDTO(order), nil
}

func (s *orderService) Get(orderNumber string) (*dto.OrderDTO, error) {
	order, err := s.find(orderNumber)
	if err != nil {
		return nil, err
	}
	return toOrderDTO(order), nil
}

func (s *orderService) GetForCustomer(customerID, orderNumber string) (*dto.OrderDTO, error) {
	order, err := s.findForCustomer(customerID, orderNumber)
	if err != nil {
		return nil, err
	}
	return toOrderDTO(order), nil
}

func (s *orderService) ListForCustomer(customerID string, page, limit int) ([]dto.OrderDTO, models.Pagination, error) {
	return s.list(repositories.OrderFilter{CustomerID: customerID, Page: page, Limit: limit})
}

func (s *orderService) ListForCelebrity(celebrityUserID string, status models.OrderStatus, page, limit int) ([]dto.OrderDTO, models.Pagination, error) {
	celeb, err := s.celebRepo.FindByUserID(celebrityUserID)
	if err != nil {
		return nil, models.Pagination{}, apperrors.CelebrityNotFound(celebrityUserID)
	}
	return s.list(repositories.OrderFilter{CelebrityID: celeb.ID, Status: status, Page: page, Limit: limit})
}

func (s *orderService) ListAll(filter repositories.OrderFilter) ([]dto.OrderDTO, models.Pagination, error) {
	return s.list(filter)
}

func (s *orderService) list(filter repositories.OrderFilter) ([]dto.OrderDTO, models.Pagination, error) {
	orders, total, err := s.orderRepo.FindWithFilter(filter)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	out := make([]dto.OrderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, *toOrderDTO(&orders[i]))
	}
	return out, buildPagination(page, limit, total), nil
}

// ---------------- Customer Actions ----------------

func (s *orderService) ConfirmPayment(customerID, orderNumber string) (*dto.OrderDTO, error) {
	order, err := s.findForCustomer(customerID, orderNumber)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.Confirm(order); err != nil {
		return nil, apperrors.OrderInvalidTransition("Order cannot be confirmed in its current state")
	}
	order.PaymentStatus = models.PaymentStatusPaid

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderDTO(order), nil
}

func (s *orderService) Approve(customerID, orderNumber string) (*dto.OrderDTO, error) {
	order, err := s.findForCustomer(customerID, orderNumber)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.Approve(order, time.Now()); err != nil {
		return nil, approvalError(err)
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	if err := s.celebRepo.IncrementCompletedVideos(order.CelebrityID); err != nil {
		logger.WithError(err).Warn("completed videos counter not bumped", "order", order.OrderNumber)
	}

	s.notifyCelebrity(order, models.NotificationOrderApproved, "Video approved",
		"Your video for order "+order.OrderNumber+" was approved.", "order_approved", nil)

	return toOrderDTO(order), nil
}

func (s *orderService) Decline(customerID, orderNumber, reason string) (*dto.OrderDTO, error) {
	order, err := s.findForCustomer(customerID, orderNumber)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.Decline(order, reason); err != nil {
		return nil, approvalError(err)
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.notifyCelebrity(order, models.NotificationOrderDeclined, "Video declined",
		"Order "+order.OrderNumber+" was declined.", "order_declined",
		email.TemplateData{"Reason": reason})

	return toOrderDTO(order), nil
}

func (s *orderService) RequestRevision(customerID, orderNumber, reason string) (*dto.OrderDTO, error) {
	order, err := s.findForCustomer(customerID, orderNumber)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.RequestRevision(order, reason); err != nil {
		return nil, approvalError(err)
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.notifyCelebrity(order, models.NotificationOrderDeclined, "Revision requested",
		"The customer requested changes on order "+order.OrderNumber+".", "order_revision",
		email.TemplateData{"Reason": reason})

	return toOrderDTO(order), nil
}

func (s *orderService) Cancel(customerID, orderNumber string) (*dto.OrderDTO, error) {
	order, err := s.findForCustomer(customerID, orderNumber)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.Cancel(order); err != nil {
		return nil, apperrors.OrderInvalidTransition("Order cannot be cancelled in its current state")
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderDTO(order), nil
}

func (s *orderService) VideoLink(ctx context.Context, customerID, orderNumber string) (*dto.VideoLinkDTO, error) {
	order, err := s.findForCustomer(customerID, orderNumber)
	if err != nil {
		return nil, err
	}

	if !lifecycle.CanWatch(order) {
		return nil, apperrors.NewNotFoundError("order", "No video available for this order")
	}

	if lifecycle.CanDownload(order) {
		url, err := s.store.GetSignedURL(ctx, order.VideoKey, signedVideoTTL)
		if err != nil {
			return nil, err
		}
		return &dto.VideoLinkDTO{
			URL:       url,
			ExpiresIn: int(signedVideoTTL.Seconds()),
		}, nil
	}

	// Not yet approved: clients get the preview URL and render it
	// watermarked.
	return &dto.VideoLinkDTO{
		URL:         order.VideoURL,
		Watermarked: lifecycle.NeedsWatermark(order),
	}, nil
}

// ---------------- Celebrity Actions ----------------

func (s *orderService) Accept(celebrityUserID, orderNumber string) (*dto.OrderDTO, error) {
	order, err := s.findForCelebrity(celebrityUserID, orderNumber)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.Accept(order); err != nil {
		return nil, apperrors.OrderInvalidTransition("Order cannot be accepted in its current state")
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderDTO(order), nil
}

func (s *orderService) Start(celebrityUserID, orderNumber string) (*dto.OrderDTO, error) {
	order, err := s.findForCelebrity(celebrityUserID, orderNumber)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.Start(order); err != nil {
		return nil, apperrors.OrderInvalidTransition("Order cannot be started in its current state")
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderDTO(order), nil
}

func (s *orderService) Deliver(ctx context.Context, celebrityUserID, orderNumber, videoKey string) (*dto.OrderDTO, error) {
	order, err := s.findForCelebrity(celebrityUserID, orderNumber)
	if err != nil {
		return nil, err
	}

	exists, err := s.store.Exists(ctx, videoKey)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewBadRequestError("Uploaded video not found in storage")
	}

	videoURL, err := s.store.GetURL(ctx, videoKey)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.Deliver(order, videoKey, videoURL); err != nil {
		return nil, apperrors.OrderInvalidTransition("Order cannot be delivered in its current state")
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.notifyCustomer(order, models.NotificationOrderDelivered, "Your video is ready",
		"Order "+order.OrderNumber+" is waiting for your review.", "order_delivered", nil)

	return toOrderDTO(order), nil
}

// UploadVideo stores a multipart deliverable and runs the delivery
// transition in one step.
func (s *orderService) UploadVideo(ctx context.Context, celebrityUserID, orderNumber string, r io.Reader, contentType string, size int64) (*dto.OrderDTO, error) {
	order, err := s.findForCelebrity(celebrityUserID, orderNumber)
	if err != nil {
		return nil, err
	}
	if !lifecycle.CanTransition(order.Status, models.OrderStatusPendingApproval) {
		return nil, apperrors.OrderInvalidTransition("Order cannot be delivered in its current state")
	}

	upload := config.GetConfig().Upload
	if upload.MaxVideoSize > 0 && size > upload.MaxVideoSize {
		return nil, apperrors.NewBadRequestError("Video exceeds the maximum upload size")
	}
	if len(upload.AllowedTypes) > 0 && !contains(upload.AllowedTypes, contentType) {
		return nil, apperrors.NewBadRequestError("Unsupported video content type: " + contentType)
	}

	videoKey := "orders/" + order.OrderNumber + "/" + uuid.NewString() + extensionFor(contentType)
	if err := s.store.Save(ctx, videoKey, r, contentType); err != nil {
		return nil, err
	}

	videoURL, err := s.store.GetURL(ctx, videoKey)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.Deliver(order, videoKey, videoURL); err != nil {
		return nil, apperrors.OrderInvalidTransition("Order cannot be delivered in its current state")
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.notifyCustomer(order, models.NotificationOrderDelivered, "Your video is ready",
		"Order "+order.OrderNumber+" is waiting for your review.", "order_delivered", nil)

	return toOrderDTO(order), nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func extensionFor(contentType string) string {
	switch contentType {
	case "video/mp4":
		return ".mp4"
	case "video/quicktime":
		return ".mov"
	case "video/webm":
		return ".webm"
	default:
		return ""
	}
}

// ---------------- Admin ----------------

func (s *orderService) Fail(orderNumber string) (*dto.OrderDTO, error) {
	order, err := s.find(orderNumber)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.Fail(order); err != nil {
		return nil, apperrors.OrderInvalidTransition("Order is already in a terminal state")
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderDTO(order), nil
}

// ---------------- Internal ----------------

func (s *orderService) find(orderNumber string) (*models.Order, error) {
	order, err := s.orderRepo.FindByOrderNumber(orderNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.OrderNotFound(orderNumber)
		}
		return nil, err
	}
	lifecycle.Normalize(order)
	return order, nil
}

func (s *orderService) findForCustomer(customerID, orderNumber string) (*models.Order, error) {
	order, err := s.find(orderNumber)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		// Hide other customers' orders entirely.
		return nil, apperrors.OrderNotFound(orderNumber)
	}
	return order, nil
}

func (s *orderService) findForCelebrity(celebrityUserID, orderNumber string) (*models.Order, error) {
	celeb, err := s.celebRepo.FindByUserID(celebrityUserID)
	if err != nil {
		return nil, apperrors.CelebrityNotFound(celebrityUserID)
	}
	order, err := s.find(orderNumber)
	if err != nil {
		return nil, err
	}
	if order.CelebrityID != celeb.ID {
		return nil, apperrors.OrderNotFound(orderNumber)
	}
	return order, nil
}

func approvalError(err error) error {
	switch {
	case errors.Is(err, lifecycle.ErrNoVideo):
		return apperrors.OrderNotApprovable("Order has no delivered video")
	case errors.Is(err, lifecycle.ErrNotApprovable):
		return apperrors.OrderNotApprovable("Order is not awaiting approval")
	default:
		return apperrors.OrderInvalidTransition(err.Error())
	}
}

func (s *orderService) notifyCelebrity(order *models.Order, typ models.NotificationType, title, message, template string, extra email.TemplateData) {
	celeb := order.Celebrity
	if celeb == nil {
		var err error
		celeb, err = s.celebRepo.FindByID(order.CelebrityID)
		if err != nil {
			logger.WithError(err).Warn("celebrity notification skipped", "order", order.OrderNumber)
			return
		}
	}
	s.dispatch(celeb.UserID, celeb.DisplayName, order, typ, title, message, template, extra)
}

func (s *orderService) notifyCustomer(order *models.Order, typ models.NotificationType, title, message, template string, extra email.TemplateData) {
	customer, err := s.userRepo.FindByID(order.CustomerID)
	if err != nil {
		logger.WithError(err).Warn("customer notification skipped", "order", order.OrderNumber)
		return
	}
	s.dispatch(customer.ID, customer.Name, order, typ, title, message, template, extra)
}

func (s *orderService) dispatch(userID, name string, order *models.Order, typ models.NotificationType, title, message, template string, extra email.TemplateData) {
	go func() {
		if err := s.notifRepo.Create(&models.Notification{
			UserID:  userID,
			Type:    typ,
			Title:   title,
			Message: message,
		}); err != nil {
			logger.WithError(err).Warn("notification write failed", "order", order.OrderNumber)
		}

		user, err := s.userRepo.FindByID(userID)
		if err != nil {
			return
		}
		data := email.TemplateData{
			"Name":          name,
			"OrderNumber":   order.OrderNumber,
			"RecipientName": order.RecipientName,
		}
		for k, v := range extra {
			data[k] = v
		}
		if err := s.email.SendTemplate([]string{user.Email}, title, template, data); err != nil {
			logger.WithError(err).Warn("notification email failed", "order", order.OrderNumber)
		}
	}()
}

func toOrderDTO(order *models.Order) *dto.OrderDTO {
	out := &dto.OrderDTO{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		CustomerID:      order.CustomerID,
		CelebrityID:     order.CelebrityID,
		Status:          order.Status,
		ApprovalStatus:  order.ApprovalStatus,
		PaymentStatus:   order.PaymentStatus,
		TotalAmount:     order.TotalAmount,
		TipTotal:        order.TipTotal,
		Currency:        order.Currency,
		RecipientName:   order.RecipientName,
		Occasion:        order.Occasion,
		ScheduledFor:    order.ScheduledFor,
		PersonalMessage: order.PersonalMessage,
		VideoURL:        order.VideoURL,
		ApprovedAt:      order.ApprovedAt,
		DeclinedReason:  order.DeclinedReason,
		CanApprove:      lifecycle.CanApprove(order),
		CanTip:          lifecycle.CanTip(order),
		CanDownload:     lifecycle.CanDownload(order),
		NeedsWatermark:  lifecycle.NeedsWatermark(order),
		CreatedAt:       order.CreatedAt,
	}
	if order.Celebrity != nil {
		out.CelebrityName = order.Celebrity.DisplayName
	}
	return out
}
