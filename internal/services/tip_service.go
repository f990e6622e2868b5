package services

import (
	"github.com/shopspring/decimal"

	"shoutout_backend/internal/lifecycle"
	"shoutout_backend/internal/logger"
	"shoutout_backend/internal/models"
	"shoutout_backend/internal/repositories"
	"shoutout_backend/internal/services/dto"
	"shoutout_backend/pkg/apperrors"
)

type TipService interface {
	Create(customerID, orderNumber string, req *dto.CreateTipRequest) (*dto.TipDTO, error)
	ListForOrder(customerID, orderNumber string) ([]dto.TipDTO, error)
}

type tipService struct {
	tipRepo   repositories.TipRepository
	orderRepo repositories.OrderRepository
	celebRepo repositories.CelebrityRepository
	notifRepo repositories.NotificationRepository
}

func NewTipService(
	tipRepo repositories.TipRepository,
	orderRepo repositories.OrderRepository,
	celebRepo repositories.CelebrityRepository,
	notifRepo repositories.NotificationRepository,
) TipService {
	return &tipService{
		tipRepo:   tipRepo,
		orderRepo: orderRepo,
		celebRepo: celebRepo,
		notifRepo: notifRepo,
	}
}

func (s *tipService) Create(customerID, orderNumber string, req *dto.CreateTipRequest) (*dto.TipDTO, error) {
	order, err := s.orderRepo.FindByOrderNumber(orderNumber)
	if err != nil {
		return nil, apperrors.OrderNotFound(orderNumber)
	}
	if order.CustomerID != customerID {
		return nil, apperrors.OrderNotFound(orderNumber)
	}

	lifecycle.Normalize(order)
	if !lifecycle.CanTip(order) {
		return nil, apperrors.TipNotAllowed("Tips are only accepted on completed, approved orders")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, apperrors.NewBadRequestError("Tip amount must be a positive number")
	}

	tip := &models.Tip{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  customerID,
		Amount:      amount,
		Message:     req.Message,
		Status:      models.TipStatusPaid,
	}
	if err := s.tipRepo.Create(tip); err != nil {
		return nil, err
	}

	// Re-aggregate rather than add in place, so concurrent tips and
	// retried writes all converge to the same total.
	total, err := s.tipRepo.SumByOrderID(order.ID)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateFields(order.ID, map[string]interface{}{"tip_total": total}); err != nil {
		return nil, err
	}

	go func() {
		celeb, err := s.celebRepo.FindByID(order.CelebrityID)
		if err != nil {
			return
		}
		if err := s.notifRepo.Create(&models.Notification{
			UserID:  celeb.UserID,
			Type:    models.NotificationOrderTipped,
			Title:   "You received a tip",
			Message: "Order " + order.OrderNumber + " was tipped " + amount.StringFixed(2) + " " + order.Currency + ".",
		}); err != nil {
			logger.WithError(err).Warn("tip notification failed", "order", order.OrderNumber)
		}
	}()

	return toTipDTO(tip), nil
}

func (s *tipService) ListForOrder(customerID, orderNumber string) ([]dto.TipDTO, error) {
	order, err := s.orderRepo.FindByOrderNumber(orderNumber)
	if err != nil {
		return nil, apperrors.OrderNotFound(orderNumber)
	}
	if order.CustomerID != customerID {
		return nil, apperrors.OrderNotFound(orderNumber)
	}

	tips, err := s.tipRepo.FindByOrderID(order.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TipDTO, 0, len(tips))
	for i := range tips {
		out = append(out, *toTipDTO(&tips[i]))
	}
	return out, nil
}

func toTipDTO(tip *models.Tip) *dto.TipDTO {
	return &dto.TipDTO{
		ID:          tip.ID,
		OrderNumber: tip.OrderNumber,
		Amount:      tip.Amount,
		Message:     tip.Message,
		Status:      tip.Status,
		CreatedAt:   tip.CreatedAt,
	}
}
