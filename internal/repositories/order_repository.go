package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"shoutout_backend/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order listings.
type OrderFilter struct {
	CustomerID  string
	CelebrityID string
	Status      models.OrderStatus
	Page        int
	Limit       int
}

type OrderRepository interface {
	Create(order *models.Order) error
	Update(order *models.Order) error
	FindByID(id string) (*models.Order, error)
	FindByOrderNumber(orderNumber string) (*models.Order, error)
	FindWithFilter(filter OrderFilter) ([]models.Order, int64, error)

	// UpdateFields patches a subset of columns on one order. Guard
	// checks happen in the service; this only persists.
	UpdateFields(orderID string, fields map[string]interface{}) error

	// CancelStalePending cancels unpaid pending orders older than cutoff.
	CancelStalePending(cutoff time.Time) (int64, error)

	// FindAwaitingApprovalSince lists orders sitting in review since
	// before the cutoff (for the auto-approval worker).
	FindAwaitingApprovalSince(cutoff time.Time) ([]models.Order, error)

	// ReconcileTipTotals rewrites every order's denormalized tip_total
	// from the tips table. Returns the number of rows corrected.
	ReconcileTipTotals() (int64, error)
}

type OrderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *OrderRepositoryImpl) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *OrderRepositoryImpl) FindByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Celebrity").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindByOrderNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Celebrity").First(&order, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindWithFilter(filter OrderFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})

	if filter.CustomerID != "" {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.CelebrityID != "" {
		query = query.Where("celebrity_id = ?", filter.CelebrityID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	var orders []models.Order
	err := query.Preload("Celebrity").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepositoryImpl) UpdateFields(orderID string, fields map[string]interface{}) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", orderID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepositoryImpl) CancelStalePending(cutoff time.Time) (int64, error) {
	result := r.db.Model(&models.Order{}).
		Where("status = ? AND payment_status = ? AND created_at < ?",
			models.OrderStatusPending, models.PaymentStatusPending, cutoff).
		Updates(map[string]interface{}{"status": models.OrderStatusCancelled})
	return result.RowsAffected, result.Error
}

func (r *OrderRepositoryImpl) ReconcileTipTotals() (int64, error) {
	result := r.db.Exec(`
		UPDATE orders SET tip_total = agg.total
		FROM (
			SELECT order_id, COALESCE(SUM(amount), 0) AS total
			FROM tips WHERE status = ?
			GROUP BY order_id
		) AS agg
		WHERE orders.id = agg.order_id AND orders.tip_total <> agg.total`,
		models.TipStatusPaid)
	return result.RowsAffected, result.Error
}

func (r *OrderRepositoryImpl) FindAwaitingApprovalSince(cutoff time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Where("status IN ? AND approval_status = ? AND updated_at < ?",
			[]models.OrderStatus{models.OrderStatusPendingApproval, models.OrderStatusDelivered},
			models.ApprovalStatusPending, cutoff).
		Find(&orders).Error
	return orders, err
}
