package repositories

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shoutout_backend/internal/models"
)

var ErrTipNotFound = errors.New("tip not found")

type TipRepository interface {
	Create(tip *models.Tip) error
	FindByOrderID(orderID string) ([]models.Tip, error)
	SumByOrderID(orderID string) (decimal.Decimal, error)
}

type TipRepositoryImpl struct {
	db *gorm.DB
}

func NewTipRepository(db *gorm.DB) TipRepository {
	return &TipRepositoryImpl{db: db}
}

func (r *TipRepositoryImpl) Create(tip *models.Tip) error {
	return r.db.Create(tip).Error
}

func (r *TipRepositoryImpl) FindByOrderID(orderID string) ([]models.Tip, error) {
	var tips []models.Tip
	err := r.db.Where("order_id = ?", orderID).Order("created_at DESC").Find(&tips).Error
	return tips, err
}

// SumByOrderID totals the paid tips on an order. The sum feeds the
// denormalized Order.TipTotal after every tip write.
func (r *TipRepositoryImpl) SumByOrderID(orderID string) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.Model(&models.Tip{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("order_id = ? AND status = ?", orderID, models.TipStatusPaid).
		Scan(&result).Error
	return result.Total, err
}
