package repositories

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shoutout_backend/internal/models"
)

// EarningsSummary is a celebrity's payout dashboard header.
type EarningsSummary struct {
	CompletedOrders int64           `json:"completedOrders"`
	OrderEarnings   decimal.Decimal `json:"orderEarnings"`
	TipEarnings     decimal.Decimal `json:"tipEarnings"`
	TotalEarnings   decimal.Decimal `json:"totalEarnings"`
}

// EarningsLine is one completed order on the dashboard.
type EarningsLine struct {
	OrderNumber   string          `json:"orderNumber"`
	Occasion      string          `json:"occasion"`
	RecipientName string          `json:"recipientName"`
	Amount        decimal.Decimal `json:"amount"`
	TipTotal      decimal.Decimal `json:"tipTotal"`
	ApprovedAt    *string         `json:"approvedAt,omitempty"`
}

type PayoutRepository interface {
	GetEarningsSummary(celebrityID string) (*EarningsSummary, error)
	GetEarningsLines(celebrityID string, page, limit int) ([]EarningsLine, int64, error)
}

type PayoutRepositoryImpl struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) PayoutRepository {
	return &PayoutRepositoryImpl{db: db}
}

// GetEarningsSummary aggregates completed, customer-approved orders and
// their paid tips. Only approved work counts toward payouts.
func (r *PayoutRepositoryImpl) GetEarningsSummary(celebrityID string) (*EarningsSummary, error) {
	summary := &EarningsSummary{}

	base := r.db.Model(&models.Order{}).
		Where("celebrity_id = ? AND status = ? AND approval_status = ?",
			celebrityID, models.OrderStatusCompleted, models.ApprovalStatusApproved)

	if err := base.Count(&summary.CompletedOrders).Error; err != nil {
		return nil, err
	}

	var totals struct {
		Orders decimal.Decimal
		Tips   decimal.Decimal
	}
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS orders, COALESCE(SUM(tip_total), 0) AS tips").
		Where("celebrity_id = ? AND status = ? AND approval_status = ?",
			celebrityID, models.OrderStatusCompleted, models.ApprovalStatusApproved).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	summary.OrderEarnings = totals.Orders
	summary.TipEarnings = totals.Tips
	summary.TotalEarnings = totals.Orders.Add(totals.Tips)
	return summary, nil
}

func (r *PayoutRepositoryImpl) GetEarningsLines(celebrityID string, page, limit int) ([]EarningsLine, int64, error) {
	query := r.db.Model(&models.Order{}).
		Where("celebrity_id = ? AND status = ? AND approval_status = ?",
			celebrityID, models.OrderStatusCompleted, models.ApprovalStatusApproved)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var lines []EarningsLine
	err := query.
		Select("order_number, occasion, recipient_name, total_amount AS amount, tip_total, approved_at").
		Order("approved_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Scan(&lines).Error
	return lines, total, err
}
