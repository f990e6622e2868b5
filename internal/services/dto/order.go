package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"shoutout_backend/internal/models"
)

type CreateOrderRequest struct {
	CelebrityID     string     `json:"celebrity_id" binding:"required,uuid"`
	RecipientName   string     `json:"recipient_name" binding:"required,min=1,max=80"`
	Occasion        string     `json:"occasion" binding:"omitempty,max=60"`
	ScheduledFor    *time.Time `json:"scheduled_for"`
	PersonalMessage string     `json:"personal_message" binding:"omitempty,max=2000"`
	Currency        string     `json:"currency" binding:"omitempty,currency"`
}

type DeliverOrderRequest struct {
	VideoKey string `json:"video_key" binding:"required"`
}

type DeclineOrderRequest struct {
	Reason string `json:"reason" binding:"required,min=3,max=1000"`
}

type RevisionRequest struct {
	Reason string `json:"reason" binding:"required,min=3,max=1000"`
}

type CreateTipRequest struct {
	Amount  string `json:"amount" binding:"required"`
	Message string `json:"message" binding:"omitempty,max=500"`
}

type OrderDTO struct {
	ID              string                `json:"id"`
	OrderNumber     string                `json:"order_number"`
	CustomerID      string                `json:"customer_id"`
	CelebrityID     string                `json:"celebrity_id"`
	CelebrityName   string                `json:"celebrity_name,omitempty"`
	Status          models.OrderStatus    `json:"status"`
	ApprovalStatus  models.ApprovalStatus `json:"approval_status,omitempty"`
	PaymentStatus   models.PaymentStatus  `json:"payment_status"`
	TotalAmount     decimal.Decimal       `json:"total_amount"`
	TipTotal        decimal.Decimal       `json:"tip_total"`
	Currency        string                `json:"currency"`
	RecipientName   string                `json:"recipient_name"`
	Occasion        string                `json:"occasion,omitempty"`
	ScheduledFor    *time.Time            `json:"scheduled_for,omitempty"`
	PersonalMessage string                `json:"personal_message,omitempty"`
	VideoURL        string                `json:"video_url,omitempty"`
	ApprovedAt      *time.Time            `json:"approved_at,omitempty"`
	DeclinedReason  string                `json:"declined_reason,omitempty"`
	CanApprove      bool                  `json:"can_approve"`
	CanTip          bool                  `json:"can_tip"`
	CanDownload     bool                  `json:"can_download"`
	NeedsWatermark  bool                  `json:"needs_watermark"`
	CreatedAt       time.Time             `json:"created_at"`
}

type TipDTO struct {
	ID          string           `json:"id"`
	OrderNumber string           `json:"order_number"`
	Amount      decimal.Decimal  `json:"amount"`
	Message     string           `json:"message,omitempty"`
	Status      models.TipStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

type VideoLinkDTO struct {
	URL         string `json:"url"`
	Watermarked bool   `json:"watermarked"`
	ExpiresIn   int    `json:"expires_in_seconds,omitempty"`
}
