package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a single requested personalized video transaction between a
// customer and a celebrity.
type Order struct {
	BaseModel
	OrderNumber string `gorm:"uniqueIndex;not null"`
	CustomerID  string `gorm:"not null;index"`
	CelebrityID string `gorm:"not null;index"`

	Status         OrderStatus    `gorm:"type:varchar(30);not null;default:'pending';index"`
	ApprovalStatus ApprovalStatus `gorm:"type:varchar(30);default:''"`
	PaymentStatus  PaymentStatus  `gorm:"type:varchar(20);not null;default:'pending'"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null;default:'USD'"`

	RecipientName   string `gorm:"not null"`
	Occasion        string `gorm:"type:varchar(60)"`
	ScheduledFor    *time.Time
	PersonalMessage string `gorm:"type:text"`

	// Video delivery. VideoKey is the storage path, VideoURL the
	// public (or signed) URL handed to clients.
	VideoKey string
	VideoURL string

	ApprovedAt     *time.Time
	DeclinedReason string `gorm:"type:text"`

	// TipTotal is denormalized from the tips table after every tip write.
	TipTotal decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	Customer  *User      `gorm:"foreignKey:CustomerID"`
	Celebrity *Celebrity `gorm:"foreignKey:CelebrityID"`
	Tips      []Tip      `gorm:"foreignKey:OrderID"`
}

// Tip is an optional post-approval gratuity on an order.
type Tip struct {
	BaseModel
	OrderID     string          `gorm:"not null;index"`
	OrderNumber string          `gorm:"not null;index"`
	CustomerID  string          `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Message     string          `gorm:"type:text"`
	Status      TipStatus       `gorm:"type:varchar(20);not null;default:'pending'"`
}
