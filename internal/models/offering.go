package models

import "github.com/shopspring/decimal"

// ServiceOffering is an admin-managed catalog entry (occasion type with
// a base price) backing the admin services CRUD.
type ServiceOffering struct {
	BaseModelWithDeleted
	Name        string          `gorm:"uniqueIndex;not null"`
	Description string          `gorm:"type:text"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IsActive    bool            `gorm:"default:true"`
}
