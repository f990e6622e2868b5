package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Application is a celebrity onboarding request. Admins move it through
// review; approval creates the celebrity user and profile.
type Application struct {
	BaseModel
	Name           string          `gorm:"not null"`
	Email          string          `gorm:"not null;index"`
	Category       string          `gorm:"type:varchar(50);not null"`
	Bio            string          `gorm:"type:text"`
	SocialLinks    StringList      `gorm:"type:text"`
	FollowerCount  int             `gorm:"default:0"`
	RequestedPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	HasIDDocument  bool `gorm:"default:false"`
	HasSocialProof bool `gorm:"default:false"`

	Status      ApplicationStatus `gorm:"type:varchar(30);not null;default:'pending';index"`
	ReviewNotes string            `gorm:"type:text"`
	ReviewerID  string            `gorm:"index"`
	ReviewedAt  *time.Time
}

// Reviewed reports whether the application reached a terminal decision.
func (a *Application) Reviewed() bool {
	return a.Status == ApplicationStatusApproved || a.Status == ApplicationStatusRejected
}
