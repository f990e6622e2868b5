package models

import "github.com/shopspring/decimal"

// Celebrity is the public talent profile backing discovery.
// The server owns every field; clients hold read-only projections.
type Celebrity struct {
	BaseModel
	UserID        string          `gorm:"uniqueIndex;not null"`
	DisplayName   string          `gorm:"not null;index"`
	Slug          string          `gorm:"uniqueIndex;not null"`
	Category      string          `gorm:"type:varchar(50);not null;index"`
	Bio           string          `gorm:"type:text"`
	ImageURL      string
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Rating        float64         `gorm:"default:0;check:rating >= 0 AND rating <= 5"`
	ReviewCount   int             `gorm:"default:0"`
	CompletedVideos int           `gorm:"default:0"`
	ResponseTime  string          `gorm:"type:varchar(40)"` // e.g. "24hr", "3 days"
	ResponseHours int             `gorm:"default:72"`       // sortable form of ResponseTime
	IsVerified    bool            `gorm:"default:false"`
	IsFeatured    bool            `gorm:"default:false;index"`
	Availability  Availability    `gorm:"type:varchar(20);default:'available'"`
	NextAvailable string          `gorm:"type:varchar(60)"`
	Tags          StringList      `gorm:"type:text"`

	User *User `gorm:"foreignKey:UserID"`
}

// ClampRating keeps the stored rating inside [0, 5].
func (c *Celebrity) ClampRating() {
	if c.Rating < 0 {
		c.Rating = 0
	}
	if c.Rating > 5 {
		c.Rating = 5
	}
}
