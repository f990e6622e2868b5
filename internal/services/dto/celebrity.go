package dto

import (
	"github.com/shopspring/decimal"

	"shoutout_backend/internal/models"
)

type CelebrityDTO struct {
	ID              string              `json:"id"`
	DisplayName     string              `json:"display_name"`
	Slug            string              `json:"slug"`
	Category        string              `json:"category"`
	Bio             string              `json:"bio,omitempty"`
	ImageURL        string              `json:"image_url,omitempty"`
	Price           decimal.Decimal     `json:"price"`
	Rating          float64             `json:"rating"`
	ReviewCount     int                 `json:"review_count"`
	CompletedVideos int                 `json:"completed_videos"`
	ResponseTime    string              `json:"response_time,omitempty"`
	IsVerified      bool                `json:"is_verified"`
	IsFeatured      bool                `json:"is_featured"`
	Availability    models.Availability `json:"availability"`
	NextAvailable   string              `json:"next_available,omitempty"`
	Tags            []string            `json:"tags,omitempty"`
}

func CelebrityToDTO(c *models.Celebrity) CelebrityDTO {
	return CelebrityDTO{
		ID:              c.ID,
		DisplayName:     c.DisplayName,
		Slug:            c.Slug,
		Category:        c.Category,
		Bio:             c.Bio,
		ImageURL:        c.ImageURL,
		Price:           c.Price,
		Rating:          c.Rating,
		ReviewCount:     c.ReviewCount,
		CompletedVideos: c.CompletedVideos,
		ResponseTime:    c.ResponseTime,
		IsVerified:      c.IsVerified,
		IsFeatured:      c.IsFeatured,
		Availability:    c.Availability,
		NextAvailable:   c.NextAvailable,
		Tags:            c.Tags,
	}
}

func CelebritiesToDTO(items []models.Celebrity) []CelebrityDTO {
	out := make([]CelebrityDTO, 0, len(items))
	for i := range items {
		out = append(out, CelebrityToDTO(&items[i]))
	}
	return out
}

type UpdateCelebrityRequest struct {
	DisplayName   *string  `json:"display_name" binding:"omitempty,min=2,max=80"`
	Category      *string  `json:"category" binding:"omitempty,max=50"`
	Bio           *string  `json:"bio" binding:"omitempty,max=2000"`
	ImageURL      *string  `json:"image_url" binding:"omitempty,url"`
	Price         *string  `json:"price" binding:"omitempty"`
	ResponseTime  *string  `json:"response_time" binding:"omitempty,max=40"`
	Availability  *string  `json:"availability" binding:"omitempty,oneof=available limited unavailable"`
	NextAvailable *string  `json:"next_available" binding:"omitempty,max=60"`
	Tags          []string `json:"tags" binding:"omitempty,max=10"`
}

type AdminUpdateCelebrityRequest struct {
	UpdateCelebrityRequest
	IsVerified *bool `json:"is_verified"`
	IsFeatured *bool `json:"is_featured"`
}

type SearchResultDTO struct {
	Celebrities []CelebrityDTO    `json:"celebrities"`
	Categories  []string          `json:"categories,omitempty"`
	Pagination  models.Pagination `json:"pagination"`
}
