package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"shoutout_backend/internal/models"
)

type CreateApplicationRequest struct {
	Name           string   `json:"name" binding:"required,min=2,max=80"`
	Email          string   `json:"email" binding:"required,email"`
	Category       string   `json:"category" binding:"required,max=50"`
	Bio            string   `json:"bio" binding:"required,min=20,max=2000"`
	SocialLinks    []string `json:"social_links" binding:"omitempty,max=5,dive,url"`
	FollowerCount  int      `json:"follower_count" binding:"omitempty,min=0"`
	RequestedPrice string   `json:"requested_price" binding:"required"`
	HasIDDocument  bool     `json:"has_id_document"`
	HasSocialProof bool     `json:"has_social_proof"`
}

type ReviewApplicationRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected requires_changes under_review"`
	Notes    string `json:"notes" binding:"omitempty,max=2000"`
}

type ApplicationDTO struct {
	ID             string                   `json:"id"`
	Name           string                   `json:"name"`
	Email          string                   `json:"email"`
	Category       string                   `json:"category"`
	Bio            string                   `json:"bio"`
	SocialLinks    []string                 `json:"social_links,omitempty"`
	FollowerCount  int                      `json:"follower_count"`
	RequestedPrice decimal.Decimal          `json:"requested_price"`
	HasIDDocument  bool                     `json:"has_id_document"`
	HasSocialProof bool                     `json:"has_social_proof"`
	Status         models.ApplicationStatus `json:"status"`
	ReviewNotes    string                   `json:"review_notes,omitempty"`
	ReviewerID     string                   `json:"reviewer_id,omitempty"`
	ReviewedAt     *time.Time               `json:"reviewed_at,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
}

func ApplicationToDTO(a *models.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		Category:       a.Category,
		Bio:            a.Bio,
		SocialLinks:    a.SocialLinks,
		FollowerCount:  a.FollowerCount,
		RequestedPrice: a.RequestedPrice,
		HasIDDocument:  a.HasIDDocument,
		HasSocialProof: a.HasSocialProof,
		Status:         a.Status,
		ReviewNotes:    a.ReviewNotes,
		ReviewerID:     a.ReviewerID,
		ReviewedAt:     a.ReviewedAt,
		CreatedAt:      a.CreatedAt,
	}
}
