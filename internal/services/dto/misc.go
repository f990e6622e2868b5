package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"shoutout_backend/internal/models"
)

type CreateOfferingRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=80"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	BasePrice   string `json:"base_price" binding:"required"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateOfferingRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=80"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	BasePrice   *string `json:"base_price"`
	IsActive    *bool   `json:"is_active"`
}

type OfferingDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	BasePrice   decimal.Decimal `json:"base_price"`
	IsActive    bool            `json:"is_active"`
}

func OfferingToDTO(o *models.ServiceOffering) OfferingDTO {
	return OfferingDTO{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		BasePrice:   o.BasePrice,
		IsActive:    o.IsActive,
	}
}

type NotificationDTO struct {
	ID        string                  `json:"id"`
	Type      models.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message,omitempty"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt time.Time               `json:"created_at"`
}

func NotificationToDTO(n *models.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

type CreateSupportTicketRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=80"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=3,max=120"`
	Message string `json:"message" binding:"required,min=10,max=5000"`
}

type SupportTicketDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended"`
}
