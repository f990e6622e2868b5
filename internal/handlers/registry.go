package handlers

import (
	"shoutout_backend/internal/services"
	"shoutout_backend/internal/validator"
)

// AppHandlers holds every route handler in the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	CelebrityHandler    *CelebrityHandler
	OrderHandler        *OrderHandler
	ApplicationHandler  *ApplicationHandler
	OfferingHandler     *OfferingHandler
	NotificationHandler *NotificationHandler
	PayoutHandler       *PayoutHandler
	SupportHandler      *SupportHandler
}

// NewAppHandlers wires handlers against the service container.
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, sc.AuthService),
		UserHandler:         NewUserHandler(base, sc.UserService),
		CelebrityHandler:    NewCelebrityHandler(base, sc.CelebrityService),
		OrderHandler:        NewOrderHandler(base, sc.OrderService, sc.TipService),
		ApplicationHandler:  NewApplicationHandler(base, sc.ApplicationService),
		OfferingHandler:     NewOfferingHandler(base, sc.OfferingService),
		NotificationHandler: NewNotificationHandler(base, sc.NotificationService),
		PayoutHandler:       NewPayoutHandler(base, sc.PayoutService),
		SupportHandler:      NewSupportHandler(base, sc.SupportService),
	}
}
