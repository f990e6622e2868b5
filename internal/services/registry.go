package services

import (
	"shoutout_backend/internal/email"
	"shoutout_backend/internal/repositories"
	"shoutout_backend/internal/storage"
)

// ServiceContainer wires every service the handlers depend on.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	CelebrityService    CelebrityService
	OrderService        OrderService
	TipService          TipService
	ApplicationService  ApplicationService
	OfferingService     OfferingService
	NotificationService NotificationService
	PayoutService       PayoutService
	SupportService      SupportService
	EmailService        email.Provider
}

// NewServiceContainer builds all services against a repository set and
// shared infrastructure.
func NewServiceContainer(
	repos *repositories.RepositoryContainer,
	store storage.Storage,
	emailProvider email.Provider,
) *ServiceContainer {
	return &ServiceContainer{
		AuthService:         NewAuthService(repos.Users, repos.RefreshTokens, emailProvider),
		UserService:         NewUserService(repos.Users, repos.RefreshTokens),
		CelebrityService:    NewCelebrityService(repos.Celebrities),
		OrderService:        NewOrderService(repos.Orders, repos.Celebrities, repos.Users, repos.Notifications, store, emailProvider),
		TipService:          NewTipService(repos.Tips, repos.Orders, repos.Celebrities, repos.Notifications),
		ApplicationService:  NewApplicationService(repos.Applications, repos.Users, repos.Celebrities, emailProvider),
		OfferingService:     NewOfferingService(repos.Offerings),
		NotificationService: NewNotificationService(repos.Notifications),
		PayoutService:       NewPayoutService(repos.Payouts, repos.Celebrities),
		SupportService:      NewSupportService(repos.Support),
		EmailService:        emailProvider,
	}
}
