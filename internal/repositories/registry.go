package repositories

import "gorm.io/gorm"

// RepositoryContainer holds one instance of every repository.
type RepositoryContainer struct {
	Users         UserRepository
	RefreshTokens RefreshTokenRepository
	Celebrities   CelebrityRepository
	Orders        OrderRepository
	Tips          TipRepository
	Applications  ApplicationRepository
	Offerings     OfferingRepository
	Notifications NotificationRepository
	Support       SupportRepository
	Payouts       PayoutRepository
}

func NewRepositoryContainer(db *gorm.DB) *RepositoryContainer {
	return &RepositoryContainer{
		Users:         NewUserRepository(db),
		RefreshTokens: NewRefreshTokenRepository(db),
		Celebrities:   NewCelebrityRepository(db),
		Orders:        NewOrderRepository(db),
		Tips:          NewTipRepository(db),
		Applications:  NewApplicationRepository(db),
		Offerings:     NewOfferingRepository(db),
		Notifications: NewNotificationRepository(db),
		Support:       NewSupportRepository(db),
		Payouts:       NewPayoutRepository(db),
	}
}
