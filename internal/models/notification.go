package models

type NotificationType string

const (
	NotificationOrderDelivered      NotificationType = "order_delivered"
	NotificationOrderApproved       NotificationType = "order_approved"
	NotificationOrderDeclined       NotificationType = "order_declined"
	NotificationOrderTipped         NotificationType = "order_tipped"
	NotificationApplicationDecision NotificationType = "application_decision"
)

type Notification struct {
	BaseModel
	UserID  string           `gorm:"not null;index"`
	Type    NotificationType `gorm:"type:varchar(40);not null"`
	Title   string           `gorm:"not null"`
	Message string           `gorm:"type:text"`
	IsRead  bool             `gorm:"default:false;index"`
}

// SupportTicket is a contact-form submission handled by admins.
type SupportTicket struct {
	BaseModel
	Name    string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Subject string `gorm:"not null"`
	Message string `gorm:"type:text;not null"`
	Status  string `gorm:"type:varchar(20);default:'open';index"`
}

const (
	SupportTicketOpen   = "open"
	SupportTicketClosed = "closed"
)
