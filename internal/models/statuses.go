package models

type UserStatus string
type UserRole string
type OrderStatus string
type ApprovalStatus string
type PaymentStatus string
type TipStatus string
type ApplicationStatus string
type Availability string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	UserRoleCustomer  UserRole = "customer"
	UserRoleCelebrity UserRole = "celebrity"
	UserRoleAdmin     UserRole = "admin"

	OrderStatusPending         OrderStatus = "pending"
	OrderStatusConfirmed       OrderStatus = "confirmed"
	OrderStatusAccepted        OrderStatus = "accepted"
	OrderStatusInProgress      OrderStatus = "in_progress"
	OrderStatusPendingApproval OrderStatus = "pending_approval"
	OrderStatusCompleted       OrderStatus = "completed"
	OrderStatusDeclined        OrderStatus = "declined"
	OrderStatusCancelled       OrderStatus = "cancelled"
	OrderStatusFailed          OrderStatus = "failed"

	// OrderStatusDelivered is a legacy alias for pending_approval kept
	// only so rows written by earlier iterations still parse. New rows
	// never carry it; lifecycle.Normalize rewrites it on read.
	OrderStatusDelivered OrderStatus = "delivered"

	ApprovalStatusNone              ApprovalStatus = ""
	ApprovalStatusPending           ApprovalStatus = "pending"
	ApprovalStatusApproved          ApprovalStatus = "approved"
	ApprovalStatusDeclined          ApprovalStatus = "declined"
	ApprovalStatusRevisionRequested ApprovalStatus = "revision_requested"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"

	TipStatusPending TipStatus = "pending"
	TipStatusPaid    TipStatus = "paid"
	TipStatusFailed  TipStatus = "failed"

	ApplicationStatusPending         ApplicationStatus = "pending"
	ApplicationStatusUnderReview     ApplicationStatus = "under_review"
	ApplicationStatusApproved        ApplicationStatus = "approved"
	ApplicationStatusRejected        ApplicationStatus = "rejected"
	ApplicationStatusRequiresChanges ApplicationStatus = "requires_changes"

	AvailabilityAvailable   Availability = "available"
	AvailabilityLimited     Availability = "limited"
	AvailabilityUnavailable Availability = "unavailable"
)
