// Package lifecycle owns the order/video state machine: which statuses
// exist, which transitions are legal, and which customer actions each
// state permits. All functions are pure over *models.Order; persistence
// stays in the service layer.
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"shoutout_backend/internal/models"
)

var (
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrNoVideo           = errors.New("order has no delivered video")
	ErrNotApprovable     = errors.New("order is not awaiting approval")
	ErrNotApproved       = errors.New("order video is not approved")
	ErrTerminalState     = errors.New("order is in a terminal state")
)

// transitions is the closed adjacency table for the happy path.
// Cancel and Fail are handled separately: they are reachable from any
// non-terminal state.
var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:         {models.OrderStatusConfirmed},
	models.OrderStatusConfirmed:       {models.OrderStatusAccepted},
	models.OrderStatusAccepted:        {models.OrderStatusInProgress},
	models.OrderStatusInProgress:      {models.OrderStatusPendingApproval},
	models.OrderStatusPendingApproval: {models.OrderStatusCompleted, models.OrderStatusDeclined, models.OrderStatusInProgress},
	models.OrderStatusCompleted:       nil,
	models.OrderStatusDeclined:        nil,
	models.OrderStatusCancelled:       nil,
	models.OrderStatusFailed:          nil,
}

// IsTerminal reports whether no further transitions exist from s.
func IsTerminal(s models.OrderStatus) bool {
	switch s {
	case models.OrderStatusCompleted, models.OrderStatusDeclined,
		models.OrderStatusCancelled, models.OrderStatusFailed:
		return true
	}
	return false
}

// CanTransition reports whether from -> to is a legal step.
func CanTransition(from, to models.OrderStatus) bool {
	if to == models.OrderStatusCancelled || to == models.OrderStatusFailed {
		return !IsTerminal(from)
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Normalize rewrites the legacy "delivered" + pending-approval pair to
// the canonical pending_approval representation. Earlier iterations of
// the platform stored the same real-world state both ways; reads go
// through Normalize so the rest of the code sees exactly one.
func Normalize(o *models.Order) {
	if o.Status == models.OrderStatusDelivered {
		o.Status = models.OrderStatusPendingApproval
		if o.ApprovalStatus == models.ApprovalStatusNone {
			o.ApprovalStatus = models.ApprovalStatusPending
		}
	}
}

// --- guards ---

// AwaitingApproval is the shared precondition for approve and decline.
func AwaitingApproval(o *models.Order) bool {
	if o.Status == models.OrderStatusPendingApproval {
		return true
	}
	// legacy representation, tolerated on un-normalized rows
	return o.Status == models.OrderStatusDelivered && o.ApprovalStatus == models.ApprovalStatusPending
}

// CanApprove reports whether the customer may accept the video.
func CanApprove(o *models.Order) bool {
	return AwaitingApproval(o) && o.VideoURL != ""
}

// CanDecline shares the approve precondition.
func CanDecline(o *models.Order) bool {
	return CanApprove(o)
}

// Approved reports whether the video has been customer-approved.
func Approved(o *models.Order) bool {
	return o.Status == models.OrderStatusCompleted && o.ApprovalStatus == models.ApprovalStatusApproved
}

// CanTip permits gratuity only after the celebrity has been credited
// with delivering accepted work.
func CanTip(o *models.Order) bool {
	return Approved(o)
}

// CanDownload shares the tip guard.
func CanDownload(o *models.Order) bool {
	return Approved(o)
}

// CanWatch permits playback whenever a video exists, approved or not.
func CanWatch(o *models.Order) bool {
	return o.VideoURL != ""
}

// NeedsWatermark marks playback that must carry the overlay: a video
// exists but the customer has not yet approved it.
func NeedsWatermark(o *models.Order) bool {
	return CanWatch(o) && !Approved(o)
}

// --- mutators ---
// Every mutator validates its guard first and leaves the order
// untouched when it returns an error.

// Confirm moves a freshly paid order out of pending.
func Confirm(o *models.Order) error {
	return step(o, models.OrderStatusConfirmed)
}

// Accept records the celebrity taking the order.
func Accept(o *models.Order) error {
	return step(o, models.OrderStatusAccepted)
}

// Start records recording work beginning.
func Start(o *models.Order) error {
	return step(o, models.OrderStatusInProgress)
}

// Deliver attaches the recorded video and hands the order to the
// customer for review.
func Deliver(o *models.Order, videoKey, videoURL string) error {
	if videoURL == "" {
		return ErrNoVideo
	}
	if err := step(o, models.OrderStatusPendingApproval); err != nil {
		return err
	}
	o.VideoKey = videoKey
	o.VideoURL = videoURL
	o.ApprovalStatus = models.ApprovalStatusPending
	return nil
}

// Approve accepts the delivered video: the order completes and the
// watermark guard clears.
func Approve(o *models.Order, now time.Time) error {
	if !CanApprove(o) {
		if !AwaitingApproval(o) {
			return fmt.Errorf("%w: status is %q", ErrNotApprovable, o.Status)
		}
		return ErrNoVideo
	}
	Normalize(o)
	o.Status = models.OrderStatusCompleted
	o.ApprovalStatus = models.ApprovalStatusApproved
	o.ApprovedAt = &now
	return nil
}

// Decline rejects the delivered video outright.
func Decline(o *models.Order, reason string) error {
	if !CanDecline(o) {
		if !AwaitingApproval(o) {
			return fmt.Errorf("%w: status is %q", ErrNotApprovable, o.Status)
		}
		return ErrNoVideo
	}
	Normalize(o)
	o.Status = models.OrderStatusDeclined
	o.ApprovalStatus = models.ApprovalStatusDeclined
	o.DeclinedReason = reason
	return nil
}

// RequestRevision sends the order back to the celebrity with a reason.
func RequestRevision(o *models.Order, reason string) error {
	if !CanDecline(o) {
		if !AwaitingApproval(o) {
			return fmt.Errorf("%w: status is %q", ErrNotApprovable, o.Status)
		}
		return ErrNoVideo
	}
	Normalize(o)
	o.Status = models.OrderStatusInProgress
	o.ApprovalStatus = models.ApprovalStatusRevisionRequested
	o.DeclinedReason = reason
	return nil
}

// Cancel aborts the order from any non-terminal state.
func Cancel(o *models.Order) error {
	if IsTerminal(o.Status) {
		return fmt.Errorf("%w: %q", ErrTerminalState, o.Status)
	}
	Normalize(o)
	o.Status = models.OrderStatusCancelled
	return nil
}

// Fail marks the order failed (payment or fulfillment) from any
// non-terminal state.
func Fail(o *models.Order) error {
	if IsTerminal(o.Status) {
		return fmt.Errorf("%w: %q", ErrTerminalState, o.Status)
	}
	Normalize(o)
	o.Status = models.OrderStatusFailed
	return nil
}

func step(o *models.Order, to models.OrderStatus) error {
	Normalize(o)
	if !CanTransition(o.Status, to) {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, o.Status, to)
	}
	o.Status = to
	return nil
}
