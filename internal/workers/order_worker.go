package workers

import (
	"context"
	"time"

	"shoutout_backend/internal/config"
	"shoutout_backend/internal/lifecycle"
	"shoutout_backend/internal/logger"
	"shoutout_backend/internal/repositories"
)

// OrderWorker runs the order housekeeping loops: expiring stale unpaid
// orders and, when configured, auto-approving videos the customer never
// reviewed.
type OrderWorker struct {
	orderRepo repositories.OrderRepository
	celebRepo repositories.CelebrityRepository
	cfg       *config.Config
}

func NewOrderWorker(orderRepo repositories.OrderRepository, celebRepo repositories.CelebrityRepository, cfg *config.Config) *OrderWorker {
	return &OrderWorker{orderRepo: orderRepo, celebRepo: celebRepo, cfg: cfg}
}

func (w *OrderWorker) Start(ctx context.Context) {
	go w.expireStalePending(ctx)
	if w.cfg.Orders.AutoApproveDays > 0 {
		go w.autoApprove(ctx)
	}
}

// expireStalePending cancels unpaid pending orders past their TTL.
func (w *OrderWorker) expireStalePending(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("order expiry worker stopped")
			return
		case <-ticker.C:
			ttl := time.Duration(w.cfg.Orders.PendingTTLHours) * time.Hour
			if ttl <= 0 {
				ttl = 72 * time.Hour
			}
			cutoff := time.Now().Add(-ttl)

			count, err := w.orderRepo.CancelStalePending(cutoff)
			logger.WorkerLog("order_expiry", "cancel_stale_pending", err)
			if err == nil && count > 0 {
				logger.Info("cancelled stale pending orders", "count", count)
			}
		}
	}
}

// autoApprove completes orders the customer left in review beyond the
// approval window. Disabled unless orders.auto_approve_days is set.
func (w *OrderWorker) autoApprove(ctx context.Context) {
	ticker := time.NewTicker(6 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("auto-approve worker stopped")
			return
		case <-ticker.C:
			cutoff := time.Now().AddDate(0, 0, -w.cfg.Orders.AutoApproveDays)
			orders, err := w.orderRepo.FindAwaitingApprovalSince(cutoff)
			if err != nil {
				logger.WorkerLog("auto_approve", "find_awaiting", err)
				continue
			}

			for i := range orders {
				order := &orders[i]
				lifecycle.Normalize(order)
				if err := lifecycle.Approve(order, time.Now()); err != nil {
					continue
				}
				if err := w.orderRepo.Update(order); err != nil {
					logger.WorkerLog("auto_approve", "update_order", err)
					continue
				}
				if err := w.celebRepo.IncrementCompletedVideos(order.CelebrityID); err != nil {
					logger.WorkerLog("auto_approve", "bump_completed", err)
				}
				logger.Info("auto-approved order", "order", order.OrderNumber)
			}
		}
	}
}
