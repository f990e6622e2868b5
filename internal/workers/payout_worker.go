package workers

import (
	"context"
	"time"

	"shoutout_backend/internal/logger"
	"shoutout_backend/internal/repositories"
)

// PayoutWorker keeps the earnings data the payout dashboard reads
// consistent: denormalized tip totals and expired sessions.
type PayoutWorker struct {
	orderRepo repositories.OrderRepository
	tokenRepo repositories.RefreshTokenRepository
}

func NewPayoutWorker(orderRepo repositories.OrderRepository, tokenRepo repositories.RefreshTokenRepository) *PayoutWorker {
	return &PayoutWorker{orderRepo: orderRepo, tokenRepo: tokenRepo}
}

func (w *PayoutWorker) Start(ctx context.Context) {
	go w.reconcile(ctx)
}

func (w *PayoutWorker) reconcile(ctx context.Context) {
	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("payout worker stopped")
			return
		case <-ticker.C:
			fixed, err := w.orderRepo.ReconcileTipTotals()
			logger.WorkerLog("payout", "reconcile_tip_totals", err)
			if err == nil && fixed > 0 {
				logger.Warn("tip totals drifted and were reconciled", "rows", fixed)
			}

			cleaned, err := w.tokenRepo.CleanExpired()
			logger.WorkerLog("payout", "clean_expired_tokens", err)
			if err == nil && cleaned > 0 {
				logger.Info("expired refresh tokens removed", "count", cleaned)
			}
		}
	}
}
