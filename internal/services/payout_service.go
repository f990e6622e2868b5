package services

import (
	"shoutout_backend/internal/repositories"
	"shoutout_backend/internal/services/dto"
	"shoutout_backend/pkg/apperrors"
)

type PayoutService interface {
	// Earnings returns a celebrity's payout dashboard: totals plus a
	// page of completed-order lines.
	Earnings(celebrityUserID string, page, limit int) (*dto.EarningsResponse, error)
}

type payoutService struct {
	payoutRepo repositories.PayoutRepository
	celebRepo  repositories.CelebrityRepository
}

func NewPayoutService(payoutRepo repositories.PayoutRepository, celebRepo repositories.CelebrityRepository) PayoutService {
	return &payoutService{payoutRepo: payoutRepo, celebRepo: celebRepo}
}

func (s *payoutService) Earnings(celebrityUserID string, page, limit int) (*dto.EarningsResponse, error) {
	celeb, err := s.celebRepo.FindByUserID(celebrityUserID)
	if err != nil {
		return nil, apperrors.CelebrityNotFound(celebrityUserID)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	summary, err := s.payoutRepo.GetEarningsSummary(celeb.ID)
	if err != nil {
		return nil, err
	}
	lines, total, err := s.payoutRepo.GetEarningsLines(celeb.ID, page, limit)
	if err != nil {
		return nil, err
	}

	return &dto.EarningsResponse{
		Summary: *summary,
		Lines:   lines,
		Paging:  buildPagination(page, limit, total),
	}, nil
}
