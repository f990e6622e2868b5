package services

import (
	"errors"

	"shoutout_backend/internal/models"
	"shoutout_backend/internal/repositories"
	"shoutout_backend/internal/services/dto"
	"shoutout_backend/pkg/apperrors"
)

type SupportService interface {
	Submit(req *dto.CreateSupportTicketRequest) (*dto.SupportTicketDTO, error)
	List(status string, page, limit int) ([]dto.SupportTicketDTO, models.Pagination, error)
	Close(ticketID string) error
}

type supportService struct {
	supportRepo repositories.SupportRepository
}

func NewSupportService(supportRepo repositories.SupportRepository) SupportService {
	return &supportService{supportRepo: supportRepo}
}

func (s *supportService) Submit(req *dto.CreateSupportTicketRequest) (*dto.SupportTicketDTO, error) {
	ticket := &models.SupportTicket{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.SupportTicketOpen,
	}
	if err := s.supportRepo.Create(ticket); err != nil {
		return nil, err
	}
	return toTicketDTO(ticket), nil
}

func (s *supportService) List(status string, page, limit int) ([]dto.SupportTicketDTO, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	tickets, total, err := s.supportRepo.FindAll(status, page, limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	out := make([]dto.SupportTicketDTO, 0, len(tickets))
	for i := range tickets {
		out = append(out, *toTicketDTO(&tickets[i]))
	}
	return out, buildPagination(page, limit, total), nil
}

func (s *supportService) Close(ticketID string) error {
	if err := s.supportRepo.UpdateStatus(ticketID, models.SupportTicketClosed); err != nil {
		if errors.Is(err, repositories.ErrSupportTicketNotFound) {
			return apperrors.NewNotFoundError("support", "Support ticket not found")
		}
		return err
	}
	return nil
}

func toTicketDTO(t *models.SupportTicket) *dto.SupportTicketDTO {
	return &dto.SupportTicketDTO{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Subject:   t.Subject,
		Message:   t.Message,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}
