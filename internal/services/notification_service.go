package services

import (
	"errors"

	"shoutout_backend/internal/models"
	"shoutout_backend/internal/repositories"
	"shoutout_backend/internal/services/dto"
	"shoutout_backend/pkg/apperrors"
)

type NotificationService interface {
	List(userID string, unreadOnly bool, page, limit int) ([]dto.NotificationDTO, models.Pagination, error)
	UnreadCount(userID string) (int64, error)
	MarkRead(userID, notificationID string) error
	MarkAllRead(userID string) error
}

type notificationService struct {
	notifRepo repositories.NotificationRepository
}

func NewNotificationService(notifRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notifRepo: notifRepo}
}

func (s *notificationService) List(userID string, unreadOnly bool, page, limit int) ([]dto.NotificationDTO, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := s.notifRepo.FindForUser(userID, unreadOnly, page, limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	out := make([]dto.NotificationDTO, 0, len(items))
	for i := range items {
		out = append(out, dto.NotificationToDTO(&items[i]))
	}
	return out, buildPagination(page, limit, total), nil
}

func (s *notificationService) UnreadCount(userID string) (int64, error) {
	return s.notifRepo.CountUnread(userID)
}

func (s *notificationService) MarkRead(userID, notificationID string) error {
	if err := s.notifRepo.MarkRead(userID, notificationID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.NewNotFoundError("notification", "Notification not found")
		}
		return err
	}
	return nil
}

func (s *notificationService) MarkAllRead(userID string) error {
	return s.notifRepo.MarkAllRead(userID)
}
