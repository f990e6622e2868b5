package repositories

import (
	"errors"

	"gorm.io/gorm"

	"shoutout_backend/internal/models"
)

var ErrSupportTicketNotFound = errors.New("support ticket not found")

type SupportRepository interface {
	Create(ticket *models.SupportTicket) error
	FindAll(status string, page, limit int) ([]models.SupportTicket, int64, error)
	UpdateStatus(id, status string) error
}

type SupportRepositoryImpl struct {
	db *gorm.DB
}

func NewSupportRepository(db *gorm.DB) SupportRepository {
	return &SupportRepositoryImpl{db: db}
}

func (r *SupportRepositoryImpl) Create(ticket *models.SupportTicket) error {
	return r.db.Create(ticket).Error
}

func (r *SupportRepositoryImpl) FindAll(status string, page, limit int) ([]models.SupportTicket, int64, error) {
	query := r.db.Model(&models.SupportTicket{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var tickets []models.SupportTicket
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tickets).Error
	return tickets, total, err
}

func (r *SupportRepositoryImpl) UpdateStatus(id, status string) error {
	result := r.db.Model(&models.SupportTicket{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSupportTicketNotFound
	}
	return nil
}
