package repositories

import (
	"errors"

	"gorm.io/gorm"

	"shoutout_backend/internal/models"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationFilter struct {
	Status models.ApplicationStatus
	Page   int
	Limit  int
}

// ApplicationStats is the header block of the admin review queue.
type ApplicationStats struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	UnderReview int64 `json:"underReview"`
	Approved    int64 `json:"approved"`
	Rejected    int64 `json:"rejected"`
}

type ApplicationRepository interface {
	Create(application *models.Application) error
	Update(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindWithFilter(filter ApplicationFilter) ([]models.Application, int64, error)
	GetStats() (*ApplicationStats, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	return r.db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) Update(application *models.Application) error {
	return r.db.Save(application).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	if err := r.db.First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindWithFilter(filter ApplicationFilter) ([]models.Application, int64, error) {
	query := r.db.Model(&models.Application{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	var applications []models.Application
	err := query.Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&applications).Error
	return applications, total, err
}

func (r *ApplicationRepositoryImpl) GetStats() (*ApplicationStats, error) {
	stats := &ApplicationStats{}

	if err := r.db.Model(&models.Application{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	counts := []struct {
		status models.ApplicationStatus
		dest   *int64
	}{
		{models.ApplicationStatusPending, &stats.Pending},
		{models.ApplicationStatusUnderReview, &stats.UnderReview},
		{models.ApplicationStatusApproved, &stats.Approved},
		{models.ApplicationStatusRejected, &stats.Rejected},
	}
	for _, c := range counts {
		if err := r.db.Model(&models.Application{}).Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}
