package repositories

import (
	"errors"

	"gorm.io/gorm"

	"shoutout_backend/internal/models"
)

var (
	ErrOfferingNotFound      = errors.New("service offering not found")
	ErrOfferingAlreadyExists = errors.New("service offering with this name already exists")
)

type OfferingRepository interface {
	Create(offering *models.ServiceOffering) error
	Update(offering *models.ServiceOffering) error
	Delete(id string) error
	FindByID(id string) (*models.ServiceOffering, error)
	FindAll(activeOnly bool) ([]models.ServiceOffering, error)
}

type OfferingRepositoryImpl struct {
	db *gorm.DB
}

func NewOfferingRepository(db *gorm.DB) OfferingRepository {
	return &OfferingRepositoryImpl{db: db}
}

func (r *OfferingRepositoryImpl) Create(offering *models.ServiceOffering) error {
	var existing models.ServiceOffering
	if err := r.db.Where("name = ?", offering.Name).First(&existing).Error; err == nil {
		return ErrOfferingAlreadyExists
	}
	return r.db.Create(offering).Error
}

func (r *OfferingRepositoryImpl) Update(offering *models.ServiceOffering) error {
	return r.db.Save(offering).Error
}

func (r *OfferingRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.ServiceOffering{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOfferingNotFound
	}
	return nil
}

func (r *OfferingRepositoryImpl) FindByID(id string) (*models.ServiceOffering, error) {
	var offering models.ServiceOffering
	if err := r.db.First(&offering, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferingNotFound
		}
		return nil, err
	}
	return &offering, nil
}

func (r *OfferingRepositoryImpl) FindAll(activeOnly bool) ([]models.ServiceOffering, error) {
	query := r.db.Model(&models.ServiceOffering{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var offerings []models.ServiceOffering
	err := query.Order("name ASC").Find(&offerings).Error
	return offerings, err
}
