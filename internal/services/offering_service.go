package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"shoutout_backend/internal/models"
	"shoutout_backend/internal/repositories"
	"shoutout_backend/internal/services/dto"
	"shoutout_backend/pkg/apperrors"
)

type OfferingService interface {
	List(activeOnly bool) ([]dto.OfferingDTO, error)
	Create(req *dto.CreateOfferingRequest) (*dto.OfferingDTO, error)
	Update(id string, req *dto.UpdateOfferingRequest) (*dto.OfferingDTO, error)
	Delete(id string) error
}

type offeringService struct {
	offeringRepo repositories.OfferingRepository
}

func NewOfferingService(offeringRepo repositories.OfferingRepository) OfferingService {
	return &offeringService{offeringRepo: offeringRepo}
}

func (s *offeringService) List(activeOnly bool) ([]dto.OfferingDTO, error) {
	items, err := s.offeringRepo.FindAll(activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OfferingDTO, 0, len(items))
	for i := range items {
		out = append(out, dto.OfferingToDTO(&items[i]))
	}
	return out, nil
}

func (s *offeringService) Create(req *dto.CreateOfferingRequest) (*dto.OfferingDTO, error) {
	price, err := decimal.NewFromString(req.BasePrice)
	if err != nil || price.IsNegative() {
		return nil, apperrors.NewBadRequestError("Invalid base price")
	}

	offering := &models.ServiceOffering{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   price,
		IsActive:    true,
	}
	if req.IsActive != nil {
		offering.IsActive = *req.IsActive
	}

	if err := s.offeringRepo.Create(offering); err != nil {
		if errors.Is(err, repositories.ErrOfferingAlreadyExists) {
			return nil, apperrors.NewConflictError("offering", "An offering with this name already exists")
		}
		return nil, err
	}
	out := dto.OfferingToDTO(offering)
	return &out, nil
}

func (s *offeringService) Update(id string, req *dto.UpdateOfferingRequest) (*dto.OfferingDTO, error) {
	offering, err := s.offeringRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrOfferingNotFound) {
			return nil, apperrors.NewNotFoundError("offering", "Offering not found")
		}
		return nil, err
	}

	if req.Name != nil {
		offering.Name = *req.Name
	}
	if req.Description != nil {
		offering.Description = *req.Description
	}
	if req.BasePrice != nil {
		price, err := decimal.NewFromString(*req.BasePrice)
		if err != nil || price.IsNegative() {
			return nil, apperrors.NewBadRequestError("Invalid base price")
		}
		offering.BasePrice = price
	}
	if req.IsActive != nil {
		offering.IsActive = *req.IsActive
	}

	if err := s.offeringRepo.Update(offering); err != nil {
		return nil, err
	}
	out := dto.OfferingToDTO(offering)
	return &out, nil
}

func (s *offeringService) Delete(id string) error {
	if err := s.offeringRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrOfferingNotFound) {
			return apperrors.NewNotFoundError("offering", "Offering not found")
		}
		return err
	}
	return nil
}
