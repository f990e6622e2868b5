package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"shoutout_backend/internal/models"
	"shoutout_backend/internal/repositories"
	"shoutout_backend/internal/services/dto"
	"shoutout_backend/pkg/apperrors"
	"shoutout_backend/pkg/discovery"
)

type CelebrityService interface {
	Search(req *models.SearchCelebritiesRequest) (*dto.SearchResultDTO, error)
	GetBySlug(slug string) (*dto.CelebrityDTO, error)
	GetByID(id string) (*dto.CelebrityDTO, error)
	ListCategories() ([]string, error)
	ListFeatured(limit int) ([]dto.CelebrityDTO, error)

	// Celebrity self-service
	GetOwnProfile(userID string) (*dto.CelebrityDTO, error)
	UpdateOwnProfile(userID string, req *dto.UpdateCelebrityRequest) (*dto.CelebrityDTO, error)

	// Admin
	AdminUpdate(celebrityID string, req *dto.AdminUpdateCelebrityRequest) (*dto.CelebrityDTO, error)
}

type celebrityService struct {
	celebRepo repositories.CelebrityRepository
}

func NewCelebrityService(celebRepo repositories.CelebrityRepository) CelebrityService {
	return &celebrityService{celebRepo: celebRepo}
}

// ---------------- Discovery ----------------

func (s *celebrityService) Search(req *models.SearchCelebritiesRequest) (*dto.SearchResultDTO, error) {
	criteria := searchCriteria(req)

	items, total, err := s.celebRepo.Search(criteria)
	if err != nil {
		return nil, err
	}

	categories, err := s.celebRepo.ListCategories()
	if err != nil {
		return nil, err
	}

	return &dto.SearchResultDTO{
		Celebrities: dto.CelebritiesToDTO(items),
		Categories:  append([]string{discovery.DefaultCategory}, categories...),
		Pagination:  buildPagination(criteria.Page, criteria.Limit, total),
	}, nil
}

// searchCriteria maps wire-level defaults onto repository zero values:
// "All" selectors and the full price range stop being filters.
func searchCriteria(req *models.SearchCelebritiesRequest) repositories.CelebritySearchCriteria {
	c := repositories.CelebritySearchCriteria{
		Search: strings.TrimSpace(req.Search),
		SortBy: req.SortBy,
		Page:   req.Page,
		Limit:  req.Limit,
	}

	if req.Category != "" && req.Category != discovery.DefaultCategory {
		c.Category = req.Category
	}
	if req.Availability != "" && req.Availability != discovery.DefaultAvailability {
		c.Availability = models.Availability(req.Availability)
	}
	if req.MinPrice != nil && *req.MinPrice > discovery.DefaultMinPrice {
		c.MinPrice = req.MinPrice
	}
	if req.MaxPrice != nil && *req.MaxPrice < discovery.DefaultMaxPrice {
		c.MaxPrice = req.MaxPrice
	}
	if c.SortBy == "" {
		c.SortBy = discovery.SortFeatured
	}
	if c.Page < 1 {
		c.Page = 1
	}
	if c.Limit < 1 {
		c.Limit = discovery.DefaultLimit
	}
	return c
}

func (s *celebrityService) GetBySlug(slug string) (*dto.CelebrityDTO, error) {
	celeb, err := s.celebRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrCelebrityNotFound) {
			return nil, apperrors.CelebrityNotFound(slug)
		}
		return nil, err
	}
	out := dto.CelebrityToDTO(celeb)
	return &out, nil
}

func (s *celebrityService) GetByID(id string) (*dto.CelebrityDTO, error) {
	celeb, err := s.celebRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCelebrityNotFound) {
			return nil, apperrors.CelebrityNotFound(id)
		}
		return nil, err
	}
	out := dto.CelebrityToDTO(celeb)
	return &out, nil
}

func (s *celebrityService) ListCategories() ([]string, error) {
	categories, err := s.celebRepo.ListCategories()
	if err != nil {
		return nil, err
	}
	return append([]string{discovery.DefaultCategory}, categories...), nil
}

func (s *celebrityService) ListFeatured(limit int) ([]dto.CelebrityDTO, error) {
	if limit < 1 || limit > 24 {
		limit = 8
	}
	items, _, err := s.celebRepo.Search(repositories.CelebritySearchCriteria{
		FeaturedOnly: true,
		SortBy:       discovery.SortRating,
		Page:         1,
		Limit:        limit,
	})
	if err != nil {
		return nil, err
	}
	return dto.CelebritiesToDTO(items), nil
}

// ---------------- Self-Service ----------------

func (s *celebrityService) GetOwnProfile(userID string) (*dto.CelebrityDTO, error) {
	celeb, err := s.celebRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCelebrityNotFound) {
			return nil, apperrors.CelebrityNotFound(userID)
		}
		return nil, err
	}
	out := dto.CelebrityToDTO(celeb)
	return &out, nil
}

func (s *celebrityService) UpdateOwnProfile(userID string, req *dto.UpdateCelebrityRequest) (*dto.CelebrityDTO, error) {
	celeb, err := s.celebRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCelebrityNotFound) {
			return nil, apperrors.CelebrityNotFound(userID)
		}
		return nil, err
	}

	if err := applyCelebrityPatch(celeb, req); err != nil {
		return nil, err
	}
	if err := s.celebRepo.Update(celeb); err != nil {
		return nil, err
	}
	out := dto.CelebrityToDTO(celeb)
	return &out, nil
}

// ---------------- Admin ----------------

func (s *celebrityService) AdminUpdate(celebrityID string, req *dto.AdminUpdateCelebrityRequest) (*dto.CelebrityDTO, error) {
	celeb, err := s.celebRepo.FindByID(celebrityID)
	if err != nil {
		if errors.Is(err, repositories.ErrCelebrityNotFound) {
			return nil, apperrors.CelebrityNotFound(celebrityID)
		}
		return nil, err
	}

	if err := applyCelebrityPatch(celeb, &req.UpdateCelebrityRequest); err != nil {
		return nil, err
	}
	if req.IsVerified != nil {
		celeb.IsVerified = *req.IsVerified
	}
	if req.IsFeatured != nil {
		celeb.IsFeatured = *req.IsFeatured
	}

	if err := s.celebRepo.Update(celeb); err != nil {
		return nil, err
	}
	out := dto.CelebrityToDTO(celeb)
	return &out, nil
}

func applyCelebrityPatch(celeb *models.Celebrity, req *dto.UpdateCelebrityRequest) error {
	if req.DisplayName != nil {
		celeb.DisplayName = *req.DisplayName
	}
	if req.Category != nil {
		celeb.Category = *req.Category
	}
	if req.Bio != nil {
		celeb.Bio = *req.Bio
	}
	if req.ImageURL != nil {
		celeb.ImageURL = *req.ImageURL
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			return apperrors.NewBadRequestError("Invalid price")
		}
		celeb.Price = price
	}
	if req.ResponseTime != nil {
		celeb.ResponseTime = *req.ResponseTime
		celeb.ResponseHours = responseHours(*req.ResponseTime)
	}
	if req.Availability != nil {
		celeb.Availability = models.Availability(*req.Availability)
	}
	if req.NextAvailable != nil {
		celeb.NextAvailable = *req.NextAvailable
	}
	if req.Tags != nil {
		celeb.Tags = models.StringList(req.Tags)
	}
	return nil
}

// responseHours derives the sortable form of a display response time.
func responseHours(display string) int {
	switch strings.ToLower(strings.TrimSpace(display)) {
	case "24hr", "24 hr", "1 day":
		return 24
	case "2 days":
		return 48
	case "3 days":
		return 72
	case "1 week", "7 days":
		return 168
	default:
		return 72
	}
}
