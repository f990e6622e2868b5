package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"shoutout_backend/internal/models"
)

var (
	ErrCelebrityNotFound      = errors.New("celebrity not found")
	ErrCelebrityAlreadyExists = errors.New("celebrity profile already exists for this user")
)

// CelebritySearchCriteria is the repository form of the discovery
// query. Zero values mean "no filter"; the service layer maps the
// wire-level defaults ("All", full price range) onto them.
type CelebritySearchCriteria struct {
	Category     string
	Search       string
	SortBy       string
	MinPrice     *int
	MaxPrice     *int
	Availability models.Availability
	FeaturedOnly bool
	Page         int
	Limit        int
}

type CelebrityRepository interface {
	Create(celebrity *models.Celebrity) error
	Update(celebrity *models.Celebrity) error
	FindByID(id string) (*models.Celebrity, error)
	FindBySlug(slug string) (*models.Celebrity, error)
	FindByUserID(userID string) (*models.Celebrity, error)
	Search(criteria CelebritySearchCriteria) ([]models.Celebrity, int64, error)
	ListCategories() ([]string, error)
	IncrementCompletedVideos(id string) error
}

type CelebrityRepositoryImpl struct {
	db *gorm.DB
}

func NewCelebrityRepository(db *gorm.DB) CelebrityRepository {
	return &CelebrityRepositoryImpl{db: db}
}

func (r *CelebrityRepositoryImpl) Create(celebrity *models.Celebrity) error {
	var existing models.Celebrity
	if err := r.db.Where("user_id = ?", celebrity.UserID).First(&existing).Error; err == nil {
		return ErrCelebrityAlreadyExists
	}
	celebrity.ClampRating()
	return r.db.Create(celebrity).Error
}

func (r *CelebrityRepositoryImpl) Update(celebrity *models.Celebrity) error {
	celebrity.ClampRating()
	return r.db.Save(celebrity).Error
}

func (r *CelebrityRepositoryImpl) FindByID(id string) (*models.Celebrity, error) {
	return r.findOne("id = ?", id)
}

func (r *CelebrityRepositoryImpl) FindBySlug(slug string) (*models.Celebrity, error) {
	return r.findOne("slug = ?", slug)
}

func (r *CelebrityRepositoryImpl) FindByUserID(userID string) (*models.Celebrity, error) {
	return r.findOne("user_id = ?", userID)
}

func (r *CelebrityRepositoryImpl) findOne(query string, arg interface{}) (*models.Celebrity, error) {
	var celebrity models.Celebrity
	if err := r.db.First(&celebrity, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCelebrityNotFound
		}
		return nil, err
	}
	return &celebrity, nil
}

// Search applies the discovery filters and sort, then pages the result.
func (r *CelebrityRepositoryImpl) Search(criteria CelebritySearchCriteria) ([]models.Celebrity, int64, error) {
	query := r.db.Model(&models.Celebrity{})

	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.Search != "" {
		like := "%" + strings.ToLower(criteria.Search) + "%"
		query = query.Where(
			"LOWER(display_name) LIKE ? OR LOWER(bio) LIKE ? OR LOWER(tags) LIKE ?",
			like, like, like,
		)
	}
	if criteria.MinPrice != nil {
		query = query.Where("price >= ?", *criteria.MinPrice)
	}
	if criteria.MaxPrice != nil {
		query = query.Where("price <= ?", *criteria.MaxPrice)
	}
	if criteria.Availability != "" {
		query = query.Where("availability = ?", criteria.Availability)
	}
	if criteria.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderClause(criteria.SortBy))

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	limit := criteria.Limit
	if limit < 1 {
		limit = 12
	}

	var celebrities []models.Celebrity
	err := query.Offset((page - 1) * limit).Limit(limit).Find(&celebrities).Error
	return celebrities, total, err
}

// orderClause maps a sort key to SQL. Unknown keys fall back to the
// featured ordering; the closed key set is enforced upstream by
// request validation.
func orderClause(sortBy string) string {
	switch sortBy {
	case "price_asc":
		return "price ASC, display_name ASC"
	case "price_desc":
		return "price DESC, display_name ASC"
	case "rating":
		return "rating DESC, review_count DESC"
	case "response_time":
		return "response_hours ASC, rating DESC"
	case "popular":
		return "completed_videos DESC, review_count DESC"
	default: // featured
		return "is_featured DESC, rating DESC"
	}
}

func (r *CelebrityRepositoryImpl) ListCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Celebrity{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *CelebrityRepositoryImpl) IncrementCompletedVideos(id string) error {
	return r.db.Model(&models.Celebrity{}).Where("id = ?", id).
		UpdateColumn("completed_videos", gorm.Expr("completed_videos + 1")).Error
}
