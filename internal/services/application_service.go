package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shoutout_backend/internal/auth"
	"shoutout_backend/internal/email"
	"shoutout_backend/internal/logger"
	"shoutout_backend/internal/models"
	"shoutout_backend/internal/repositories"
	"shoutout_backend/internal/services/dto"
	"shoutout_backend/pkg/apperrors"
)

type ApplicationService interface {
	Submit(req *dto.CreateApplicationRequest) (*dto.ApplicationDTO, error)
	Get(id string) (*dto.ApplicationDTO, error)
	List(filter repositories.ApplicationFilter) ([]dto.ApplicationDTO, models.Pagination, error)
	Stats() (*repositories.ApplicationStats, error)
	Review(reviewerID, applicationID string, req *dto.ReviewApplicationRequest) (*dto.ApplicationDTO, error)
}

type applicationService struct {
	appRepo   repositories.ApplicationRepository
	userRepo  repositories.UserRepository
	celebRepo repositories.CelebrityRepository
	email     email.Provider
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	celebRepo repositories.CelebrityRepository,
	emailProvider email.Provider,
) ApplicationService {
	return &applicationService{
		appRepo:   appRepo,
		userRepo:  userRepo,
		celebRepo: celebRepo,
		email:     emailProvider,
	}
}

func (s *applicationService) Submit(req *dto.CreateApplicationRequest) (*dto.ApplicationDTO, error) {
	price, err := decimal.NewFromString(req.RequestedPrice)
	if err != nil || !price.IsPositive() {
		return nil, apperrors.NewBadRequestError("Requested price must be a positive number")
	}

	app := &models.Application{
		Name:           req.Name,
		Email:          strings.ToLower(req.Email),
		Category:       req.Category,
		Bio:            req.Bio,
		SocialLinks:    models.StringList(req.SocialLinks),
		FollowerCount:  req.FollowerCount,
		RequestedPrice: price,
		HasIDDocument:  req.HasIDDocument,
		HasSocialProof: req.HasSocialProof,
		Status:         models.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(app); err != nil {
		return nil, err
	}
	out := dto.ApplicationToDTO(app)
	return &out, nil
}

func (s *applicationService) Get(id string) (*dto.ApplicationDTO, error) {
	app, err := s.findApplication(id)
	if err != nil {
		return nil, err
	}
	out := dto.ApplicationToDTO(app)
	return &out, nil
}

func (s *applicationService) List(filter repositories.ApplicationFilter) ([]dto.ApplicationDTO, models.Pagination, error) {
	apps, total, err := s.appRepo.FindWithFilter(filter)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	out := make([]dto.ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, dto.ApplicationToDTO(&apps[i]))
	}
	return out, buildPagination(page, limit, total), nil
}

func (s *applicationService) Stats() (*repositories.ApplicationStats, error) {
	return s.appRepo.GetStats()
}

func (s *applicationService) Review(reviewerID, applicationID string, req *dto.ReviewApplicationRequest) (*dto.ApplicationDTO, error) {
	app, err := s.findApplication(applicationID)
	if err != nil {
		return nil, err
	}
	if app.Reviewed() {
		return nil, apperrors.ApplicationAlreadyReviewed(applicationID)
	}

	now := time.Now()
	app.Status = models.ApplicationStatus(req.Decision)
	app.ReviewNotes = req.Notes
	app.ReviewerID = reviewerID
	if app.Reviewed() {
		app.ReviewedAt = &now
	}

	if app.Status == models.ApplicationStatusApproved {
		if err := s.provisionCelebrity(app); err != nil {
			return nil, err
		}
	}

	if err := s.appRepo.Update(app); err != nil {
		return nil, err
	}

	go s.sendDecisionMail(app)

	out := dto.ApplicationToDTO(app)
	return &out, nil
}

// provisionCelebrity creates the celebrity user and public profile for
// an approved application. An existing account with the same email is
// upgraded rather than duplicated.
func (s *applicationService) provisionCelebrity(app *models.Application) error {
	user, err := s.userRepo.FindByEmail(app.Email)
	switch {
	case err == nil:
		if user.Role != models.UserRoleCelebrity {
			user.Role = models.UserRoleCelebrity
			if err := s.userRepo.Update(user); err != nil {
				return err
			}
		}
	case errors.Is(err, repositories.ErrUserNotFound):
		tempPassword, genErr := generateSecureToken()
		if genErr != nil {
			return genErr
		}
		hash, hashErr := auth.HashPassword(tempPassword[:16])
		if hashErr != nil {
			return hashErr
		}
		user = &models.User{
			Email:        app.Email,
			PasswordHash: hash,
			Name:         app.Name,
			Role:         models.UserRoleCelebrity,
			Status:       models.UserStatusActive,
		}
		if err := s.userRepo.Create(user); err != nil {
			return err
		}
	default:
		return err
	}

	celeb := &models.Celebrity{
		UserID:      user.ID,
		DisplayName: app.Name,
		Slug:        slugify(app.Name),
		Category:    app.Category,
		Bio:         app.Bio,
		Price:       app.RequestedPrice,
	}
	if err := s.celebRepo.Create(celeb); err != nil {
		if errors.Is(err, repositories.ErrCelebrityAlreadyExists) {
			return nil
		}
		return err
	}
	return nil
}

func (s *applicationService) sendDecisionMail(app *models.Application) {
	err := s.email.SendTemplate([]string{app.Email}, "Your creator application", "application_decision", email.TemplateData{
		"Name":   app.Name,
		"Status": string(app.Status),
		"Notes":  app.ReviewNotes,
	})
	if err != nil {
		logger.WithError(err).Warn("application decision email failed", "application_id", app.ID)
	}
}

func (s *applicationService) findApplication(id string) (*models.Application, error) {
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ApplicationNotFound(id)
		}
		return nil, err
	}
	return app, nil
}

// slugify turns a display name into a URL slug. Collisions are caught
// by the unique index and surfaced to the reviewer.
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
