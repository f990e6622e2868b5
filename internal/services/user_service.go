package services

import (
	"shoutout_backend/internal/models"
	"shoutout_backend/internal/repositories"
	"shoutout_backend/internal/services/dto"
	"shoutout_backend/pkg/apperrors"
)

// UserService covers admin user management. Self-service profile
// operations live on AuthService.
type UserService interface {
	List(filter repositories.UserFilter) ([]dto.UserDTO, models.Pagination, error)
	Get(userID string) (*dto.UserDTO, error)
	Stats() (*repositories.UserStats, error)
	SetStatus(adminID, userID string, status models.UserStatus) error
	Delete(adminID, userID string) error
}

type userService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.RefreshTokenRepository
}

func NewUserService(userRepo repositories.UserRepository, tokenRepo repositories.RefreshTokenRepository) UserService {
	return &userService{userRepo: userRepo, tokenRepo: tokenRepo}
}

func (s *userService) List(filter repositories.UserFilter) ([]dto.UserDTO, models.Pagination, error) {
	users, total, err := s.userRepo.FindWithFilter(filter)
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

	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, dto.UserToDTO(&users[i]))
	}
	return out, buildPagination(page, limit, total), nil
}

func (s *userService) Get(userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	out := dto.UserToDTO(user)
	return &out, nil
}

func (s *userService) Stats() (*repositories.UserStats, error) {
	return s.userRepo.GetUserStats()
}

func (s *userService) SetStatus(adminID, userID string, status models.UserStatus) error {
	if adminID == userID {
		return apperrors.NewConflictError("user", "Admins cannot change their own status")
	}
	if err := s.userRepo.UpdateStatus(userID, status); err != nil {
		return err
	}
	if status == models.UserStatusSuspended {
		// Kill active sessions along with the account.
		return s.tokenRepo.DeleteForUser(userID)
	}
	return nil
}

func (s *userService) Delete(adminID, userID string) error {
	if adminID == userID {
		return apperrors.NewConflictError("user", "Admins cannot delete their own account")
	}
	if err := s.tokenRepo.DeleteForUser(userID); err != nil {
		return err
	}
	return s.userRepo.Delete(userID)
}
