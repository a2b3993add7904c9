package service

import (
	"errors"

	"reviewhub/internal/httpapi/authz"
	"reviewhub/internal/httpapi/dto"
	"reviewhub/internal/httpapi/models"
	"reviewhub/internal/httpapi/repository"

	"gorm.io/gorm"
)

type UserService interface {
	GetUser(userID string) (*dto.UserResponse, error)
	ListUsers(page, pageSize int) (*dto.PaginatedUserResponse, error)
	UpdateUser(targetUserID string, requester *models.User, update dto.UpdateUserDTO) (*dto.UserResponse, error)
	DeleteUser(targetUserID string, requester *models.User) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return dto.FromModelToUserResponse(user), nil
}

func (s *userService) ListUsers(page, pageSize int) (*dto.PaginatedUserResponse, error) {
	users, total, err := s.userRepo.GetAll(page, pageSize)
	if err != nil {
		return nil, err
	}

	userResponses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		userResponses = append(userResponses, *dto.FromModelToUserResponse(&user))
	}

	return dto.NewPaginatedUserResponse(userResponses, int(total), page, pageSize), nil
}

// UpdateUser applies the provided profile fields. Only the user themselves
// or an admin may edit an account.
func (s *userService) UpdateUser(targetUserID string, requester *models.User, update dto.UpdateUserDTO) (*dto.UserResponse, error) {
	if !authz.SelfOrAdmin(requester, targetUserID) {
		return nil, ErrNotOwner
	}

	user, err := s.userRepo.FindByID(targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	usernameChanged := false
	if update.Username != nil {
		user.Username = *update.Username
		usernameChanged = true
	}
	if update.Email != nil {
		user.Email = *update.Email
	}

	if err := s.userRepo.Update(user); err != nil {
		if repository.IsUniqueViolation(err) {
			if usernameChanged {
				return nil, ErrNameInUse
			}
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	return dto.FromModelToUserResponse(user), nil
}

// DeleteUser removes an account and everything it owns: reviews, likes,
// unlikes, comments and refresh tokens all cascade. Only the user themselves
// or an admin may do this.
func (s *userService) DeleteUser(targetUserID string, requester *models.User) error {
	if !authz.SelfOrAdmin(requester, targetUserID) {
		return ErrNotOwner
	}

	if err := s.userRepo.Delete(targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}
