package service

import (
	"fmt"

	"github.com/SadatRiyad/BB-Vote-Server/entity"
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"
	"github.com/SadatRiyad/BB-Vote-Server/repository"
)

// UserService interface defines account operations
type UserService interface {
	GetByID(id int) (*entity.UserResponse, error)
	GetByEmail(email string) (*entity.UserResponse, error)
	GetUsers(page, pageSize int, search string) (*entity.UsersListResponse, error)
	IsAdmin(email string) (bool, error)
	MakeAdmin(id int) error
	SetPremium(id int, premium bool) error
	Delete(id int) error
}

// userService implements UserService interface
type userService struct {
	userRepo repository.UserRepository
	logger   *logger.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetByID retrieves a user by ID
func (s *userService) GetByID(id int) (*entity.UserResponse, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		s.logger.Errorw("Failed to get user", "user_id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// GetByEmail retrieves a user by email address
func (s *userService) GetByEmail(email string) (*entity.UserResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		s.logger.Errorw("Failed to get user", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// GetUsers retrieves a paginated list of users with optional search on
// name or email
func (s *userService) GetUsers(page, pageSize int, search string) (*entity.UsersListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	users, total, err := s.userRepo.List(page, pageSize, search)
	if err != nil {
		s.logger.Errorw("Failed to list users", "page", page, "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]entity.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}

	totalPages := (total + pageSize - 1) / pageSize

	return &entity.UsersListResponse{
		Users:      responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// IsAdmin reports whether the account currently holds the admin role. The
// role is re-read from storage so a revoked admin loses access immediately,
// regardless of what their token claims say.
func (s *userService) IsAdmin(email string) (bool, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		s.logger.Errorw("Failed to get user for admin check", "email", email, "error", err)
		return false, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return false, entity.ErrUserNotFound
	}
	return user.IsAdmin(), nil
}

// MakeAdmin grants the admin role to a user
func (s *userService) MakeAdmin(id int) error {
	if err := s.userRepo.SetRole(id, entity.RoleAdmin); err != nil {
		s.logger.Errorw("Failed to grant admin role", "user_id", id, "error", err)
		return err
	}
	s.logger.Infow("Admin role granted", "user_id", id)
	return nil
}

// SetPremium flips the premium flag on a user
func (s *userService) SetPremium(id int, premium bool) error {
	if err := s.userRepo.SetPremium(id, premium); err != nil {
		s.logger.Errorw("Failed to update premium flag", "user_id", id, "error", err)
		return err
	}
	s.logger.Infow("Premium flag updated", "user_id", id, "premium", premium)
	return nil
}

// Delete removes a user account
func (s *userService) Delete(id int) error {
	if err := s.userRepo.Delete(id); err != nil {
		s.logger.Errorw("Failed to delete user", "user_id", id, "error", err)
		return err
	}
	s.logger.Infow("User deleted", "user_id", id)
	return nil
}

func toUserResponse(user *entity.User) entity.UserResponse {
	return entity.UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Role:         user.Role,
		IsPremium:    user.IsPremium,
		RegisteredAt: user.RegisteredAt,
		LastLoginAt:  user.LastLoginAt,
		IsActive:     user.IsActive,
	}
}
