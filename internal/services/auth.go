package services

import (
	"fmt"

	"event-registration-platform/internal/models"
	"event-registration-platform/internal/utils"
)

// AuthService handles signup and login
type AuthService struct {
	userRepo UserRepository
}

// UserRepository interface for user data operations
type UserRepository interface {
	Create(req *models.UserCreateRequest, passwordHash string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Signup creates a new user account with a hashed password
func (s *AuthService) Signup(req *models.UserCreateRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.Create(req, hash)
}

// Login verifies credentials and returns the user. Invalid email and invalid
// password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, models.ErrUnauthorized
	}

	ok, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, models.ErrUnauthorized
	}

	return user, nil
}

// GetUser retrieves a user by ID (used by the auth middleware)
func (s *AuthService) GetUser(id int) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
