package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"dietlog-be/internal/entities"
	"dietlog-be/internal/models"
	"dietlog-be/internal/repository"
)

// ErrNoSession is returned when a session token resolves to no user.
var ErrNoSession = errors.New("no user for session")

// UserService defines the interface for user business logic
type UserService interface {
	Signup(req *models.SignupRequest, sessionID string) (*entities.User, error)
	ResolveSession(token string) (*entities.User, error)
	ListUsers() ([]*entities.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Signup creates a new user account correlated to the given session
// token. The duplicate-email check is the insert itself, so concurrent
// signups with the same email cannot both succeed.
func (s *userService) Signup(req *models.SignupRequest, sessionID string) (*entities.User, error) {
	user, err := s.userRepo.Create(uuid.New().String(), req.Name, req.Email, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// ResolveSession maps a session token to its user row
func (s *userService) ResolveSession(token string) (*entities.User, error) {
	user, err := s.userRepo.FindBySessionID(token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	return user, nil
}

// ListUsers returns every user row
func (s *userService) ListUsers() ([]*entities.User, error) {
	return s.userRepo.List()
}
