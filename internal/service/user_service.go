package service

import (
	"github.com/google/uuid"

	"daily-diet-be/internal/entities"
	"daily-diet-be/internal/models"
	"daily-diet-be/internal/repository"
)

// UserService defines the interface for user business logic
type UserService interface {
	List() ([]*entities.User, error)
	Create(req *models.CreateUserRequest, sessionID string) (*entities.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// List returns every user in storage
func (s *userService) List() ([]*entities.User, error) {
	return s.userRepo.FindAll()
}

// Create persists a new user with a server-generated id and the session token
// the caller resolved or issued for the request.
func (s *userService) Create(req *models.CreateUserRequest, sessionID string) (*entities.User, error) {
	user := &entities.User{
		ID:        uuid.NewString(),
		Email:     *req.Email,
		Password:  *req.Password,
		Name:      *req.Name,
		SessionID: &sessionID,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}
