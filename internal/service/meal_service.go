package service

import (
	"time"

	"github.com/google/uuid"

	"daily-diet-be/internal/entities"
	"daily-diet-be/internal/models"
	"daily-diet-be/internal/repository"
)

// MealService defines the interface for meal business logic. Every operation
// is scoped to the owning user; a meal is never visible outside its owner.
type MealService interface {
	ResolveUser(sessionID string) (*entities.User, error)
	List(userID string) ([]*entities.Meal, error)
	Get(userID, id string) (*entities.Meal, error)
	Create(userID string, req *models.CreateMealRequest) (*entities.Meal, error)
	Update(userID, id string, req *models.UpdateMealRequest) error
	Delete(userID, id string) error
}

type mealService struct {
	mealRepo repository.MealRepository
	userRepo repository.UserRepository
}

// NewMealService creates a new meal service
func NewMealService(mealRepo repository.MealRepository, userRepo repository.UserRepository) MealService {
	return &mealService{
		mealRepo: mealRepo,
		userRepo: userRepo,
	}
}

// ResolveUser maps a session token to its owning user. The middleware only
// checks that the cookie exists; the token may still belong to nobody, in
// which case repository.ErrUserNotFound is returned.
func (s *mealService) ResolveUser(sessionID string) (*entities.User, error) {
	return s.userRepo.FindBySessionID(sessionID)
}

// List returns all meals owned by the user
func (s *mealService) List(userID string) ([]*entities.Meal, error) {
	return s.mealRepo.FindByUserID(userID)
}

// Get returns the user's meal with the given id, or nil when none matches
func (s *mealService) Get(userID, id string) (*entities.Meal, error) {
	return s.mealRepo.FindByID(userID, id)
}

// Create persists a new meal with a server-generated id. The meal date is
// always the server time at insertion, never client-supplied.
func (s *mealService) Create(userID string, req *models.CreateMealRequest) (*entities.Meal, error) {
	meal := &entities.Meal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        *req.Name,
		Description: *req.Description,
		Date:        time.Now().UTC(),
		IsInTheDiet: *req.IsInTheDiet,
	}

	if err := s.mealRepo.Create(meal); err != nil {
		return nil, err
	}

	return meal, nil
}

// Update applies a partial update to the user's meal. Fields the client left
// out stay at their stored values.
func (s *mealService) Update(userID, id string, req *models.UpdateMealRequest) error {
	fields := &repository.MealUpdate{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		IsInTheDiet: req.IsInTheDiet,
	}

	return s.mealRepo.Update(userID, id, fields)
}

// Delete removes the user's meal with the given id
func (s *mealService) Delete(userID, id string) error {
	return s.mealRepo.Delete(userID, id)
}
