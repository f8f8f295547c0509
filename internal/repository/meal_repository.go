package repository

import (
	"database/sql"
	"fmt"
	"time"

	"daily-diet-be/internal/entities"
)

// MealUpdate carries the fields of a partial meal update. A nil field means
// "keep the stored value".
type MealUpdate struct {
	Name        *string
	Description *string
	Date        *time.Time
	IsInTheDiet *bool
}

// MealRepository defines the interface for meal database operations
type MealRepository interface {
	Create(meal *entities.Meal) error
	FindByUserID(userID string) ([]*entities.Meal, error)
	FindByID(userID, id string) (*entities.Meal, error)
	Update(userID, id string, fields *MealUpdate) error
	Delete(userID, id string) error
}

type mealRepository struct {
	db *sql.DB
}

// NewMealRepository creates a new meal repository
func NewMealRepository(db *sql.DB) MealRepository {
	return &mealRepository{db: db}
}

// Create inserts a new meal into the database
func (r *mealRepository) Create(meal *entities.Meal) error {
	query := `
		INSERT INTO meals (id, user_id, name, description, date, is_in_the_diet)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(query,
		meal.ID,
		meal.UserID,
		meal.Name,
		meal.Description,
		meal.Date.UTC(),
		meal.IsInTheDiet,
	)
	if err != nil {
		return fmt.Errorf("failed to create meal: %w", err)
	}

	return nil
}

// FindByUserID returns all meals owned by a user
func (r *mealRepository) FindByUserID(userID string) ([]*entities.Meal, error) {
	query := `
		SELECT id, user_id, name, description, date, is_in_the_diet
		FROM meals
		WHERE user_id = $1
		ORDER BY date DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	defer rows.Close()

	var meals []*entities.Meal
	for rows.Next() {
		var meal entities.Meal
		err := rows.Scan(
			&meal.ID,
			&meal.UserID,
			&meal.Name,
			&meal.Description,
			&meal.Date,
			&meal.IsInTheDiet,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meal: %w", err)
		}
		meals = append(meals, &meal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meals: %w", err)
	}

	return meals, nil
}

// FindByID returns the meal matching both owner and id, or nil when no row
// matches. A missing meal is not an error.
func (r *mealRepository) FindByID(userID, id string) (*entities.Meal, error) {
	query := `
		SELECT id, user_id, name, description, date, is_in_the_diet
		FROM meals
		WHERE user_id = $1 AND id = $2
	`

	var meal entities.Meal
	err := r.db.QueryRow(query, userID, id).Scan(
		&meal.ID,
		&meal.UserID,
		&meal.Name,
		&meal.Description,
		&meal.Date,
		&meal.IsInTheDiet,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find meal: %w", err)
	}

	return &meal, nil
}

// Update applies a partial update to the meal matching owner and id. The
// statement always names all four columns; COALESCE keeps the stored value
// for fields that were not supplied. Matching no row is not an error.
func (r *mealRepository) Update(userID, id string, fields *MealUpdate) error {
	query := `
		UPDATE meals
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    date = COALESCE($3, date),
		    is_in_the_diet = COALESCE($4, is_in_the_diet)
		WHERE user_id = $5 AND id = $6
	`

	var date interface{}
	if fields.Date != nil {
		utcTime := fields.Date.UTC()
		date = utcTime
	}

	_, err := r.db.Exec(query, fields.Name, fields.Description, date, fields.IsInTheDiet, userID, id)
	if err != nil {
		return fmt.Errorf("failed to update meal: %w", err)
	}

	return nil
}

// Delete removes the meal matching owner and id. Matching no row is not an
// error.
func (r *mealRepository) Delete(userID, id string) error {
	query := `DELETE FROM meals WHERE user_id = $1 AND id = $2`

	_, err := r.db.Exec(query, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}

	return nil
}
