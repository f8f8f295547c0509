package entities

import "time"

// Meal represents a meal entity in the database
type Meal struct {
	ID          string    `json:"id"`     // UUID
	UserID      string    `json:"userId"` // Owning user, UUID
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	IsInTheDiet bool      `json:"isInTheDiet"`
}
