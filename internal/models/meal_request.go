package models

import (
	"time"

	"daily-diet-be/internal/validation"
)

// CreateMealRequest represents the request body for creating a meal.
// Pointer fields distinguish "absent" from a zero value, which matters for
// isInTheDiet where false is a perfectly valid answer.
type CreateMealRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsInTheDiet *bool   `json:"isInTheDiet"`
}

// Validate checks that every required field was present in the request body.
func (r *CreateMealRequest) Validate() validation.FieldErrors {
	errs := validation.FieldErrors{}
	if r.Name == nil {
		errs["name"] = "required"
	}
	if r.Description == nil {
		errs["description"] = "required"
	}
	if r.IsInTheDiet == nil {
		errs["isInTheDiet"] = "required"
	}
	return errs
}

// UpdateMealRequest represents the request body for updating a meal.
// Every field is optional; a nil field leaves the stored value untouched.
type UpdateMealRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	IsInTheDiet *bool      `json:"isInTheDiet"`
}

// Validate never fails on presence since all fields are optional. Type
// mismatches are rejected earlier, when the JSON body is bound.
func (r *UpdateMealRequest) Validate() validation.FieldErrors {
	return validation.FieldErrors{}
}
