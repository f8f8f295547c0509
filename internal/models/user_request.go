package models

import "daily-diet-be/internal/validation"

// CreateUserRequest represents the request body for creating a user.
// Fields are pointers so a missing field can be told apart from a zero value.
type CreateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
}

// Validate checks that every required field was present in the request body.
// Presence is all that is required; empty strings are accepted.
func (r *CreateUserRequest) Validate() validation.FieldErrors {
	errs := validation.FieldErrors{}
	if r.Email == nil {
		errs["email"] = "required"
	}
	if r.Password == nil {
		errs["password"] = "required"
	}
	if r.Name == nil {
		errs["name"] = "required"
	}
	return errs
}
