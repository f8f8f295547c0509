package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCreateUserRequestValidate_AllFieldsPresent(t *testing.T) {
	req := CreateUserRequest{
		Email:    strPtr("a@x.com"),
		Password: strPtr("p"),
		Name:     strPtr("A"),
	}

	assert.False(t, req.Validate().Any())
}

func TestCreateUserRequestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		missing []string
	}{
		{
			name:    "all missing",
			req:     CreateUserRequest{},
			missing: []string{"email", "password", "name"},
		},
		{
			name:    "missing password",
			req:     CreateUserRequest{Email: strPtr("a@x.com"), Name: strPtr("A")},
			missing: []string{"password"},
		},
		{
			name:    "missing name",
			req:     CreateUserRequest{Email: strPtr("a@x.com"), Password: strPtr("p")},
			missing: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			assert.Len(t, errs, len(tt.missing))
			for _, field := range tt.missing {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestCreateUserRequestValidate_EmptyStringsAccepted(t *testing.T) {
	// Presence is all that is required; empty values are the caller's problem.
	req := CreateUserRequest{
		Email:    strPtr(""),
		Password: strPtr(""),
		Name:     strPtr(""),
	}

	assert.False(t, req.Validate().Any())
}
