package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"daily-diet-be/internal/entities"
	"daily-diet-be/internal/models"
	"daily-diet-be/internal/repository/mocks"
	"daily-diet-be/internal/service"
)

func TestUserServiceCreate_GeneratesUUIDAndStoresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewUserService(userRepo)

	email := "a@x.com"
	password := "p"
	name := "A"

	var created *entities.User
	userRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *entities.User) error {
		created = user
		return nil
	})

	user, err := svc.Create(&models.CreateUserRequest{
		Email:    &email,
		Password: &password,
		Name:     &name,
	}, "session-token")

	assert.NoError(t, err)
	assert.Equal(t, created, user)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "p", user.Password)
	assert.Equal(t, "A", user.Name)
	if assert.NotNil(t, user.SessionID) {
		assert.Equal(t, "session-token", *user.SessionID)
	}

	_, err = uuid.Parse(user.ID)
	assert.NoError(t, err)
}

func TestUserServiceList_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewUserService(userRepo)

	users := []*entities.User{{ID: "u1"}, {ID: "u2"}}
	userRepo.EXPECT().FindAll().Return(users, nil)

	got, err := svc.List()
	assert.NoError(t, err)
	assert.Equal(t, users, got)
}
