package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/model"
)

func TestUserService_GetUser(t *testing.T) {
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, userID).
			Return(&model.User{ID: userID, Email: "user@example.com"}, nil)

		svc := NewUserService(repo)
		user, err := svc.GetUser(context.Background(), userID)

		assert.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("missing", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(repo)
		_, err := svc.GetUser(context.Background(), userID)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	userID := uuid.New()

	t.Run("rename and rehash password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, userID).
			Return(&model.User{ID: userID, Name: "Old", Email: "user@example.com"}, nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(repo)
		newName := "New"
		newPassword := "changed123"
		user, err := svc.UpdateUser(context.Background(), userID, UpdateUserInput{
			Name:     &newName,
			Password: &newPassword,
		})

		assert.NoError(t, err)
		assert.Equal(t, "New", user.Name)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(newPassword)))
		repo.AssertExpectations(t)
	})

	t.Run("email change to a taken address conflicts", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, userID).
			Return(&model.User{ID: userID, Email: "user@example.com"}, nil)
		repo.On("FindByEmail", mock.Anything, "taken@example.com").
			Return(&model.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

		svc := NewUserService(repo)
		newEmail := "taken@example.com"
		_, err := svc.UpdateUser(context.Background(), userID, UpdateUserInput{Email: &newEmail})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("email change to a free address succeeds", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, userID).
			Return(&model.User{ID: userID, Email: "user@example.com"}, nil)
		repo.On("FindByEmail", mock.Anything, "free@example.com").Return(nil, gorm.ErrRecordNotFound)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(repo)
		newEmail := "free@example.com"
		user, err := svc.UpdateUser(context.Background(), userID, UpdateUserInput{Email: &newEmail})

		assert.NoError(t, err)
		assert.Equal(t, "free@example.com", user.Email)
		repo.AssertExpectations(t)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	userID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Delete", mock.Anything, userID).Return(int64(1), nil)

		svc := NewUserService(repo)
		assert.NoError(t, svc.DeleteUser(context.Background(), userID))
	})

	t.Run("missing", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Delete", mock.Anything, userID).Return(int64(0), nil)

		svc := NewUserService(repo)
		err := svc.DeleteUser(context.Background(), userID)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
