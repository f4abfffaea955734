package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tripplanner/internal/auth"
	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/model"
)

const testJWTSecret = "test-secret-key"

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful registration",
			email: "new@example.com",
			setupMock: func(ur *MockUserRepository) {
				ur.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				ur.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "email already taken",
			email: "taken@example.com",
			setupMock: func(ur *MockUserRepository) {
				ur.On("FindByEmail", mock.Anything, "taken@example.com").
					Return(&model.User{Email: "taken@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tokenStore := new(MockTokenStore)
			tt.setupMock(userRepo)

			svc := NewAuthService(userRepo, auth.NewJWTService(testJWTSecret), tokenStore)
			user, err := svc.Register(context.Background(), "Test User", tt.email, "password123")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, model.PlatformRoleUser, user.Role)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
			}

			userRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
	assert.NoError(t, err)

	existing := &model.User{
		Name:         "Test User",
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         model.PlatformRoleUser,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "user@example.com",
			password: "password123",
			setupMock: func(ur *MockUserRepository, ts *MockTokenStore) {
				ur.On("FindByEmail", mock.Anything, "user@example.com").Return(existing, nil)
				ts.On("StoreRefreshToken", mock.Anything, mock.AnythingOfType("string"),
					existing.ID, existing.Email, existing.Role, auth.RefreshTokenExpiry).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "wrong password",
			email:    "user@example.com",
			password: "nope",
			setupMock: func(ur *MockUserRepository, ts *MockTokenStore) {
				ur.On("FindByEmail", mock.Anything, "user@example.com").Return(existing, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "password123",
			setupMock: func(ur *MockUserRepository, ts *MockTokenStore) {
				ur.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tokenStore := new(MockTokenStore)
			tt.setupMock(userRepo, tokenStore)

			svc := NewAuthService(userRepo, auth.NewJWTService(testJWTSecret), tokenStore)
			access, refresh, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, access)
				assert.Empty(t, refresh)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, access)
				assert.NotEmpty(t, refresh)
				assert.Equal(t, existing.Email, user.Email)
			}

			userRepo.AssertExpectations(t)
			tokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService(testJWTSecret)
	user := &model.User{
		Email: "user@example.com",
		Role:  model.PlatformRoleUser,
	}

	t.Run("valid refresh token yields a new access token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(user.ID, user.Email, user.Role)
		assert.NoError(t, err)

		tokenStore := new(MockTokenStore)
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(user.ID, user.Email, user.Role, nil)

		svc := NewAuthService(new(MockUserRepository), jwtService, tokenStore)
		access, err := svc.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		tokenStore.AssertExpectations(t)
	})

	t.Run("token missing from the store is rejected", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(user.ID, user.Email, user.Role)
		assert.NoError(t, err)

		tokenStore := new(MockTokenStore)
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(user.ID, "", model.PlatformRole(""), assert.AnError)

		svc := NewAuthService(new(MockUserRepository), jwtService, tokenStore)
		_, err = svc.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore))
		_, err := svc.RefreshToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService(testJWTSecret)
	user := &model.User{Email: "user@example.com", Role: model.PlatformRoleUser}

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(user.ID, user.Email, user.Role)
	assert.NoError(t, err)

	tokenStore := new(MockTokenStore)
	tokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	svc := NewAuthService(new(MockUserRepository), jwtService, tokenStore)
	assert.NoError(t, svc.Logout(context.Background(), refreshToken))
	tokenStore.AssertExpectations(t)
}
