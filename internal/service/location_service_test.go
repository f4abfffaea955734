package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/model"
)

func TestLocationService_Create(t *testing.T) {
	callerID := uuid.New()
	repo := new(MockLocationRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Location")).Return(nil)

	svc := NewLocationService(repo, nil)
	location, err := svc.Create(context.Background(), CreateLocationInput{
		Name:     "Tokyo Tower",
		Category: "monument",
		Lat:      35.6586,
		Lng:      139.7454,
	}, callerID)

	assert.NoError(t, err)
	assert.Equal(t, callerID, location.CreatedBy)
	assert.False(t, location.IsVerified)
	repo.AssertExpectations(t)
}

func TestLocationService_FindOne(t *testing.T) {
	locationID := uuid.New()

	t.Run("found", func(t *testing.T) {
		repo := new(MockLocationRepository)
		repo.On("FindByID", mock.Anything, locationID).
			Return(&model.Location{ID: locationID, Name: "Tokyo Tower"}, nil)

		svc := NewLocationService(repo, nil)
		location, err := svc.FindOne(context.Background(), locationID)

		assert.NoError(t, err)
		assert.Equal(t, "Tokyo Tower", location.Name)
	})

	t.Run("missing", func(t *testing.T) {
		repo := new(MockLocationRepository)
		repo.On("FindByID", mock.Anything, locationID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewLocationService(repo, nil)
		_, err := svc.FindOne(context.Background(), locationID)

		assert.ErrorIs(t, err, apperrors.ErrLocationNotFound)
	})
}

func TestLocationService_Update(t *testing.T) {
	locationID := uuid.New()
	creatorID := uuid.New()
	strangerID := uuid.New()

	t.Run("creator updates", func(t *testing.T) {
		repo := new(MockLocationRepository)
		repo.On("FindByID", mock.Anything, locationID).
			Return(&model.Location{ID: locationID, CreatedBy: creatorID, Name: "Old"}, nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Location")).Return(nil)

		svc := NewLocationService(repo, nil)
		newName := "New"
		location, err := svc.Update(context.Background(), locationID, UpdateLocationInput{Name: &newName}, creatorID)

		assert.NoError(t, err)
		assert.Equal(t, "New", location.Name)
		repo.AssertExpectations(t)
	})

	t.Run("non-creator is forbidden", func(t *testing.T) {
		repo := new(MockLocationRepository)
		repo.On("FindByID", mock.Anything, locationID).
			Return(&model.Location{ID: locationID, CreatedBy: creatorID}, nil)

		svc := NewLocationService(repo, nil)
		newName := "Hijacked"
		_, err := svc.Update(context.Background(), locationID, UpdateLocationInput{Name: &newName}, strangerID)

		assert.ErrorIs(t, err, apperrors.ErrNotLocationCreator)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestLocationService_Remove(t *testing.T) {
	locationID := uuid.New()
	creatorID := uuid.New()
	strangerID := uuid.New()

	t.Run("creator removes", func(t *testing.T) {
		repo := new(MockLocationRepository)
		repo.On("FindByID", mock.Anything, locationID).
			Return(&model.Location{ID: locationID, CreatedBy: creatorID}, nil)
		repo.On("Delete", mock.Anything, locationID).Return(int64(1), nil)

		svc := NewLocationService(repo, nil)
		assert.NoError(t, svc.Remove(context.Background(), locationID, creatorID))
		repo.AssertExpectations(t)
	})

	t.Run("non-creator is forbidden", func(t *testing.T) {
		repo := new(MockLocationRepository)
		repo.On("FindByID", mock.Anything, locationID).
			Return(&model.Location{ID: locationID, CreatedBy: creatorID}, nil)

		svc := NewLocationService(repo, nil)
		err := svc.Remove(context.Background(), locationID, strangerID)

		assert.ErrorIs(t, err, apperrors.ErrNotLocationCreator)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
