package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tripplanner/internal/cache"
	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

const locationCacheTTL = 5 * time.Minute

// CreateLocationInput carries the fields for a new catalog entry.
type CreateLocationInput struct {
	Name     string
	Address  string
	Category string
	Lat      float64
	Lng      float64
	Rating   float64
	PlaceID  string
}

// UpdateLocationInput is a partial location update. Nil fields are left
// untouched.
type UpdateLocationInput struct {
	Name     *string
	Address  *string
	Category *string
	Lat      *float64
	Lng      *float64
	Rating   *float64
	PlaceID  *string
}

// LocationService exposes the shared location catalog. Reads are open to
// any authenticated caller; edits require being the creator. No trip
// indirection is involved.
type LocationService interface {
	Create(ctx context.Context, input CreateLocationInput, callerID uuid.UUID) (*model.Location, error)
	FindAll(ctx context.Context) ([]model.Location, error)
	FindOne(ctx context.Context, id uuid.UUID) (*model.Location, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateLocationInput, callerID uuid.UUID) (*model.Location, error)
	Remove(ctx context.Context, id, callerID uuid.UUID) error
}

type locationService struct {
	repo  repository.LocationRepository
	cache *cache.Client
}

// NewLocationService builds a LocationService with repository and cache.
func NewLocationService(repo repository.LocationRepository, cache *cache.Client) LocationService {
	return &locationService{repo: repo, cache: cache}
}

func (s *locationService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("location:%s", id)
}

func (s *locationService) Create(ctx context.Context, input CreateLocationInput, callerID uuid.UUID) (*model.Location, error) {
	location := &model.Location{
		Name:       input.Name,
		Address:    input.Address,
		Category:   input.Category,
		CreatedBy:  callerID,
		IsVerified: false,
		Lat:        input.Lat,
		Lng:        input.Lng,
		Rating:     input.Rating,
		PlaceID:    input.PlaceID,
	}
	if err := s.repo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}
	return location, nil
}

func (s *locationService) FindAll(ctx context.Context) ([]model.Location, error) {
	return s.repo.List(ctx)
}

// FindOne serves reads through the cache. The cache never feeds an
// authorization decision; edit paths below re-read from the store.
func (s *locationService) FindOne(ctx context.Context, id uuid.UUID) (*model.Location, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Location
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	location, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrLocationNotFound, err)
	}

	if payload, err := json.Marshal(location); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, locationCacheTTL)
	}
	return location, nil
}

func (s *locationService) Update(ctx context.Context, id uuid.UUID, input UpdateLocationInput, callerID uuid.UUID) (*model.Location, error) {
	location, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrLocationNotFound, err)
	}
	if location.CreatedBy != callerID {
		return nil, apperrors.ErrNotLocationCreator
	}

	if input.Name != nil {
		location.Name = *input.Name
	}
	if input.Address != nil {
		location.Address = *input.Address
	}
	if input.Category != nil {
		location.Category = *input.Category
	}
	if input.Lat != nil {
		location.Lat = *input.Lat
	}
	if input.Lng != nil {
		location.Lng = *input.Lng
	}
	if input.Rating != nil {
		location.Rating = *input.Rating
	}
	if input.PlaceID != nil {
		location.PlaceID = *input.PlaceID
	}

	if err := s.repo.Update(ctx, location); err != nil {
		return nil, fmt.Errorf("update location: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return location, nil
}

func (s *locationService) Remove(ctx context.Context, id, callerID uuid.UUID) error {
	location, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrLocationNotFound, err)
	}
	if location.CreatedBy != callerID {
		return apperrors.ErrNotLocationCreator
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
