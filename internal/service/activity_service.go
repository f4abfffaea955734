package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/model"
	"tripplanner/internal/policy"
	"tripplanner/internal/repository"
)

// CreateActivityInput carries the fields for a new itinerary item.
type CreateActivityInput struct {
	TripID     uuid.UUID
	LocationID *uuid.UUID
	Title      string
	StartTime  *time.Time
	EndTime    *time.Time
	Cost       decimal.Decimal
	UserNotes  string
	Category   string
}

// UpdateActivityInput is a partial activity update. Nil fields are left
// untouched.
type UpdateActivityInput struct {
	LocationID *uuid.UUID
	Title      *string
	StartTime  *time.Time
	EndTime    *time.Time
	Cost       *decimal.Decimal
	UserNotes  *string
	Category   *string
}

// ActivityService exposes itinerary operations. Activities are jointly
// edited by the trip's team, so every gate is collaborator-level.
type ActivityService interface {
	Create(ctx context.Context, input CreateActivityInput, callerID uuid.UUID) (*model.Activity, error)
	FindByTrip(ctx context.Context, tripID, callerID uuid.UUID) ([]model.Activity, error)
	FindOne(ctx context.Context, id, callerID uuid.UUID) (*model.Activity, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateActivityInput, callerID uuid.UUID) (*model.Activity, error)
	Remove(ctx context.Context, id, callerID uuid.UUID) error
}

type activityService struct {
	engine       *policy.Engine
	activityRepo repository.ActivityRepository
}

// NewActivityService builds an ActivityService.
func NewActivityService(engine *policy.Engine, activityRepo repository.ActivityRepository) ActivityService {
	return &activityService{engine: engine, activityRepo: activityRepo}
}

func (s *activityService) Create(ctx context.Context, input CreateActivityInput, callerID uuid.UUID) (*model.Activity, error) {
	if _, err := s.engine.AuthorizeTripAccess(ctx, input.TripID, callerID); err != nil {
		return nil, err
	}

	activity := &model.Activity{
		TripID:     input.TripID,
		LocationID: input.LocationID,
		Title:      input.Title,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Cost:       input.Cost,
		UserNotes:  input.UserNotes,
		Category:   input.Category,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}
	return activity, nil
}

func (s *activityService) FindByTrip(ctx context.Context, tripID, callerID uuid.UUID) ([]model.Activity, error) {
	if _, err := s.engine.AuthorizeTripAccess(ctx, tripID, callerID); err != nil {
		return nil, err
	}
	return s.activityRepo.ListByTrip(ctx, tripID)
}

// FindOne resolves the activity first, then gates through its parent trip.
// The id cannot be probed without resolving through the trip gate, and the
// same path guards every mutation below.
func (s *activityService) FindOne(ctx context.Context, id, callerID uuid.UUID) (*model.Activity, error) {
	activity, err := s.activityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrActivityNotFound, err)
	}
	if _, err := s.engine.AuthorizeTripAccess(ctx, activity.TripID, callerID); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *activityService) Update(ctx context.Context, id uuid.UUID, input UpdateActivityInput, callerID uuid.UUID) (*model.Activity, error) {
	activity, err := s.FindOne(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	if input.LocationID != nil {
		activity.LocationID = input.LocationID
	}
	if input.Title != nil {
		activity.Title = *input.Title
	}
	if input.StartTime != nil {
		activity.StartTime = input.StartTime
	}
	if input.EndTime != nil {
		activity.EndTime = input.EndTime
	}
	if input.Cost != nil {
		activity.Cost = *input.Cost
	}
	if input.UserNotes != nil {
		activity.UserNotes = *input.UserNotes
	}
	if input.Category != nil {
		activity.Category = *input.Category
	}

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}
	return activity, nil
}

func (s *activityService) Remove(ctx context.Context, id, callerID uuid.UUID) error {
	if _, err := s.FindOne(ctx, id, callerID); err != nil {
		return err
	}
	if _, err := s.activityRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}
