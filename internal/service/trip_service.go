package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

// CreateTripInput carries the fields a caller may set when creating a trip.
type CreateTripInput struct {
	Title       string
	ImageURL    string
	StartDate   *time.Time
	EndDate     *time.Time
	TotalBudget decimal.Decimal
	IsPublic    bool
}

// UpdateTripInput is a partial trip update. Nil fields are left untouched.
type UpdateTripInput struct {
	Title       *string
	ImageURL    *string
	StartDate   *time.Time
	EndDate     *time.Time
	TotalBudget *decimal.Decimal
	IsPublic    *bool
}

// TripService exposes trip operations. Visibility of a trip's own record is
// simpler than sub-resource access: public trips are readable by anyone,
// private trips only by their owner. Membership grants access to a trip's
// sub-resources, not to the trip record itself.
type TripService interface {
	Create(ctx context.Context, input CreateTripInput, ownerID uuid.UUID) (*model.Trip, error)
	ListPublic(ctx context.Context) ([]model.Trip, error)
	ListOwn(ctx context.Context, ownerID uuid.UUID) ([]model.Trip, error)
	GetOne(ctx context.Context, id, callerID uuid.UUID) (*model.Trip, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTripInput, callerID uuid.UUID) (*model.Trip, error)
	Delete(ctx context.Context, id, callerID uuid.UUID) error
}

type tripService struct {
	tripRepo     repository.TripRepository
	memberRepo   repository.TripMemberRepository
	activityRepo repository.ActivityRepository
	reqRepo      repository.TravelRequirementRepository
}

// NewTripService builds a TripService. The member, activity and requirement
// repositories are needed only for the explicit delete cascade.
func NewTripService(
	tripRepo repository.TripRepository,
	memberRepo repository.TripMemberRepository,
	activityRepo repository.ActivityRepository,
	reqRepo repository.TravelRequirementRepository,
) TripService {
	return &tripService{
		tripRepo:     tripRepo,
		memberRepo:   memberRepo,
		activityRepo: activityRepo,
		reqRepo:      reqRepo,
	}
}

// Create inserts a trip owned by the caller. Any authenticated user may
// create a trip; no prior authorization applies.
func (s *tripService) Create(ctx context.Context, input CreateTripInput, ownerID uuid.UUID) (*model.Trip, error) {
	trip := &model.Trip{
		OwnerID:     ownerID,
		Title:       input.Title,
		ImageURL:    input.ImageURL,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		TotalBudget: input.TotalBudget,
		IsPublic:    input.IsPublic,
	}
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}
	return trip, nil
}

func (s *tripService) ListPublic(ctx context.Context) ([]model.Trip, error) {
	return s.tripRepo.ListPublic(ctx)
}

func (s *tripService) ListOwn(ctx context.Context, ownerID uuid.UUID) ([]model.Trip, error) {
	return s.tripRepo.ListByOwner(ctx, ownerID)
}

// GetOne returns the trip if it is public or owned by the caller.
func (s *tripService) GetOne(ctx context.Context, id, callerID uuid.UUID) (*model.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTripNotFound, err)
	}
	if !trip.IsPublic && trip.OwnerID != callerID {
		return nil, apperrors.ErrTripAccessDenied
	}
	return trip, nil
}

// Update applies a partial update after the GetOne visibility check and an
// ownership check. A non-owner collaborator cannot read a private trip's
// root record, so they fail at the visibility step already.
func (s *tripService) Update(ctx context.Context, id uuid.UUID, input UpdateTripInput, callerID uuid.UUID) (*model.Trip, error) {
	trip, err := s.GetOne(ctx, id, callerID)
	if err != nil {
		return nil, err
	}
	if trip.OwnerID != callerID {
		return nil, apperrors.ErrNotTripOwner
	}

	if input.Title != nil {
		trip.Title = *input.Title
	}
	if input.ImageURL != nil {
		trip.ImageURL = *input.ImageURL
	}
	if input.StartDate != nil {
		trip.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		trip.EndDate = input.EndDate
	}
	if input.TotalBudget != nil {
		trip.TotalBudget = *input.TotalBudget
	}
	if input.IsPublic != nil {
		trip.IsPublic = *input.IsPublic
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, fmt.Errorf("update trip: %w", err)
	}
	return trip, nil
}

// Delete removes a trip and, explicitly rather than via store cascades, its
// activities, roster and travel requirements.
func (s *tripService) Delete(ctx context.Context, id, callerID uuid.UUID) error {
	trip, err := s.GetOne(ctx, id, callerID)
	if err != nil {
		return err
	}
	if trip.OwnerID != callerID {
		return apperrors.ErrNotTripOwner
	}

	if err := s.activityRepo.DeleteByTrip(ctx, id); err != nil {
		return fmt.Errorf("delete trip activities: %w", err)
	}
	if err := s.memberRepo.DeleteByTrip(ctx, id); err != nil {
		return fmt.Errorf("delete trip members: %w", err)
	}
	if _, err := s.reqRepo.DeleteByTrip(ctx, id); err != nil {
		return fmt.Errorf("delete trip requirements: %w", err)
	}
	if _, err := s.tripRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	return nil
}
