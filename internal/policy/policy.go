// Package policy implements the access decisions shared by every resource
// service. Two tiers exist: collaborator-level access (owner or any roster
// member) used for trip-scoped resources meant to be jointly edited, and
// owner-level access used for administrative sub-resources such as the
// member roster and travel requirements.
//
// The engine is stateless and never caches: both checks re-read the trip
// and membership rows on every call, so a decision always reflects the
// latest committed state at the moment of the check.
package policy

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

// Engine decides whether a caller may act on a trip's permission scope.
type Engine struct {
	tripRepo   repository.TripRepository
	memberRepo repository.TripMemberRepository
}

// NewEngine creates a policy engine over the trip and roster repositories.
func NewEngine(tripRepo repository.TripRepository, memberRepo repository.TripMemberRepository) *Engine {
	return &Engine{tripRepo: tripRepo, memberRepo: memberRepo}
}

// AuthorizeTripAccess grants collaborator-level access: the trip owner or
// any user with a roster row for the trip, whatever their member role.
// Returns ErrTripNotFound when the trip cannot be read and
// ErrTripAccessDenied unless a membership row is proven to exist.
func (e *Engine) AuthorizeTripAccess(ctx context.Context, tripID, userID uuid.UUID) (*model.Trip, error) {
	trip, err := e.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTripNotFound, err)
	}

	if trip.OwnerID == userID {
		return trip, nil
	}

	if _, err := e.memberRepo.FindByTripAndUser(ctx, tripID, userID); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTripAccessDenied, err)
	}
	return trip, nil
}

// AuthorizeTripOwnership grants owner-level access. Membership is never
// sufficient here. Returns ErrTripNotFound when the trip cannot be read and
// ErrNotTripOwner for every caller but the owner.
func (e *Engine) AuthorizeTripOwnership(ctx context.Context, tripID, userID uuid.UUID) (*model.Trip, error) {
	trip, err := e.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTripNotFound, err)
	}

	if trip.OwnerID != userID {
		return nil, apperrors.ErrNotTripOwner
	}
	return trip, nil
}
