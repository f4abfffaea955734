package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/model"
	"tripplanner/internal/policy"
	"tripplanner/internal/repository"
)

// CreateTravelRequirementsInput carries the payloads for a trip's single
// travel requirements row.
type CreateTravelRequirementsInput struct {
	TripID        uuid.UUID
	Documentation json.RawMessage
	HealthInfo    json.RawMessage
	CurrencyInfo  json.RawMessage
}

// UpdateTravelRequirementsInput is a partial update. Nil fields are left
// untouched.
type UpdateTravelRequirementsInput struct {
	Documentation json.RawMessage
	HealthInfo    json.RawMessage
	CurrencyInfo  json.RawMessage
}

// TravelRequirementService manages the one-per-trip requirements row.
// Unlike activities, requirements are administrative: every operation
// requires trip ownership, membership is never enough.
type TravelRequirementService interface {
	Create(ctx context.Context, input CreateTravelRequirementsInput, callerID uuid.UUID) (*model.TravelRequirement, error)
	FindByTrip(ctx context.Context, tripID, callerID uuid.UUID) (*model.TravelRequirement, error)
	Update(ctx context.Context, tripID uuid.UUID, input UpdateTravelRequirementsInput, callerID uuid.UUID) (*model.TravelRequirement, error)
	Remove(ctx context.Context, tripID, callerID uuid.UUID) error
}

type travelRequirementService struct {
	engine  *policy.Engine
	reqRepo repository.TravelRequirementRepository
}

// NewTravelRequirementService builds a TravelRequirementService.
func NewTravelRequirementService(engine *policy.Engine, reqRepo repository.TravelRequirementRepository) TravelRequirementService {
	return &travelRequirementService{engine: engine, reqRepo: reqRepo}
}

// Create inserts the trip's requirements row. A second create conflicts;
// clients must switch to Update. The unique index on trip_id settles
// concurrent creates.
func (s *travelRequirementService) Create(ctx context.Context, input CreateTravelRequirementsInput, callerID uuid.UUID) (*model.TravelRequirement, error) {
	if _, err := s.engine.AuthorizeTripOwnership(ctx, input.TripID, callerID); err != nil {
		return nil, err
	}

	existing, err := s.reqRepo.FindByTrip(ctx, input.TripID)
	if err == nil && existing != nil {
		return nil, apperrors.ErrRequirementsExist
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check requirements existence: %w", err)
	}

	req := &model.TravelRequirement{
		TripID:        input.TripID,
		Documentation: input.Documentation,
		HealthInfo:    input.HealthInfo,
		CurrencyInfo:  input.CurrencyInfo,
		LastUpdated:   time.Now().UTC(),
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create travel requirements: %w", err)
	}
	return req, nil
}

func (s *travelRequirementService) FindByTrip(ctx context.Context, tripID, callerID uuid.UUID) (*model.TravelRequirement, error) {
	if _, err := s.engine.AuthorizeTripOwnership(ctx, tripID, callerID); err != nil {
		return nil, err
	}

	req, err := s.reqRepo.FindByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRequirementsNotFound, err)
	}
	return req, nil
}

func (s *travelRequirementService) Update(ctx context.Context, tripID uuid.UUID, input UpdateTravelRequirementsInput, callerID uuid.UUID) (*model.TravelRequirement, error) {
	if _, err := s.engine.AuthorizeTripOwnership(ctx, tripID, callerID); err != nil {
		return nil, err
	}

	req, err := s.reqRepo.FindByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRequirementsNotFound, err)
	}

	if input.Documentation != nil {
		req.Documentation = input.Documentation
	}
	if input.HealthInfo != nil {
		req.HealthInfo = input.HealthInfo
	}
	if input.CurrencyInfo != nil {
		req.CurrencyInfo = input.CurrencyInfo
	}
	req.LastUpdated = time.Now().UTC()

	if err := s.reqRepo.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("update travel requirements: %w", err)
	}
	return req, nil
}

func (s *travelRequirementService) Remove(ctx context.Context, tripID, callerID uuid.UUID) error {
	if _, err := s.engine.AuthorizeTripOwnership(ctx, tripID, callerID); err != nil {
		return err
	}

	rows, err := s.reqRepo.DeleteByTrip(ctx, tripID)
	if err != nil {
		return fmt.Errorf("delete travel requirements: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrRequirementsNotFound
	}
	return nil
}
