package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "tripplanner/internal/errors"
	"tripplanner/internal/model"
	"tripplanner/internal/policy"
	"tripplanner/internal/repository"
)

// AddMemberInput carries the user to add and an optional roster role.
type AddMemberInput struct {
	UserID uuid.UUID
	Role   model.MemberRole
}

// TripMemberService manages a trip's roster. Every operation, reads
// included, requires trip ownership: members cannot see or manage the
// roster they are part of.
type TripMemberService interface {
	Add(ctx context.Context, tripID uuid.UUID, input AddMemberInput, callerID uuid.UUID) (*model.TripMember, error)
	List(ctx context.Context, tripID, callerID uuid.UUID) ([]model.TripMember, error)
	UpdateRole(ctx context.Context, tripID, memberID uuid.UUID, role model.MemberRole, callerID uuid.UUID) (*model.TripMember, error)
	Remove(ctx context.Context, tripID, memberID, callerID uuid.UUID) error
}

type tripMemberService struct {
	engine     *policy.Engine
	memberRepo repository.TripMemberRepository
}

// NewTripMemberService builds a TripMemberService.
func NewTripMemberService(engine *policy.Engine, memberRepo repository.TripMemberRepository) TripMemberService {
	return &tripMemberService{engine: engine, memberRepo: memberRepo}
}

// Add puts a user on the roster. The duplicate check is advisory; the
// composite unique index on (trip_id, user_id) settles concurrent adds.
func (s *tripMemberService) Add(ctx context.Context, tripID uuid.UUID, input AddMemberInput, callerID uuid.UUID) (*model.TripMember, error) {
	if _, err := s.engine.AuthorizeTripOwnership(ctx, tripID, callerID); err != nil {
		return nil, err
	}

	existing, err := s.memberRepo.FindByTripAndUser(ctx, tripID, input.UserID)
	if err == nil && existing != nil {
		return nil, apperrors.ErrAlreadyMember
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check membership: %w", err)
	}

	role := input.Role
	if role == "" {
		role = model.MemberRoleCollaborator
	}
	member := &model.TripMember{
		TripID: tripID,
		UserID: input.UserID,
		Role:   role,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("add member: %w", err)
	}
	return member, nil
}

func (s *tripMemberService) List(ctx context.Context, tripID, callerID uuid.UUID) ([]model.TripMember, error) {
	if _, err := s.engine.AuthorizeTripOwnership(ctx, tripID, callerID); err != nil {
		return nil, err
	}
	return s.memberRepo.ListByTrip(ctx, tripID)
}

func (s *tripMemberService) UpdateRole(ctx context.Context, tripID, memberID uuid.UUID, role model.MemberRole, callerID uuid.UUID) (*model.TripMember, error) {
	if _, err := s.engine.AuthorizeTripOwnership(ctx, tripID, callerID); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindByIDAndTrip(ctx, memberID, tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMemberNotFound, err)
	}

	member.Role = role
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("update member role: %w", err)
	}
	return member, nil
}

func (s *tripMemberService) Remove(ctx context.Context, tripID, memberID, callerID uuid.UUID) error {
	if _, err := s.engine.AuthorizeTripOwnership(ctx, tripID, callerID); err != nil {
		return err
	}

	rows, err := s.memberRepo.Delete(ctx, memberID, tripID)
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrMemberNotFound
	}
	return nil
}
