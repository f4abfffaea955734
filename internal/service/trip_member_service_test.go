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
	"tripplanner/internal/policy"
)

func newMemberServiceForTest() (*MockTripRepository, *MockTripMemberRepository, TripMemberService) {
	tripRepo := new(MockTripRepository)
	memberRepo := new(MockTripMemberRepository)
	engine := policy.NewEngine(tripRepo, memberRepo)
	return tripRepo, memberRepo, NewTripMemberService(engine, memberRepo)
}

func TestTripMemberService_Add(t *testing.T) {
	tripID := uuid.New()
	ownerID := uuid.New()
	newUserID := uuid.New()

	t.Run("owner adds a collaborator by default", func(t *testing.T) {
		tripRepo, memberRepo, svc := newMemberServiceForTest()
		tripRepo.On("FindByID", mock.Anything, tripID).
			Return(&model.Trip{ID: tripID, OwnerID: ownerID}, nil)
		memberRepo.On("FindByTripAndUser", mock.Anything, tripID, newUserID).
			Return(nil, gorm.ErrRecordNotFound)
		memberRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.TripMember")).Return(nil)

		member, err := svc.Add(context.Background(), tripID, AddMemberInput{UserID: newUserID}, ownerID)

		assert.NoError(t, err)
		assert.Equal(t, newUserID, member.UserID)
		assert.Equal(t, model.MemberRoleCollaborator, member.Role)
		memberRepo.AssertExpectations(t)
	})

	t.Run("duplicate add conflicts", func(t *testing.T) {
		tripRepo, memberRepo, svc := newMemberServiceForTest()
		tripRepo.On("FindByID", mock.Anything, tripID).
			Return(&model.Trip{ID: tripID, OwnerID: ownerID}, nil)
		memberRepo.On("FindByTripAndUser", mock.Anything, tripID, newUserID).
			Return(&model.TripMember{TripID: tripID, UserID: newUserID}, nil)

		_, err := svc.Add(context.Background(), tripID, AddMemberInput{UserID: newUserID}, ownerID)

		assert.ErrorIs(t, err, apperrors.ErrAlreadyMember)
		memberRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("a member cannot grow the roster", func(t *testing.T) {
		memberID := uuid.New()
		tripRepo, memberRepo, svc := newMemberServiceForTest()
		tripRepo.On("FindByID", mock.Anything, tripID).
			Return(&model.Trip{ID: tripID, OwnerID: ownerID}, nil)

		_, err := svc.Add(context.Background(), tripID, AddMemberInput{UserID: newUserID}, memberID)

		assert.ErrorIs(t, err, apperrors.ErrNotTripOwner)
		memberRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTripMemberService_List(t *testing.T) {
	tripID := uuid.New()
	ownerID := uuid.New()

	tripRepo, memberRepo, svc := newMemberServiceForTest()
	tripRepo.On("FindByID", mock.Anything, tripID).
		Return(&model.Trip{ID: tripID, OwnerID: ownerID}, nil)
	roster := []model.TripMember{{TripID: tripID, UserID: uuid.New(), Role: model.MemberRoleCollaborator}}
	memberRepo.On("ListByTrip", mock.Anything, tripID).Return(roster, nil)

	got, err := svc.List(context.Background(), tripID, ownerID)

	assert.NoError(t, err)
	assert.Equal(t, roster, got)
	memberRepo.AssertExpectations(t)
}

func TestTripMemberService_UpdateRole(t *testing.T) {
	tripID := uuid.New()
	ownerID := uuid.New()
	memberID := uuid.New()

	t.Run("owner updates a role", func(t *testing.T) {
		tripRepo, memberRepo, svc := newMemberServiceForTest()
		tripRepo.On("FindByID", mock.Anything, tripID).
			Return(&model.Trip{ID: tripID, OwnerID: ownerID}, nil)
		memberRepo.On("FindByIDAndTrip", mock.Anything, memberID, tripID).
			Return(&model.TripMember{ID: memberID, TripID: tripID, Role: model.MemberRoleCollaborator}, nil)
		memberRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.TripMember")).Return(nil)

		member, err := svc.UpdateRole(context.Background(), tripID, memberID, model.MemberRoleCollaborator, ownerID)

		assert.NoError(t, err)
		assert.Equal(t, model.MemberRoleCollaborator, member.Role)
		memberRepo.AssertExpectations(t)
	})

	t.Run("membership row from another trip is not found", func(t *testing.T) {
		tripRepo, memberRepo, svc := newMemberServiceForTest()
		tripRepo.On("FindByID", mock.Anything, tripID).
			Return(&model.Trip{ID: tripID, OwnerID: ownerID}, nil)
		memberRepo.On("FindByIDAndTrip", mock.Anything, memberID, tripID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.UpdateRole(context.Background(), tripID, memberID, model.MemberRoleCollaborator, ownerID)

		assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
	})
}

func TestTripMemberService_Remove(t *testing.T) {
	tripID := uuid.New()
	ownerID := uuid.New()
	memberID := uuid.New()

	t.Run("owner removes a member", func(t *testing.T) {
		tripRepo, memberRepo, svc := newMemberServiceForTest()
		tripRepo.On("FindByID", mock.Anything, tripID).
			Return(&model.Trip{ID: tripID, OwnerID: ownerID}, nil)
		memberRepo.On("Delete", mock.Anything, memberID, tripID).Return(int64(1), nil)

		assert.NoError(t, svc.Remove(context.Background(), tripID, memberID, ownerID))
		memberRepo.AssertExpectations(t)
	})

	t.Run("removing an absent member is not found", func(t *testing.T) {
		tripRepo, memberRepo, svc := newMemberServiceForTest()
		tripRepo.On("FindByID", mock.Anything, tripID).
			Return(&model.Trip{ID: tripID, OwnerID: ownerID}, nil)
		memberRepo.On("Delete", mock.Anything, memberID, tripID).Return(int64(0), nil)

		err := svc.Remove(context.Background(), tripID, memberID, ownerID)
		assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
	})
}
