package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripplanner/internal/model"
)

// TripMemberRepository defines roster persistence operations. Lookups are
// exact-match only; mutations on a single member always match on the
// compound (id, trip_id) pair so a member id from another trip never hits.
type TripMemberRepository interface {
	Create(ctx context.Context, member *model.TripMember) error
	Update(ctx context.Context, member *model.TripMember) error
	FindByTripAndUser(ctx context.Context, tripID, userID uuid.UUID) (*model.TripMember, error)
	FindByIDAndTrip(ctx context.Context, id, tripID uuid.UUID) (*model.TripMember, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]model.TripMember, error)
	Delete(ctx context.Context, id, tripID uuid.UUID) (int64, error)
	DeleteByTrip(ctx context.Context, tripID uuid.UUID) error
}

type tripMemberRepository struct {
	db *gorm.DB
}

// NewTripMemberRepository builds a GORM-backed repository.
func NewTripMemberRepository(db *gorm.DB) TripMemberRepository {
	return &tripMemberRepository{db: db}
}

func (r *tripMemberRepository) Create(ctx context.Context, member *model.TripMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *tripMemberRepository) Update(ctx context.Context, member *model.TripMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *tripMemberRepository) FindByTripAndUser(ctx context.Context, tripID, userID uuid.UUID) (*model.TripMember, error) {
	var member model.TripMember
	if err := r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *tripMemberRepository) FindByIDAndTrip(ctx context.Context, id, tripID uuid.UUID) (*model.TripMember, error) {
	var member model.TripMember
	if err := r.db.WithContext(ctx).
		Where("id = ? AND trip_id = ?", id, tripID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *tripMemberRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]model.TripMember, error) {
	var members []model.TripMember
	if err := r.db.WithContext(ctx).Where("trip_id = ?", tripID).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *tripMemberRepository) Delete(ctx context.Context, id, tripID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND trip_id = ?", id, tripID).
		Delete(&model.TripMember{})
	return res.RowsAffected, res.Error
}

func (r *tripMemberRepository) DeleteByTrip(ctx context.Context, tripID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("trip_id = ?", tripID).Delete(&model.TripMember{}).Error
}
