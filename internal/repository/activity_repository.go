package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripplanner/internal/model"
)

// ActivityRepository defines activity persistence operations.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	Update(ctx context.Context, activity *model.Activity) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Activity, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]model.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteByTrip(ctx context.Context, tripID uuid.UUID) error
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository builds a GORM-backed repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) Update(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	var activity model.Activity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.db.WithContext(ctx).Where("trip_id = ?", tripID).Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Activity{})
	return res.RowsAffected, res.Error
}

func (r *activityRepository) DeleteByTrip(ctx context.Context, tripID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("trip_id = ?", tripID).Delete(&model.Activity{}).Error
}
