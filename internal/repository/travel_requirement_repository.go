package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripplanner/internal/model"
)

// TravelRequirementRepository defines persistence for the one-per-trip
// travel requirements row. Every lookup and mutation keys on trip_id.
type TravelRequirementRepository interface {
	Create(ctx context.Context, req *model.TravelRequirement) error
	Update(ctx context.Context, req *model.TravelRequirement) error
	FindByTrip(ctx context.Context, tripID uuid.UUID) (*model.TravelRequirement, error)
	DeleteByTrip(ctx context.Context, tripID uuid.UUID) (int64, error)
}

type travelRequirementRepository struct {
	db *gorm.DB
}

// NewTravelRequirementRepository builds a GORM-backed repository.
func NewTravelRequirementRepository(db *gorm.DB) TravelRequirementRepository {
	return &travelRequirementRepository{db: db}
}

func (r *travelRequirementRepository) Create(ctx context.Context, req *model.TravelRequirement) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *travelRequirementRepository) Update(ctx context.Context, req *model.TravelRequirement) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *travelRequirementRepository) FindByTrip(ctx context.Context, tripID uuid.UUID) (*model.TravelRequirement, error) {
	var req model.TravelRequirement
	if err := r.db.WithContext(ctx).Where("trip_id = ?", tripID).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *travelRequirementRepository) DeleteByTrip(ctx context.Context, tripID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("trip_id = ?", tripID).Delete(&model.TravelRequirement{})
	return res.RowsAffected, res.Error
}
