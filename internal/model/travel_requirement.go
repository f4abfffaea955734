package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TravelRequirement holds documentation, health and currency notes for a
// trip. At most one row exists per trip, backed by the unique index.
type TravelRequirement struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	TripID        uuid.UUID       `json:"trip_id" gorm:"type:char(36);not null;uniqueIndex"`
	Documentation json.RawMessage `json:"documentation,omitempty" gorm:"type:json"`
	HealthInfo    json.RawMessage `json:"health_info,omitempty" gorm:"type:json"`
	CurrencyInfo  json.RawMessage `json:"currency_info,omitempty" gorm:"type:json"`
	LastUpdated   time.Time       `json:"last_updated"`

	// Relations
	Trip Trip `json:"-" gorm:"foreignKey:TripID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *TravelRequirement) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
