package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Activity represents a scheduled item inside a trip's itinerary.
type Activity struct {
	ID         uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	TripID     uuid.UUID       `json:"trip_id" gorm:"type:char(36);not null;index"`
	LocationID *uuid.UUID      `json:"location_id,omitempty" gorm:"type:char(36);index"`
	Title      string          `json:"title" gorm:"size:255;not null"`
	StartTime  *time.Time      `json:"start_time,omitempty"`
	EndTime    *time.Time      `json:"end_time,omitempty"`
	Cost       decimal.Decimal `json:"cost" gorm:"type:decimal(20,2);not null;default:0"`
	UserNotes  string          `json:"user_notes,omitempty" gorm:"type:text"`
	Category   string          `json:"category,omitempty" gorm:"size:100"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Relations
	Trip Trip `json:"-" gorm:"foreignKey:TripID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
