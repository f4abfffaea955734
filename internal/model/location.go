package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location is a shared catalog entry. Locations are not scoped to a trip;
// any authenticated user can read them, and only the creator can edit.
type Location struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name       string    `json:"name" gorm:"size:255;not null;index"`
	Address    string    `json:"address,omitempty" gorm:"size:512"`
	Category   string    `json:"category,omitempty" gorm:"size:100"`
	CreatedBy  uuid.UUID `json:"created_by" gorm:"type:char(36);not null;index"`
	IsVerified bool      `json:"is_verified" gorm:"default:false"`
	Lat        float64   `json:"lat" gorm:"not null"`
	Lng        float64   `json:"lng" gorm:"not null"`
	Rating     float64   `json:"rating,omitempty"`
	PlaceID    string    `json:"place_id,omitempty" gorm:"size:255"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
