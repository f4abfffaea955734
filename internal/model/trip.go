package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Trip represents a planned trip owned by a single user.
type Trip struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerID     uuid.UUID       `json:"owner_id" gorm:"type:char(36);not null;index"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	ImageURL    string          `json:"image_url,omitempty" gorm:"size:512"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	TotalBudget decimal.Decimal `json:"total_budget" gorm:"type:decimal(20,2);not null;default:0"`
	IsPublic    bool            `json:"is_public" gorm:"default:false;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Members    []TripMember `json:"members,omitempty" gorm:"foreignKey:TripID"`
	Activities []Activity   `json:"activities,omitempty" gorm:"foreignKey:TripID"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
