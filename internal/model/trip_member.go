package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRole is the role a user holds on a specific trip. It is scoped to
// the trip roster and never implies anything about the user's PlatformRole.
type MemberRole string

// MemberRoleCollaborator is the default role for added members.
const MemberRoleCollaborator MemberRole = "collaborator"

// TripMember links a user to a trip as a collaborator. At most one row may
// exist per (trip_id, user_id) pair; the composite unique index backs the
// advisory existence check done in the service layer.
type TripMember struct {
	ID       uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	TripID   uuid.UUID  `json:"trip_id" gorm:"type:char(36);not null;uniqueIndex:idx_trip_user"`
	UserID   uuid.UUID  `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_trip_user"`
	Role     MemberRole `json:"role" gorm:"size:50;not null;default:'collaborator'"`
	JoinedAt time.Time  `json:"joined_at" gorm:"autoCreateTime"`

	// Relations
	Trip Trip `json:"-" gorm:"foreignKey:TripID"`
}

// BeforeCreate sets UUID and default role before creating the record.
func (m *TripMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Role == "" {
		m.Role = MemberRoleCollaborator
	}
	return nil
}
