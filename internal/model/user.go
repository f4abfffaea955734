package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlatformRole is the global role tag on a user account. It is unrelated to
// the per-trip MemberRole a user may hold as a collaborator.
type PlatformRole string

const (
	// PlatformRoleUser is the default role for registered users.
	PlatformRoleUser PlatformRole = "user"
	// PlatformRoleAdmin grants access to administrative user endpoints.
	PlatformRoleAdmin PlatformRole = "admin"
)

// User represents a registered account in the system.
type User struct {
	ID           uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string       `json:"name" gorm:"size:255;not null"`
	Email        string       `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string       `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         PlatformRole `json:"role" gorm:"size:50;not null;default:'user'"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// BeforeCreate sets UUID and default role before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = PlatformRoleUser
	}
	return nil
}
