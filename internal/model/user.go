package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Username  string     `gorm:"not null"`
	Name      string     `gorm:"not null"`
	Email     string     `gorm:"uniqueIndex;not null"`
	ManagerID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

// ManagedBy reports whether id is the user's direct manager.
func (u *User) ManagedBy(id uuid.UUID) bool {
	return u.ManagerID != nil && *u.ManagerID == id
}
