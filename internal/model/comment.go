package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is append-only: there is no edit or delete path.
type Comment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	TaskID    uint64    `gorm:"not null;index"`
	Body      string    `gorm:"type:text;not null"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedOn time.Time `gorm:"autoCreateTime"`
}
