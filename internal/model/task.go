package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxTitleLength matches the width of the title column.
const MaxTitleLength = 255

type TaskStatus string

const (
	StatusPending      TaskStatus = "pending"
	StatusAcknowledged TaskStatus = "acknowledged"
	StatusRejected     TaskStatus = "rejected"
	StatusCompleted    TaskStatus = "completed"
	StatusFailed       TaskStatus = "failed"
)

// Statuses lists every status a task may hold.
var Statuses = []TaskStatus{
	StatusPending,
	StatusAcknowledged,
	StatusRejected,
	StatusCompleted,
	StatusFailed,
}

func (s TaskStatus) Valid() bool {
	for _, status := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

type Task struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"size:255;not null"`
	Description string     `gorm:"type:text"`
	Status      TaskStatus `gorm:"type:varchar(16);not null"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null;index;<-:create"`
	Deadline    *time.Time
	CreatedOn   time.Time `gorm:"autoCreateTime;<-:create"`
	UpdatedOn   time.Time `gorm:"autoUpdateTime"`
}
