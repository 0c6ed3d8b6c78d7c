package models

import (
	"time"
)

// GoalStatus values documented for the status field. The column itself is
// free text; the store does not enforce the enumeration.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusArchived  = "archived"
)

// Goal represents a long-lived objective with an optional deadline.
type Goal struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Status      string     `json:"status" gorm:"not null;type:varchar(50);default:'active'"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`

	// One-to-Many Relations
	Todos []*Todo `json:"todos,omitempty" gorm:"foreignKey:GoalID"`
}
