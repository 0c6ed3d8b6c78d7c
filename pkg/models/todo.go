package models

import (
	"time"
)

// Todo represents an actionable item, optionally linked to a goal.
type Todo struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed" gorm:"not null;default:false"`
	GoalID      *uint      `json:"goal_id,omitempty" gorm:"index:idx_todos_goal"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`

	// Foreign Key Relations
	Goal *Goal `json:"goal,omitempty" gorm:"foreignKey:GoalID"`
}
