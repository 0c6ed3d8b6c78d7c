package models

import (
	"time"
)

// CalendarEvent represents an entry on the calendar. An event may reference a
// todo, a goal, both, or neither. Events derived from a goal's target date
// carry goal_id with a null todo_id; events derived from a todo's due date
// carry todo_id. References are plain columns without foreign key
// constraints: deleting a goal or todo leaves its events in place, still
// pointing at the old id.
type CalendarEvent struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date" gorm:"not null;index:idx_calendar_events_date"`
	TodoID      *uint     `json:"todo_id,omitempty" gorm:"index:idx_calendar_events_todo"`
	GoalID      *uint     `json:"goal_id,omitempty" gorm:"index:idx_calendar_events_goal"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for GORM
func (CalendarEvent) TableName() string {
	return "calendar_events"
}
