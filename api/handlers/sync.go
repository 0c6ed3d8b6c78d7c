package handlers

import (
	"errors"

	"github.com/taskodos/taskodos/pkg/models"
	"gorm.io/gorm"
)

// Derived calendar events.
//
// A goal with a target date is mirrored by at most one calendar event with
// goal_id = goal.id and a null todo_id; a todo with a due date is mirrored by
// at most one event with todo_id = todo.id. The rule runs on create and
// update only, never on delete, and only when the write carries a non-null
// date. Derived events remain ordinary calendar rows: the user can edit or
// delete them through the calendar endpoints, and the rule only re-creates
// one when it finds none at the moment of a goal/todo write.
//
// The store carries no uniqueness constraint on these predicates, so the
// find-or-create below is racy under concurrent updates to the same entity.
// When duplicates do exist, the lookup orders by id so the oldest event is
// always the one updated.

func createGoalEvent(tx *gorm.DB, goal *models.Goal) error {
	if goal.TargetDate == nil {
		return nil
	}
	goalID := goal.ID
	event := models.CalendarEvent{
		Title:       "Goal: " + goal.Title,
		Description: goal.Description,
		EventDate:   *goal.TargetDate,
		GoalID:      &goalID,
	}
	return tx.Create(&event).Error
}

func upsertGoalEvent(tx *gorm.DB, goal *models.Goal) error {
	var event models.CalendarEvent
	err := tx.Where("goal_id = ? AND todo_id IS NULL", goal.ID).
		Order("id").
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return createGoalEvent(tx, goal)
	}
	if err != nil {
		return err
	}

	// Overwrite date and title in place; description stays untouched.
	event.EventDate = *goal.TargetDate
	event.Title = "Goal: " + goal.Title
	return tx.Save(&event).Error
}

func createTodoEvent(tx *gorm.DB, todo *models.Todo) error {
	if todo.DueDate == nil {
		return nil
	}
	todoID := todo.ID
	event := models.CalendarEvent{
		Title:       "Todo: " + todo.Title,
		Description: todo.Description,
		EventDate:   *todo.DueDate,
		TodoID:      &todoID,
		GoalID:      todo.GoalID,
	}
	return tx.Create(&event).Error
}

func upsertTodoEvent(tx *gorm.DB, todo *models.Todo) error {
	// Unlike the goal lookup, this one matches on todo_id alone.
	var event models.CalendarEvent
	err := tx.Where("todo_id = ?", todo.ID).
		Order("id").
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return createTodoEvent(tx, todo)
	}
	if err != nil {
		return err
	}

	event.EventDate = *todo.DueDate
	event.Title = "Todo: " + todo.Title
	return tx.Save(&event).Error
}
