package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskodos/taskodos/pkg/models"
	"gorm.io/gorm"
)

// GoalHandler serves the /api/goals endpoints.
type GoalHandler struct {
	db *gorm.DB
}

func NewGoalHandler(db *gorm.DB) *GoalHandler {
	return &GoalHandler{db: db}
}

// CreateGoalInput DTO for creating a new goal
type CreateGoalInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	TargetDate  *time.Time `json:"target_date"`
	Status      string     `json:"status"`
}

// UpdateGoalInput DTO for partially updating a goal. Omitted fields leave
// the column untouched; an explicit null target_date clears it. Only a
// present, non-null target_date triggers the derived-event rule.
type UpdateGoalInput struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	TargetDate  Optional[time.Time] `json:"target_date"`
	Status      *string             `json:"status"`
}

// ListGoals retrieves goals with skip/limit pagination.
func (h *GoalHandler) ListGoals(c *gin.Context) {
	offset, limit := pagination(c)

	var goals []models.Goal
	if err := h.db.WithContext(c.Request.Context()).
		Offset(offset).Limit(limit).Find(&goals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve goals"})
		return
	}

	c.JSON(http.StatusOK, goals)
}

// GetGoal retrieves a single goal together with its todos.
func (h *GoalHandler) GetGoal(c *gin.Context) {
	id, ok := entityID(c, "Goal not found")
	if !ok {
		return
	}

	var goal models.Goal
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Todos").First(&goal, id).Error; err != nil {
		respondFetchError(c, err, "Goal not found", "Failed to retrieve goal")
		return
	}

	c.JSON(http.StatusOK, goal)
}

// CreateGoal creates a new goal, and a derived calendar event when a target
// date is supplied.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var input CreateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	goal := models.Goal{
		Title:       input.Title,
		Description: input.Description,
		TargetDate:  input.TargetDate,
		Status:      input.Status,
	}
	if goal.Status == "" {
		goal.Status = models.GoalStatusActive
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&goal).Error; err != nil {
			return err
		}
		return createGoalEvent(tx, &goal)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}

	c.JSON(http.StatusOK, goal)
}

// UpdateGoal applies a partial update. A payload carrying a non-null
// target_date also refreshes the goal's derived calendar event; an explicit
// null clears the column without touching events.
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	id, ok := entityID(c, "Goal not found")
	if !ok {
		return
	}

	var goal models.Goal
	if err := h.db.WithContext(c.Request.Context()).First(&goal, id).Error; err != nil {
		respondFetchError(c, err, "Goal not found", "Failed to retrieve goal")
		return
	}

	var input UpdateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if input.Title != nil {
		goal.Title = *input.Title
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.TargetDate.Present {
		goal.TargetDate = input.TargetDate.Value
	}
	if input.Status != nil {
		goal.Status = *input.Status
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&goal).Error; err != nil {
			return err
		}
		if input.TargetDate.Present && input.TargetDate.Value != nil {
			return upsertGoalEvent(tx, &goal)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
		return
	}

	c.JSON(http.StatusOK, goal)
}

// DeleteGoal deletes a goal and its todos. Calendar events referencing the
// goal are left in place.
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id, ok := entityID(c, "Goal not found")
	if !ok {
		return
	}

	var goal models.Goal
	if err := h.db.WithContext(c.Request.Context()).First(&goal, id).Error; err != nil {
		respondFetchError(c, err, "Goal not found", "Failed to retrieve goal")
		return
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", goal.ID).Delete(&models.Todo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&goal).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}
