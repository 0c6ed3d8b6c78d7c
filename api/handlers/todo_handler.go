package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskodos/taskodos/pkg/models"
	"gorm.io/gorm"
)

// TodoHandler serves the /api/todos endpoints.
type TodoHandler struct {
	db *gorm.DB
}

func NewTodoHandler(db *gorm.DB) *TodoHandler {
	return &TodoHandler{db: db}
}

// CreateTodoInput DTO for creating a new todo
type CreateTodoInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Completed   bool       `json:"completed"`
	GoalID      *uint      `json:"goal_id"`
}

// UpdateTodoInput DTO for partially updating a todo. An explicit null
// due_date or goal_id clears the column; only a present, non-null due_date
// triggers the derived-event rule.
type UpdateTodoInput struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	DueDate     Optional[time.Time] `json:"due_date"`
	Completed   *bool               `json:"completed"`
	GoalID      Optional[uint]      `json:"goal_id"`
}

// ListTodos retrieves todos with their goals, paginated by skip/limit.
func (h *TodoHandler) ListTodos(c *gin.Context) {
	offset, limit := pagination(c)

	var todos []models.Todo
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Goal").Offset(offset).Limit(limit).Find(&todos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todos"})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// GetTodo retrieves a single todo together with its goal.
func (h *TodoHandler) GetTodo(c *gin.Context) {
	id, ok := entityID(c, "Todo not found")
	if !ok {
		return
	}

	var todo models.Todo
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Goal").First(&todo, id).Error; err != nil {
		respondFetchError(c, err, "Todo not found", "Failed to retrieve todo")
		return
	}

	c.JSON(http.StatusOK, todo)
}

// CreateTodo creates a new todo, and a derived calendar event when a due
// date is supplied. The event inherits the todo's goal_id.
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var input CreateTodoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	todo := models.Todo{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Completed:   input.Completed,
		GoalID:      input.GoalID,
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&todo).Error; err != nil {
			return err
		}
		return createTodoEvent(tx, &todo)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// UpdateTodo applies a partial update. A payload carrying a non-null
// due_date also refreshes the todo's derived calendar event, copying the
// just-updated goal_id when a new event has to be created.
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id, ok := entityID(c, "Todo not found")
	if !ok {
		return
	}

	var todo models.Todo
	if err := h.db.WithContext(c.Request.Context()).First(&todo, id).Error; err != nil {
		respondFetchError(c, err, "Todo not found", "Failed to retrieve todo")
		return
	}

	var input UpdateTodoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.Description != nil {
		todo.Description = *input.Description
	}
	if input.DueDate.Present {
		todo.DueDate = input.DueDate.Value
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}
	if input.GoalID.Present {
		todo.GoalID = input.GoalID.Value
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&todo).Error; err != nil {
			return err
		}
		if input.DueDate.Present && input.DueDate.Value != nil {
			return upsertTodoEvent(tx, &todo)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// DeleteTodo deletes a todo. Calendar events referencing it are left in
// place.
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id, ok := entityID(c, "Todo not found")
	if !ok {
		return
	}

	var todo models.Todo
	if err := h.db.WithContext(c.Request.Context()).First(&todo, id).Error; err != nil {
		respondFetchError(c, err, "Todo not found", "Failed to retrieve todo")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&todo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}
